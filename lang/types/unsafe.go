package types

import "unsafe"

// ptrOf exposes a SemanticType's address for hash mixing. Two distinct
// SemanticType allocations never compare equal by eqKey unless they are
// literally the same pointer, so folding the address into the hash is
// safe and only affects bucket distribution, not correctness.
func ptrOf(t *SemanticType) unsafe.Pointer { return unsafe.Pointer(t) }
