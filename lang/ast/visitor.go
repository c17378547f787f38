package ast

// VisitDirection tells a Visitor whether it is being invoked before or
// after a node's children have been walked.
type VisitDirection int

const (
	VisitEnter VisitDirection = iota
	VisitExit
)

// Visitor is invoked by Walk for every node in a tree, once on entry and,
// if entry returned a non-nil Visitor, once again on exit. Returning nil
// from Visit skips the node's children.
type Visitor interface {
	Visit(n Node, dir VisitDirection) (w Visitor)
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(n Node, dir VisitDirection) Visitor

func (f VisitorFunc) Visit(n Node, dir VisitDirection) Visitor { return f(n, dir) }

// Walk traverses node and its descendants, invoking v on each. If v's
// entry call returns nil, node's children are not visited and no exit
// call is made for node.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node, VisitEnter); v == nil {
		return
	}
	node.Walk(v)
	v.Visit(node, VisitExit)
}
