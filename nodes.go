package sexpr

import (
	"strings"
)

// node is one vertex of the S-expression tree. A node owns its children
// exclusively; the parser builds trees bottom-up and never shares a subtree
// between two parents. head is the atom text for leaves and the operator text
// otherwise, so the number of children is fixed by the operator that produced
// the node.
type node struct {
	head string
	kids []*node
}

// The constructors are the only way the parser builds nodes; each fixes the
// arity its operator position implies.

func leaf(text string) *node {
	return &node{head: text}
}

func unary(op string, x *node) *node {
	mustKid(x)
	return &node{head: op, kids: []*node{x}}
}

func binary(op string, l, r *node) *node {
	mustKid(l)
	mustKid(r)
	return &node{head: op, kids: []*node{l, r}}
}

func ternary(op string, cond, then, els *node) *node {
	mustKid(cond)
	mustKid(then)
	mustKid(els)
	return &node{head: op, kids: []*node{cond, then, els}}
}

func mustKid(n *node) {
	if n == nil {
		panic("sexpr: nil child in node construction")
	}
}

// rpn writes the reverse Polish form of n: children in order, each followed
// by a single space, then the head. Operands therefore always precede their
// operator and no grouping characters are needed.
func (n *node) rpn(b *strings.Builder) {
	for _, k := range n.kids {
		k.rpn(b)
		b.WriteByte(' ')
	}
	b.WriteString(n.head)
}

func (n *node) String() string {
	var b strings.Builder
	n.rpn(&b)
	return b.String()
}

// equal reports structural equality of heads and arities.
func (n *node) equal(m *node) bool {
	if n.head != m.head || len(n.kids) != len(m.kids) {
		return false
	}
	for i, k := range n.kids {
		if !k.equal(m.kids[i]) {
			return false
		}
	}
	return true
}

// Expr is a parsed expression.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// RPN returns the canonical serialization of the expression: each node's
// children in order, each followed by one space, then the node's own label.
// This is the form the rpn package consumes.
func (e *Expr) RPN() string {
	return e.n.String()
}

// String returns the RPN serialization.
func (e *Expr) String() string {
	return e.RPN()
}
