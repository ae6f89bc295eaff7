// Package sexpr parses infix expressions into S-expression trees whose
// canonical form is reverse Polish notation.
//
// The grammar is deliberately small: atoms are decimal literals or single
// letters, and every other non-whitespace character is an operator. A single
// precedence-climbing procedure driven by binding-power tables handles
// prefix, infix, postfix, and ternary operators uniformly, so adding an
// operator means adding a table entry rather than a grammar rule.
//
// The tree's RPN serialization is the only representation intended to leave
// this package; the rpn subpackage compiles such strings into runnable stack
// programs.
package sexpr
