package sexpr

// Parse parses an infix expression into its S-expression tree. The entire
// input must form one expression; anything left over after it, including a
// stray closing parenthesis, is an error. There is no error recovery: the
// first bad token aborts the parse and no partial tree is returned.
func Parse(src string) (*Expr, error) {
	scan := lex(src)
	n, err := expr(scan, 0)
	if err != nil {
		return nil, err
	}
	if tok := scan.peek(); tok.kind != tokenEOF {
		return nil, &TrailingTokenError{Col: tok.pos, Token: tok.text}
	}
	return &Expr{n: n}, nil
}

// RPN parses src and returns the reverse Polish serialization of its tree.
func RPN(src string) (string, error) {
	e, err := Parse(src)
	if err != nil {
		return "", err
	}
	return e.RPN(), nil
}

// expr parses one expression by precedence climbing. min is the binding-power
// floor: the loop extends the parsed operand with trailing operators only
// while their left power clears it, so a caller parsing the right side of an
// operator passes that operator's right power and automatically stops where
// the operator chain must fold. Each iteration consumes at least one token,
// and the token sequence is finite, so the loop terminates.
func expr(scan *lexer, min int8) (*node, error) {
	lhs, err := operand(scan)
	if err != nil {
		return nil, err
	}
	for {
		tok := scan.peek()
		if tok.kind != tokenOp {
			// EOF, or an adjacent atom the caller reports as trailing input.
			return lhs, nil
		}
		if bp, ok := postfixPower(tok.text); ok {
			if bp.left < min {
				return lhs, nil
			}
			scan.next()
			lhs = unary(tok.text, lhs)
			continue
		}
		bp, ok := infixPower(tok.text)
		if !ok || bp.left < min {
			return lhs, nil
		}
		scan.next()
		if tok.text == "?" {
			// Ternary: the middle operand parses at floor 0, as if
			// bracketed by ? and the start of the final operand.
			then, err := expr(scan, 0)
			if err != nil {
				return nil, err
			}
			els, err := expr(scan, bp.right)
			if err != nil {
				return nil, err
			}
			lhs = ternary(tok.text, lhs, then, els)
			continue
		}
		rhs, err := expr(scan, bp.right)
		if err != nil {
			return nil, err
		}
		lhs = binary(tok.text, lhs, rhs)
	}
}

// operand parses the leftmost component of an expression: an atom, a
// parenthesized group, or a prefix operator applied to a smaller operand.
func operand(scan *lexer) (*node, error) {
	tok := scan.next()
	switch tok.kind {
	case tokenAtom:
		return leaf(tok.text), nil
	case tokenOp:
		if tok.text == "(" {
			return group(scan)
		}
		bp, ok := prefixPower(tok.text)
		if !ok {
			if tok.text == ")" {
				return nil, &EmptyExpressionError{Col: tok.pos, End: ")"}
			}
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
		}
		rhs, err := expr(scan, bp.right)
		if err != nil {
			return nil, err
		}
		return unary(tok.text, rhs), nil
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos}
	default:
		panic("sexpr: unknown token: " + tok.String())
	}
}

// group parses the remainder of a parenthesized sub-expression and discards
// the closing parenthesis. The group contributes no node of its own, so
// bracketing never changes the shape of the subtree it wraps and no bracket
// ever reaches the RPN output.
func group(scan *lexer) (*node, error) {
	inner, err := expr(scan, 0)
	if err != nil {
		return nil, err
	}
	end := scan.next()
	if end.kind != tokenOp || end.text != ")" {
		return nil, &BracketError{Col: end.pos, Got: end.text}
	}
	return inner, nil
}
