package sexpr

// power is a binding-power pair. Higher values bind tighter. For an infix
// operator, left < right gives left associativity: while the right operand is
// parsed with floor right, another operator of the same precedence fails the
// floor and instead combines at the outer level. left > right gives right
// associativity by the symmetric argument. Prefix operators use only right;
// postfix operators use only left.
type power struct {
	left, right int8
}

// prefixPower reports the binding power of op in operand position.
func prefixPower(op string) (power, bool) {
	switch op {
	case "+", "-":
		return power{right: 9}, true
	}
	return power{}, false
}

// infixPower reports the binding power of op between two operands. The
// ternary introducer "?" is an infix operator here; the parser grows the
// third child itself.
func infixPower(op string) (power, bool) {
	switch op {
	case "=":
		return power{2, 1}, true
	case "?":
		return power{4, 3}, true
	case "+", "-":
		return power{5, 6}, true
	case "*", "/":
		return power{7, 8}, true
	case ".":
		return power{14, 13}, true
	}
	return power{}, false
}

// postfixPower reports the binding power of op after a complete operand.
func postfixPower(op string) (power, bool) {
	switch op {
	case "!", "[":
		return power{left: 11}, true
	}
	return power{}, false
}
