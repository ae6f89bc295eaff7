package sexpr

import "strconv"

// All parse failures are fatal: the parser stops at the first one, returns no
// partial tree, and never retries. The types below exist so callers can still
// tell the classes apart and point at the offending column.

// OperatorError is an error indicating an operator token in operand position
// with no prefix binding power. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that cannot start an operand.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" cannot begin an expression")
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating that an operand was required
// but the input ended or a group closed. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that cut the operand short.
	Col int
	// End is ")" when a group closed with no operand, or "" at end of input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		return errpos(err.Col, "expected an expression")
	}
	return errpos(err.Col, "no expression before "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// BracketError is an error indicating a group whose closing parenthesis never
// arrived. It implements InputError.
type BracketError struct {
	// Col is the position where the closer should have been.
	Col int
	// Got is the token found instead, or "" at end of input.
	Got string
}

func (err *BracketError) Error() string {
	if err.Got == "" {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "expected ) but found "+strconv.Quote(err.Got))
}

func (err *BracketError) Pos() int {
	return err.Col
}

// TrailingTokenError is an error indicating input left over after a complete
// expression, such as a stray closing parenthesis or two adjacent
// expressions. It implements InputError.
type TrailingTokenError struct {
	// Col is the position of the first unconsumed token.
	Col int
	// Token is the text of that token.
	Token string
}

func (err *TrailingTokenError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Token)+" after expression")
}

func (err *TrailingTokenError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TrailingTokenError)(nil)
)
