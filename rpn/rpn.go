// Package rpn compiles reverse Polish expression strings into runnable stack
// programs.
//
// The input format is the serialization produced by the sexpr package:
// decimal literals and the operators + - * / separated by spaces, operands
// before their operator. The compiler tokenizes the string itself; it has no
// view of the tree the string came from.
package rpn

import (
	"errors"
	"math/big"
	"strconv"
)

// ErrDivisionByZero is returned by Run when / meets a zero divisor.
var ErrDivisionByZero = errors.New("rpn: division by zero")

type opcode int8

const (
	opPush opcode = iota
	opAdd
	opSub
	opMul
	opDiv
)

type instr struct {
	op  opcode
	val *big.Int // literal for opPush, nil otherwise
}

// Program is a compiled expression. Compile validates the stack shape, so
// running a Program cannot underflow; the only run-time failure is division
// by zero. A Program may be run any number of times.
type Program struct {
	code []instr
}

// CompileError is an error indicating a character the compiler has no
// instruction for.
type CompileError struct {
	// Col is the 1-based rune column of the character.
	Col int
	// Text is the offending character.
	Text string
}

func (err *CompileError) Error() string {
	return "rpn: cannot compile " + strconv.Quote(err.Text) + " at column " + strconv.Itoa(err.Col)
}

// StackError is an error indicating a program whose operands do not balance
// its operators: an operator arrived with fewer than two values on the stack,
// or the program finished with anything but exactly one value.
type StackError struct {
	// Col is the column at which the imbalance was detected; the end of the
	// input for a leftover-value error.
	Col int
	// Depth is the stack depth at that point.
	Depth int
}

func (err *StackError) Error() string {
	return "rpn: unbalanced expression at column " + strconv.Itoa(err.Col) +
		" (stack depth " + strconv.Itoa(err.Depth) + ")"
}

// Compile translates an RPN string into a Program. Spaces separate tokens;
// parenthesis characters are skipped, as some producers leave grouping
// characters behind. Any other non-digit, non-operator character fails with a
// CompileError, and an operand/operator imbalance fails with a StackError.
func Compile(src string) (*Program, error) {
	p := &Program{}
	depth := 0
	col := 0
	lit := -1 // start column of an open literal, or -1
	var run []rune
	flush := func() {
		if lit < 0 {
			return
		}
		n := new(big.Int)
		// The scanner only put decimal digits in run.
		n.SetString(string(run), 10)
		p.code = append(p.code, instr{op: opPush, val: n})
		depth++
		lit, run = -1, run[:0]
	}
	for _, r := range src {
		col++
		switch {
		case '0' <= r && r <= '9':
			if lit < 0 {
				lit = col
			}
			run = append(run, r)
			continue
		case r == ' ':
			flush()
			continue
		case r == '(', r == ')':
			flush()
			continue
		}
		flush()
		var op opcode
		switch r {
		case '+':
			op = opAdd
		case '-':
			op = opSub
		case '*':
			op = opMul
		case '/':
			op = opDiv
		default:
			return nil, &CompileError{Col: col, Text: string(r)}
		}
		if depth < 2 {
			return nil, &StackError{Col: col, Depth: depth}
		}
		p.code = append(p.code, instr{op: op})
		depth--
	}
	flush()
	if depth != 1 {
		return nil, &StackError{Col: col + 1, Depth: depth}
	}
	return p, nil
}

// Run executes the program and returns the value left on the stack. Division
// truncates toward zero.
func (p *Program) Run() (*big.Int, error) {
	stack := make([]*big.Int, 0, len(p.code))
	for _, in := range p.code {
		if in.op == opPush {
			stack = append(stack, new(big.Int).Set(in.val))
			continue
		}
		r := stack[len(stack)-1]
		l := stack[len(stack)-2]
		stack = stack[:len(stack)-1]
		switch in.op {
		case opAdd:
			l.Add(l, r)
		case opSub:
			l.Sub(l, r)
		case opMul:
			l.Mul(l, r)
		case opDiv:
			if r.Sign() == 0 {
				return nil, ErrDivisionByZero
			}
			l.Quo(l, r)
		default:
			panic("rpn: invalid opcode " + strconv.Itoa(int(in.op)))
		}
	}
	return stack[0], nil
}

// Eval compiles and runs src in one step.
func Eval(src string) (*big.Int, error) {
	p, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return p.Run()
}
