package sexpr

import (
	"strconv"
	"unicode"
)

type token struct {
	text string
	kind tokenKind
	pos  int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	// tokenEOF indicates the end of the input. The lexer emits exactly one,
	// always last, and the cursor repeats it forever once reached.
	tokenEOF tokenKind = iota
	// tokenAtom is a literal operand: a run of decimal digits or a single
	// letter.
	tokenAtom
	// tokenOp is a single non-alphanumeric, non-whitespace rune.
	tokenOp
)

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "EOF"
	case tokenAtom:
		return "Atom"
	case tokenOp:
		return "Op"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// lexer is a cursor over the fully materialized token sequence of one input.
// Lexing cannot fail: every non-whitespace rune that is not part of an atom
// becomes an operator token.
type lexer struct {
	toks []token
	i    int
}

// lex tokenizes src in a single left-to-right pass. Whitespace separates
// tokens and is otherwise discarded; a maximal digit run forms one atom, so
// multi-digit literals are single tokens, while letters are atoms of exactly
// one rune each. Positions are 1-based rune columns.
func lex(src string) *lexer {
	l := &lexer{}
	col := 0
	atom := -1 // start column of an open digit run, or -1
	var run []rune
	flush := func() {
		if atom >= 0 {
			l.toks = append(l.toks, token{text: string(run), kind: tokenAtom, pos: atom})
			atom, run = -1, run[:0]
		}
	}
	for _, r := range src {
		col++
		switch {
		case unicode.IsDigit(r):
			if atom < 0 {
				atom = col
			}
			run = append(run, r)
		case unicode.IsSpace(r):
			flush()
		case unicode.IsLetter(r):
			flush()
			l.toks = append(l.toks, token{text: string(r), kind: tokenAtom, pos: col})
		default:
			flush()
			l.toks = append(l.toks, token{text: string(r), kind: tokenOp, pos: col})
		}
	}
	flush()
	l.toks = append(l.toks, token{kind: tokenEOF, pos: col + 1})
	return l
}

// next consumes and returns the next token. Once the EOF token has been
// reached it is returned on every subsequent call.
func (l *lexer) next() token {
	t := l.toks[l.i]
	if l.i < len(l.toks)-1 {
		l.i++
	}
	return t
}

// peek returns the next token without consuming it.
func (l *lexer) peek() token {
	return l.toks[l.i]
}
