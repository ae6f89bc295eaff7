package sexpr_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/kmoller/sexpr"
)

func FuzzParse(f *testing.F) {
	f.Add("3 + 4 * 5")
	f.Add("-(1 + 2)!")
	f.Add("a ? b c")
	f.Add(")3 + 4(")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := sexpr.Parse(s)
		if err != nil {
			var in sexpr.InputError
			if !errors.As(err, &in) {
				t.Errorf("parsing %q: non-positional error %v", s, err)
			} else if in.Pos() < 1 {
				t.Errorf("parsing %q: error position %d", s, in.Pos())
			}
			return
		}
		out := e.RPN()
		if strings.ContainsAny(out, "()") {
			t.Errorf("parsing %q: bracket leaked into %q", s, out)
		}
		again, err := sexpr.Parse(s)
		if err != nil {
			t.Errorf("parsing %q: second parse failed: %v", s, err)
			return
		}
		if again.RPN() != out {
			t.Errorf("parsing %q: serializations differ: %q vs %q", s, out, again.RPN())
		}
	})
}
