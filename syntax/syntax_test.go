package syntax_test

import (
	"testing"

	"github.com/torao/terp/matcher"
	"github.com/torao/terp/syntax"
)

func TestBuilders_Kind(t *testing.T) {
	term := syntax.Term[rune, string](matcher.Value('a'))
	if term.Kind() != syntax.KindTerm {
		t.Errorf("Term.Kind() = %v, want KindTerm", term.Kind())
	}
	if term.Matcher() == nil {
		t.Error("Term.Matcher() = nil")
	}

	ref := syntax.Ref[rune, string]("X")
	if ref.Kind() != syntax.KindRef {
		t.Errorf("Ref.Kind() = %v, want KindRef", ref.Kind())
	}
	if ref.Ref() != "X" {
		t.Errorf("Ref.Ref() = %q, want X", ref.Ref())
	}

	cat := syntax.Concat(term, ref)
	if cat.Kind() != syntax.KindConcat {
		t.Errorf("Concat.Kind() = %v, want KindConcat", cat.Kind())
	}
	left, right := cat.Children()
	if left != term || right != ref {
		t.Error("Concat.Children() did not return the operands unchanged")
	}

	alt := syntax.Alt(term, ref)
	if alt.Kind() != syntax.KindAlt {
		t.Errorf("Alt.Kind() = %v, want KindAlt", alt.Kind())
	}

	rep := syntax.Rep(term, 2, 5)
	if rep.Kind() != syntax.KindRep {
		t.Errorf("Rep.Kind() = %v, want KindRep", rep.Kind())
	}
	inner, min, max := rep.Repetition()
	if inner != term || min != 2 || max != 5 {
		t.Errorf("Rep.Repetition() = (%v, %d, %d), want (term, 2, 5)", inner, min, max)
	}
}

func TestRep_InvalidBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Rep with max < min did not panic")
		}
	}()
	syntax.Rep[rune, string](syntax.Ref[rune, string]("X"), 5, 2)
}

func TestQuantifierHelpers(t *testing.T) {
	x := syntax.Ref[rune, string]("X")

	_, min, max := syntax.Opt(x).Repetition()
	if min != 0 || max != 1 {
		t.Errorf("Opt bounds = (%d, %d), want (0, 1)", min, max)
	}

	_, min, max = syntax.Star(x).Repetition()
	if min != 0 || max != syntax.Unbounded {
		t.Errorf("Star bounds = (%d, %d), want (0, Unbounded)", min, max)
	}

	_, min, max = syntax.Plus(x).Repetition()
	if min != 1 || max != syntax.Unbounded {
		t.Errorf("Plus bounds = (%d, %d), want (1, Unbounded)", min, max)
	}
}

func TestConcatAllAndAltAll(t *testing.T) {
	a, b, c := syntax.Ref[rune, string]("A"), syntax.Ref[rune, string]("B"), syntax.Ref[rune, string]("C")

	cat := syntax.ConcatAll(a, b, c)
	left, right := cat.Children()
	if right != c {
		t.Fatalf("ConcatAll right-most child = %v, want C", right)
	}
	left2, right2 := left.Children()
	if left2 != a || right2 != b {
		t.Errorf("ConcatAll did not left-associate: got (%v, %v)", left2, right2)
	}

	alt := syntax.AltAll(a, b, c)
	altLeft, altRight := alt.Children()
	if altRight != c {
		t.Fatalf("AltAll right-most child = %v, want C", altRight)
	}
	altLeft2, altRight2 := altLeft.Children()
	if altLeft2 != a || altRight2 != b {
		t.Errorf("AltAll did not left-associate: got (%v, %v)", altLeft2, altRight2)
	}
}

func TestNonMatchingAccessorsReturnZeroValues(t *testing.T) {
	ref := syntax.Ref[rune, string]("X")
	if m := ref.Matcher(); m != nil {
		t.Errorf("Ref.Matcher() = %v, want nil", m)
	}
	if left, right := ref.Children(); left != nil || right != nil {
		t.Errorf("Ref.Children() = (%v, %v), want (nil, nil)", left, right)
	}
	if inner, min, max := ref.Repetition(); inner != nil || min != 0 || max != 0 {
		t.Errorf("Ref.Repetition() = (%v, %d, %d), want (nil, 0, 0)", inner, min, max)
	}
}

func TestString(t *testing.T) {
	ref := syntax.Ref[rune, string]("RANK")
	if got, want := ref.String(), "Ref(RANK)"; got != want {
		t.Errorf("Ref.String() = %q, want %q", got, want)
	}
}
