package prop

// Kind enumerates formula constructors. Negation is represented as
// implication of false, so ~a and a -> false are the same formula.
type Kind int

const (
	KindTrue Kind = iota
	KindFalse
	KindAtom
	KindAnd
	KindOr
	KindImplies
)

// Formula is an immutable propositional formula. Formulas are built
// through the package constructors and shared freely; they are never
// mutated after construction.
type Formula struct {
	kind     Kind
	name     string
	lhs, rhs *Formula
}

var (
	truth  = &Formula{kind: KindTrue}
	absurd = &Formula{kind: KindFalse}
)

// True returns the formula that always holds.
func True() *Formula {
	return truth
}

// False returns the formula that never holds.
func False() *Formula {
	return absurd
}

// Atom returns a propositional variable.
func Atom(name string) *Formula {
	return &Formula{kind: KindAtom, name: name}
}

// And returns the conjunction of l and r.
func And(l, r *Formula) *Formula {
	return &Formula{kind: KindAnd, lhs: l, rhs: r}
}

// Or returns the disjunction of l and r.
func Or(l, r *Formula) *Formula {
	return &Formula{kind: KindOr, lhs: l, rhs: r}
}

// Implies returns the implication from l to r.
func Implies(l, r *Formula) *Formula {
	return &Formula{kind: KindImplies, lhs: l, rhs: r}
}

// Not returns the negation of f, encoded as f -> false.
func Not(f *Formula) *Formula {
	return Implies(f, absurd)
}

// Kind returns the formula's constructor.
func (f *Formula) Kind() Kind {
	return f.kind
}

// Name returns the variable name of an atom, and "" otherwise.
func (f *Formula) Name() string {
	return f.name
}

// Left returns the left operand of a binary formula.
func (f *Formula) Left() *Formula {
	return f.lhs
}

// Right returns the right operand of a binary formula.
func (f *Formula) Right() *Formula {
	return f.rhs
}

// Equal reports structural equality.
func (f *Formula) Equal(g *Formula) bool {
	if f == g {
		return true
	}
	if f == nil || g == nil || f.kind != g.kind {
		return false
	}
	switch f.kind {
	case KindTrue, KindFalse:
		return true
	case KindAtom:
		return f.name == g.name
	}
	return f.lhs.Equal(g.lhs) && f.rhs.Equal(g.rhs)
}

// Binding strengths used by the printer; higher binds tighter.
const (
	precImplies = iota + 1
	precOr
	precAnd
	precUnary
)

// String implements fmt.Stringer and prints the formula in the same
// syntax Parse accepts, with a minimal set of parentheses.
func (f *Formula) String() string {
	return f.render(0)
}

func (f *Formula) render(prec int) string {
	switch f.kind {
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindAtom:
		return f.name
	case KindAnd:
		s := f.lhs.render(precAnd) + " & " + f.rhs.render(precAnd+1)
		if prec > precAnd {
			return "(" + s + ")"
		}
		return s
	case KindOr:
		s := f.lhs.render(precOr) + " | " + f.rhs.render(precOr+1)
		if prec > precOr {
			return "(" + s + ")"
		}
		return s
	case KindImplies:
		if f.rhs.kind == KindFalse {
			return "~" + f.lhs.render(precUnary)
		}
		s := f.lhs.render(precImplies+1) + " -> " + f.rhs.render(precImplies)
		if prec > precImplies {
			return "(" + s + ")"
		}
		return s
	}
	return "<invalid>"
}
