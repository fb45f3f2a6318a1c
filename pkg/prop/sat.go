package prop

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// Valid reports whether the hypotheses classically entail the goal:
// the formulas are compiled into a circuit, the hypotheses and the
// negated goal are assumed, and entailment holds exactly when the
// result is unsatisfiable.
func Valid(hypotheses []*Formula, goal *Formula) bool {
	c := logic.NewC()
	atoms := make(map[string]z.Lit)
	var lit func(f *Formula) z.Lit
	lit = func(f *Formula) z.Lit {
		switch f.Kind() {
		case KindTrue:
			return c.T
		case KindFalse:
			return c.F
		case KindAtom:
			m, ok := atoms[f.Name()]
			if !ok {
				m = c.Lit()
				atoms[f.Name()] = m
			}
			return m
		case KindAnd:
			return c.And(lit(f.Left()), lit(f.Right()))
		case KindOr:
			return c.Or(lit(f.Left()), lit(f.Right()))
		case KindImplies:
			return c.Implies(lit(f.Left()), lit(f.Right()))
		}
		return c.F
	}

	assumptions := make([]z.Lit, 0, len(hypotheses)+1)
	for _, h := range hypotheses {
		assumptions = append(assumptions, lit(h))
	}
	assumptions = append(assumptions, lit(goal).Not())

	g := gini.New()
	c.ToCnf(g)
	g.Assume(assumptions...)
	return g.Solve() == unsatisfiable
}
