package prop

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// formulaComparer lets cmp diff formulas by structural equality.
var formulaComparer = cmp.Comparer(func(a, b *Formula) bool {
	return a.Equal(b)
})

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		Input    string
		Expected *Formula
	}{
		{Input: "p", Expected: Atom("p")},
		{Input: "  p  ", Expected: Atom("p")},
		{Input: "true", Expected: True()},
		{Input: "false", Expected: False()},
		{Input: "p_1", Expected: Atom("p_1")},
		{Input: "~p", Expected: Not(Atom("p"))},
		{Input: "~~p", Expected: Not(Not(Atom("p")))},
		{Input: "p & q & r", Expected: And(And(Atom("p"), Atom("q")), Atom("r"))},
		{Input: "p | q & r", Expected: Or(Atom("p"), And(Atom("q"), Atom("r")))},
		{Input: "p -> q -> r", Expected: Implies(Atom("p"), Implies(Atom("q"), Atom("r")))},
		{Input: "(p -> q) -> r", Expected: Implies(Implies(Atom("p"), Atom("q")), Atom("r"))},
		{Input: "~p | q", Expected: Or(Not(Atom("p")), Atom("q"))},
		{Input: "p & q -> r", Expected: Implies(And(Atom("p"), Atom("q")), Atom("r"))},
		{Input: "(p | q) & r", Expected: And(Or(Atom("p"), Atom("q")), Atom("r"))},
		{Input: "p -> false", Expected: Not(Atom("p"))},
	} {
		t.Run(tt.Input, func(t *testing.T) {
			f, err := Parse(tt.Input)
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.Expected, f, formulaComparer))
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"p &",
		"& p",
		"(p",
		"p)",
		"p q",
		"p - q",
		"p -> ",
		"~",
		"p ! q",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.Error(t, err)
		})
	}
}
