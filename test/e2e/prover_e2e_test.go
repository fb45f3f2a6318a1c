package e2e

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tactic-framework/blast/pkg/blast"
	"github.com/tactic-framework/blast/pkg/prop"
)

func parse(input string) *prop.Formula {
	GinkgoHelper()
	f, err := prop.Parse(input)
	Expect(err).ToNot(HaveOccurred())
	return f
}

func parseAll(inputs ...string) []*prop.Formula {
	GinkgoHelper()
	formulas := make([]*prop.Formula, 0, len(inputs))
	for _, input := range inputs {
		formulas = append(formulas, parse(input))
	}
	return formulas
}

var _ = Describe("Proving propositional sequents", func() {
	var prover prop.Prover

	BeforeEach(func() {
		prover = prop.Prover{}
	})

	prove := func(hypotheses []*prop.Formula, goal *prop.Formula) *prop.Proof {
		GinkgoHelper()
		proof, err := prover.Prove(context.Background(), hypotheses, goal)
		Expect(err).ToNot(HaveOccurred())
		Expect(proof.Conclusion().Equal(goal)).To(BeTrue())
		Expect(prop.Check(proof, hypotheses)).To(Succeed())
		return proof
	}

	It("proves constructive theorems and validates the certificates", func() {
		prove(nil, parse("p -> p"))
		prove(nil, parse("p & q -> q & p"))
		prove(parseAll("p | q", "p -> r", "q -> r"), parse("r"))
	})

	It("proves distributivity by backtracking over disjunct choices", func() {
		proof := prove(parseAll("p & (q | r)"), parse("p & q | p & r"))
		Expect(proof.Rule()).To(Equal(prop.RuleOrElim))
	})

	It("proves anything from contradictory hypotheses", func() {
		prove(parseAll("p", "~p"), parse("q"))
	})

	It("exhausts on non-theorems", func() {
		_, err := prover.Prove(context.Background(), parseAll("p | q"), parse("p"))
		Expect(blast.IsExhausted(err)).To(BeTrue())
	})

	When("the prover is classical", func() {
		BeforeEach(func() {
			prover.Classical = true
		})

		It("proves Peirce's law, which the constructive prover cannot", func() {
			goal := parse("((p -> q) -> p) -> p")

			constructive := prop.Prover{}
			_, err := constructive.Prove(context.Background(), nil, goal)
			Expect(blast.IsExhausted(err)).To(BeTrue())

			proof := prove(nil, goal)
			Expect(proof.Rule()).To(Equal(prop.RuleClassical))
		})

		It("proves the excluded middle", func() {
			prove(nil, parse("p | ~p"))
		})

		It("still exhausts on classically invalid goals", func() {
			_, err := prover.Prove(context.Background(), nil, parse("p -> q"))
			Expect(blast.IsExhausted(err)).To(BeTrue())
		})
	})

	When("the search is resource bounded", func() {
		It("respects the depth bound", func() {
			prover.MaxDepth = 1
			_, err := prover.Prove(context.Background(), nil, parse("p -> q -> p"))
			Expect(blast.IsExhausted(err)).To(BeTrue())

			prover.MaxDepth = 2
			prove(nil, parse("p -> q -> p"))
		})

		It("reports interruption on a cancelled context", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := prover.Prove(ctx, nil, parse("p -> p"))
			Expect(err).To(MatchError(blast.ErrInterrupted))
		})
	})
})
