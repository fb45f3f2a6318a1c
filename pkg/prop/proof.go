package prop

import (
	"fmt"
	"io"
	"strings"
)

// Rule names a natural-deduction inference.
type Rule string

const (
	RuleAssumption   Rule = "assumption"
	RuleTrueIntro    Rule = "true-intro"
	RuleAndIntro     Rule = "and-intro"
	RuleAndElimLeft  Rule = "and-elim-left"
	RuleAndElimRight Rule = "and-elim-right"
	RuleOrIntroLeft  Rule = "or-intro-left"
	RuleOrIntroRight Rule = "or-intro-right"
	RuleOrElim       Rule = "or-elim"
	RuleImpIntro     Rule = "imp-intro"
	RuleImpElim      Rule = "imp-elim"
	RuleExFalso      Rule = "ex-falso"
	RuleClassical    Rule = "classical"
)

// Proof is a natural-deduction certificate. Proofs are immutable
// once constructed; Check validates a certificate independently of
// the search that produced it.
type Proof struct {
	rule       Rule
	conclusion *Formula
	premises   []*Proof
}

// Rule returns the inference at the root of the certificate.
func (p *Proof) Rule() Rule {
	return p.rule
}

// Conclusion returns the formula the certificate proves.
func (p *Proof) Conclusion() *Formula {
	return p.conclusion
}

// Premises returns the sub-proofs the root inference rests on.
func (p *Proof) Premises() []*Proof {
	return p.premises
}

// Assumption proves f from a hypothesis f in scope.
func Assumption(f *Formula) *Proof {
	return &Proof{rule: RuleAssumption, conclusion: f}
}

// TrueIntro proves true from nothing.
func TrueIntro() *Proof {
	return &Proof{rule: RuleTrueIntro, conclusion: True()}
}

// AndIntro combines proofs of the two conjuncts.
func AndIntro(l, r *Proof) *Proof {
	return &Proof{
		rule:       RuleAndIntro,
		conclusion: And(l.conclusion, r.conclusion),
		premises:   []*Proof{l, r},
	}
}

// AndElimLeft projects the left conjunct out of a conjunction proof.
func AndElimLeft(p *Proof) *Proof {
	return &Proof{rule: RuleAndElimLeft, conclusion: p.conclusion.Left(), premises: []*Proof{p}}
}

// AndElimRight projects the right conjunct out of a conjunction
// proof.
func AndElimRight(p *Proof) *Proof {
	return &Proof{rule: RuleAndElimRight, conclusion: p.conclusion.Right(), premises: []*Proof{p}}
}

// OrIntroLeft proves the disjunction concl from a proof of its left
// disjunct.
func OrIntroLeft(p *Proof, concl *Formula) *Proof {
	return &Proof{rule: RuleOrIntroLeft, conclusion: concl, premises: []*Proof{p}}
}

// OrIntroRight proves the disjunction concl from a proof of its right
// disjunct.
func OrIntroRight(p *Proof, concl *Formula) *Proof {
	return &Proof{rule: RuleOrIntroRight, conclusion: concl, premises: []*Proof{p}}
}

// OrElim proves the common conclusion of the two branch proofs from a
// disjunction proof. The left branch may assume the left disjunct and
// the right branch the right disjunct; both assumptions are
// discharged here.
func OrElim(disjunction, left, right *Proof) *Proof {
	return &Proof{
		rule:       RuleOrElim,
		conclusion: left.conclusion,
		premises:   []*Proof{disjunction, left, right},
	}
}

// ImpIntro proves assumed -> body.conclusion, discharging the
// assumption.
func ImpIntro(assumed *Formula, body *Proof) *Proof {
	return &Proof{
		rule:       RuleImpIntro,
		conclusion: Implies(assumed, body.conclusion),
		premises:   []*Proof{body},
	}
}

// ImpElim applies an implication proof to a proof of its antecedent.
func ImpElim(implication, antecedent *Proof) *Proof {
	return &Proof{
		rule:       RuleImpElim,
		conclusion: implication.conclusion.Right(),
		premises:   []*Proof{implication, antecedent},
	}
}

// ExFalso proves any goal from a proof of false.
func ExFalso(goal *Formula, contradiction *Proof) *Proof {
	return &Proof{rule: RuleExFalso, conclusion: goal, premises: []*Proof{contradiction}}
}

// Classical proves goal from the given premises when the implication
// from their conclusions to the goal is a classical tautology. Check
// re-validates the tautology, so the certificate stays verifiable.
func Classical(goal *Formula, premises []*Proof) *Proof {
	return &Proof{rule: RuleClassical, conclusion: goal, premises: premises}
}

// Check validates the certificate against the hypotheses in scope. A
// nil return means every inference is justified; the first defective
// inference otherwise.
func Check(p *Proof, hypotheses []*Formula) error {
	return check(p, hypotheses)
}

func check(p *Proof, scope []*Formula) error {
	if p == nil || p.conclusion == nil {
		return fmt.Errorf("empty proof")
	}
	for _, q := range p.premises {
		if p.rule == RuleOrElim || p.rule == RuleImpIntro {
			break // branch premises extend the scope below
		}
		if err := check(q, scope); err != nil {
			return err
		}
	}
	switch p.rule {
	case RuleAssumption:
		for _, h := range scope {
			if h.Equal(p.conclusion) {
				return nil
			}
		}
		return fmt.Errorf("assumption %s is not in scope", p.conclusion)
	case RuleTrueIntro:
		return expect(p, p.conclusion.Kind() == KindTrue, 0)
	case RuleAndIntro:
		if err := expect(p, p.conclusion.Kind() == KindAnd, 2); err != nil {
			return err
		}
		return conclusions(p, p.conclusion.Left(), p.conclusion.Right())
	case RuleAndElimLeft:
		if err := expect(p, true, 1); err != nil {
			return err
		}
		c := p.premises[0].conclusion
		return expect(p, c.Kind() == KindAnd && c.Left().Equal(p.conclusion), 1)
	case RuleAndElimRight:
		if err := expect(p, true, 1); err != nil {
			return err
		}
		c := p.premises[0].conclusion
		return expect(p, c.Kind() == KindAnd && c.Right().Equal(p.conclusion), 1)
	case RuleOrIntroLeft:
		if err := expect(p, p.conclusion.Kind() == KindOr, 1); err != nil {
			return err
		}
		return conclusions(p, p.conclusion.Left())
	case RuleOrIntroRight:
		if err := expect(p, p.conclusion.Kind() == KindOr, 1); err != nil {
			return err
		}
		return conclusions(p, p.conclusion.Right())
	case RuleOrElim:
		if err := expect(p, true, 3); err != nil {
			return err
		}
		disjunction := p.premises[0]
		if err := check(disjunction, scope); err != nil {
			return err
		}
		if disjunction.conclusion.Kind() != KindOr {
			return fmt.Errorf("or-elim over non-disjunction %s", disjunction.conclusion)
		}
		left, right := p.premises[1], p.premises[2]
		if !left.conclusion.Equal(p.conclusion) || !right.conclusion.Equal(p.conclusion) {
			return fmt.Errorf("or-elim branches disagree on the conclusion %s", p.conclusion)
		}
		if err := check(left, append(scope, disjunction.conclusion.Left())); err != nil {
			return err
		}
		return check(right, append(scope, disjunction.conclusion.Right()))
	case RuleImpIntro:
		if err := expect(p, p.conclusion.Kind() == KindImplies, 1); err != nil {
			return err
		}
		body := p.premises[0]
		if !body.conclusion.Equal(p.conclusion.Right()) {
			return fmt.Errorf("imp-intro body proves %s, not %s", body.conclusion, p.conclusion.Right())
		}
		return check(body, append(scope, p.conclusion.Left()))
	case RuleImpElim:
		if err := expect(p, true, 2); err != nil {
			return err
		}
		implication, antecedent := p.premises[0].conclusion, p.premises[1].conclusion
		ok := implication.Kind() == KindImplies &&
			implication.Left().Equal(antecedent) &&
			implication.Right().Equal(p.conclusion)
		return expect(p, ok, 2)
	case RuleExFalso:
		if err := expect(p, true, 1); err != nil {
			return err
		}
		return expect(p, p.premises[0].conclusion.Kind() == KindFalse, 1)
	case RuleClassical:
		under := make([]*Formula, 0, len(p.premises))
		for _, q := range p.premises {
			under = append(under, q.conclusion)
		}
		if !Valid(under, p.conclusion) {
			return fmt.Errorf("classical step does not conclude a tautology: %s", p.conclusion)
		}
		return nil
	}
	return fmt.Errorf("unknown rule %q", p.rule)
}

func expect(p *Proof, shape bool, premises int) error {
	if !shape || len(p.premises) != premises {
		return fmt.Errorf("malformed %s inference concluding %s", p.rule, p.conclusion)
	}
	return nil
}

func conclusions(p *Proof, want ...*Formula) error {
	for i, f := range want {
		if !p.premises[i].conclusion.Equal(f) {
			return fmt.Errorf("%s premise %d proves %s, not %s", p.rule, i, p.premises[i].conclusion, f)
		}
	}
	return nil
}

// Render writes the certificate as an indented inference tree.
func (p *Proof) Render(w io.Writer) {
	p.render(w, 0)
}

func (p *Proof) render(w io.Writer, depth int) {
	fmt.Fprintf(w, "%s%s: %s\n", strings.Repeat("  ", depth), p.rule, p.conclusion)
	for _, q := range p.premises {
		q.render(w, depth+1)
	}
}

// String implements fmt.Stringer.
func (p *Proof) String() string {
	var b strings.Builder
	p.Render(&b)
	return strings.TrimSuffix(b.String(), "\n")
}
