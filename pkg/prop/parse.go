package prop

import (
	"fmt"
	"strings"
	"unicode"
)

// Parse reads a formula in the syntax printed by Formula.String:
// atoms, "true", "false", "~", "&", "|", "->" and parentheses.
// Precedence from tightest to loosest is ~, &, |, ->; implication is
// right-associative.
func Parse(input string) (*Formula, error) {
	p := parser{input: input}
	if err := p.next(); err != nil {
		return nil, err
	}
	f, err := p.implication()
	if err != nil {
		return nil, err
	}
	if p.tok != tokEOF {
		return nil, p.errorf("unexpected %q", p.lit)
	}
	return f, nil
}

type token int

const (
	tokEOF token = iota
	tokIdent
	tokNot
	tokAnd
	tokOr
	tokImplies
	tokLParen
	tokRParen
)

type parser struct {
	input string
	pos   int // start of the current token
	end   int // first offset past the current token
	tok   token
	lit   string
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("parsing formula: %s at offset %d", fmt.Sprintf(format, args...), p.pos)
}

func (p *parser) next() error {
	for p.end < len(p.input) && unicode.IsSpace(rune(p.input[p.end])) {
		p.end++
	}
	p.pos = p.end
	if p.end == len(p.input) {
		p.tok, p.lit = tokEOF, "end of input"
		return nil
	}
	switch c := p.input[p.end]; {
	case c == '~':
		p.tok, p.lit = tokNot, "~"
		p.end++
	case c == '&':
		p.tok, p.lit = tokAnd, "&"
		p.end++
	case c == '|':
		p.tok, p.lit = tokOr, "|"
		p.end++
	case c == '(':
		p.tok, p.lit = tokLParen, "("
		p.end++
	case c == ')':
		p.tok, p.lit = tokRParen, ")"
		p.end++
	case c == '-':
		if !strings.HasPrefix(p.input[p.end:], "->") {
			return p.errorf("unexpected %q", "-")
		}
		p.tok, p.lit = tokImplies, "->"
		p.end += 2
	case isIdentRune(rune(c), true):
		start := p.end
		for p.end < len(p.input) && isIdentRune(rune(p.input[p.end]), false) {
			p.end++
		}
		p.tok, p.lit = tokIdent, p.input[start:p.end]
	default:
		return p.errorf("unexpected %q", string(c))
	}
	return nil
}

func isIdentRune(c rune, first bool) bool {
	if unicode.IsLetter(c) || c == '_' {
		return true
	}
	return !first && unicode.IsDigit(c)
}

func (p *parser) implication() (*Formula, error) {
	lhs, err := p.disjunction()
	if err != nil {
		return nil, err
	}
	if p.tok != tokImplies {
		return lhs, nil
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	rhs, err := p.implication()
	if err != nil {
		return nil, err
	}
	return Implies(lhs, rhs), nil
}

func (p *parser) disjunction() (*Formula, error) {
	f, err := p.conjunction()
	if err != nil {
		return nil, err
	}
	for p.tok == tokOr {
		if err := p.next(); err != nil {
			return nil, err
		}
		rhs, err := p.conjunction()
		if err != nil {
			return nil, err
		}
		f = Or(f, rhs)
	}
	return f, nil
}

func (p *parser) conjunction() (*Formula, error) {
	f, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.tok == tokAnd {
		if err := p.next(); err != nil {
			return nil, err
		}
		rhs, err := p.unary()
		if err != nil {
			return nil, err
		}
		f = And(f, rhs)
	}
	return f, nil
}

func (p *parser) unary() (*Formula, error) {
	switch p.tok {
	case tokNot:
		if err := p.next(); err != nil {
			return nil, err
		}
		f, err := p.unary()
		if err != nil {
			return nil, err
		}
		return Not(f), nil
	case tokLParen:
		if err := p.next(); err != nil {
			return nil, err
		}
		f, err := p.implication()
		if err != nil {
			return nil, err
		}
		if p.tok != tokRParen {
			return nil, p.errorf("expected %q, found %q", ")", p.lit)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		return f, nil
	case tokIdent:
		lit := p.lit
		if err := p.next(); err != nil {
			return nil, err
		}
		switch lit {
		case "true":
			return True(), nil
		case "false":
			return False(), nil
		}
		return Atom(lit), nil
	}
	return nil, p.errorf("expected a formula, found %q", p.lit)
}
