// Package formula compiles and evaluates widget anchor expressions.
//
// An anchor expression computes a widget's top coordinate from the surface
// height. The grammar is deliberately tiny, since formulas are static
// configuration rather than user input:
//
//	expr := ['-'] term (('+'|'-') term)*
//	term := INT | VAR | VAR '/' INT
//	VAR  := "h" | "height"
//
// Division uses floor semantics (⌊h/k⌋), not Go's truncating division. The
// two agree for the non-negative heights this engine accepts, but the floor
// behavior is part of the contract and holds for negative intermediates too.
//
// Compilation fails with code INVALID_FORMULA when an expression references
// an unknown variable or divides by a zero literal. Evaluation is a pure
// function and never fails: the divisor is always a literal constant, so no
// divide-by-zero can occur at evaluation time, even for height 0.
package formula

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/aliace-game/screenlayout/pkg/errors"
)

// Formula is a compiled anchor expression. The zero value evaluates to 0.
type Formula struct {
	src   string
	terms []term
}

// term is one signed addend: either a literal or the height variable,
// optionally floor-divided by a literal.
type term struct {
	neg  bool
	lit  int
	hvar bool // true when the term is the height variable
	div  int  // 0 means no division
}

// Compile parses src into a Formula.
func Compile(src string) (Formula, error) {
	p := parser{src: src, rest: src}
	terms, err := p.parse()
	if err != nil {
		return Formula{}, err
	}
	return Formula{src: src, terms: terms}, nil
}

// MustCompile is like Compile but panics on error. It is intended for the
// built-in screen tables, whose expressions are fixed at compile time.
func MustCompile(src string) Formula {
	f, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return f
}

// Eval computes the expression for the given surface height.
func (f Formula) Eval(surfaceHeight int) int {
	total := 0
	for _, t := range f.terms {
		v := t.lit
		if t.hvar {
			v = surfaceHeight
			if t.div != 0 {
				v = floorDiv(v, t.div)
			}
		}
		if t.neg {
			v = -v
		}
		total += v
	}
	return total
}

// String returns the source expression the formula was compiled from.
func (f Formula) String() string { return f.src }

// IsZero reports whether the formula is the zero value (never compiled).
func (f Formula) IsZero() bool { return f.src == "" && f.terms == nil }

// floorDiv divides a by b rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// =============================================================================
// Parser
// =============================================================================

type parser struct {
	src  string
	rest string
}

func (p *parser) parse() ([]term, error) {
	p.skipSpace()
	if p.rest == "" {
		return nil, errors.New(errors.ErrCodeInvalidFormula, "empty expression")
	}

	var terms []term
	neg := p.consumeSign()
	for {
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		t.neg = neg
		terms = append(terms, t)

		p.skipSpace()
		if p.rest == "" {
			return terms, nil
		}

		switch p.rest[0] {
		case '+':
			neg = false
		case '-':
			neg = true
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormula,
				"unexpected %q in %q", p.rest[0], p.src)
		}
		p.rest = p.rest[1:]
		p.skipSpace()
		if p.rest == "" {
			return nil, errors.New(errors.ErrCodeInvalidFormula, "trailing operator in %q", p.src)
		}
	}
}

func (p *parser) parseTerm() (term, error) {
	p.skipSpace()

	if ident := p.consumeIdent(); ident != "" {
		if ident != "h" && ident != "height" {
			return term{}, errors.New(errors.ErrCodeInvalidFormula,
				"undefined variable %q in %q", ident, p.src)
		}
		t := term{hvar: true}
		p.skipSpace()
		if strings.HasPrefix(p.rest, "/") {
			p.rest = p.rest[1:]
			p.skipSpace()
			div, ok := p.consumeInt()
			if !ok {
				return term{}, errors.New(errors.ErrCodeInvalidFormula,
					"expected divisor after '/' in %q", p.src)
			}
			if div == 0 {
				return term{}, errors.New(errors.ErrCodeInvalidFormula,
					"division by zero in %q", p.src)
			}
			t.div = div
		}
		return t, nil
	}

	if lit, ok := p.consumeInt(); ok {
		p.skipSpace()
		if strings.HasPrefix(p.rest, "/") {
			return term{}, errors.New(errors.ErrCodeInvalidFormula,
				"only the height variable may be divided in %q", p.src)
		}
		return term{lit: lit}, nil
	}

	return term{}, errors.New(errors.ErrCodeInvalidFormula, "malformed expression %q", p.src)
}

func (p *parser) skipSpace() {
	p.rest = strings.TrimLeftFunc(p.rest, unicode.IsSpace)
}

func (p *parser) consumeSign() bool {
	if strings.HasPrefix(p.rest, "-") {
		p.rest = p.rest[1:]
		return true
	}
	return false
}

func (p *parser) consumeIdent() string {
	i := 0
	for i < len(p.rest) && (isLetter(p.rest[i])) {
		i++
	}
	ident := p.rest[:i]
	p.rest = p.rest[i:]
	return ident
}

func (p *parser) consumeInt() (int, bool) {
	i := 0
	for i < len(p.rest) && p.rest[i] >= '0' && p.rest[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(p.rest[:i])
	if err != nil {
		return 0, false
	}
	p.rest = p.rest[i:]
	return n, true
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}
