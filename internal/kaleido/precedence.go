package kaleido

// Precedence levels of the default operator set, 1 is the lowest.
const (
	PrecComparison = 10 // <
	PrecTerm       = 20 // + -
	PrecFactor     = 40 // *
)

// Precedence maps binary operator characters to how tightly they bind. A
// higher number binds tighter. The table is never written to once a parser
// holds it.
type Precedence map[byte]int

// DefaultPrecedence returns the standard operator set.
func DefaultPrecedence() Precedence {
	return Precedence{
		'<': PrecComparison,
		'+': PrecTerm,
		'-': PrecTerm,
		'*': PrecFactor,
	}
}

// Of returns the precedence of tok, or -1 when tok is not a binary operator.
func (prec Precedence) Of(tok Token) int {
	if tok.Typ != CHAR {
		return -1
	}
	if p, ok := prec[tok.Char()]; ok && p > 0 {
		return p
	}
	return -1
}

func (prec Precedence) clone() Precedence {
	c := make(Precedence, len(prec))
	for op, p := range prec {
		c[op] = p
	}
	return c
}
