// Package rat implements exact rational numbers with value semantics.
//
// A Rat never shares mutable state with another Rat: every operation
// returns a fresh value, so Rats can be copied freely. The zero value is 0.
package rat

import (
	"errors"
	"fmt"
	"iter"
	"math/big"
	"strings"
)

// @Author KHighness
// @Update 2026-10-19

// ErrSyntax is returned by Parse for malformed input.
var ErrSyntax = errors.New("rat: invalid syntax")

// Common values.
var (
	Zero     = Rat{}
	One      = FromInt(1)
	MinusOne = FromInt(-1)
)

// Rat is an exact fraction of arbitrary precision.
type Rat struct {
	v *big.Rat // nil means 0
}

// New returns num/den reduced to lowest terms. It panics if den is zero.
func New(num, den int64) Rat {
	if den == 0 {
		panic("rat: zero denominator")
	}
	return wrap(big.NewRat(num, den))
}

// FromInt returns the integer n as a Rat.
func FromInt(n int64) Rat {
	return wrap(new(big.Rat).SetInt64(n))
}

// FromBig returns num/den. It panics if den is zero.
func FromBig(num, den *big.Int) Rat {
	if den.Sign() == 0 {
		panic("rat: zero denominator")
	}
	return wrap(new(big.Rat).SetFrac(num, den))
}

// Parse reads "n" or "n/d" with optional sign and surrounding spaces.
func Parse(s string) (Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, fmt.Errorf("%w: empty input", ErrSyntax)
	}
	num, den, frac := strings.Cut(s, "/")
	n, ok := new(big.Int).SetString(strings.TrimSpace(num), 10)
	if !ok {
		return Zero, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	d := big.NewInt(1)
	if frac {
		if d, ok = d.SetString(strings.TrimSpace(den), 10); !ok {
			return Zero, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		if d.Sign() == 0 {
			return Zero, fmt.Errorf("%w: zero denominator in %q", ErrSyntax, s)
		}
	}
	return wrap(new(big.Rat).SetFrac(n, d)), nil
}

// MustParse is Parse that panics on error. For literals in tests and tables.
func MustParse(s string) Rat {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

func wrap(v *big.Rat) Rat {
	if v.Sign() == 0 {
		return Rat{}
	}
	return Rat{v: v}
}

var zeroBig = new(big.Rat)

func (r Rat) val() *big.Rat {
	if r.v == nil {
		return zeroBig
	}
	return r.v
}

// Big returns a copy of r as a *big.Rat.
func (r Rat) Big() *big.Rat { return new(big.Rat).Set(r.val()) }

// Add returns r+o.
func (r Rat) Add(o Rat) Rat { return wrap(new(big.Rat).Add(r.val(), o.val())) }

// Sub returns r-o.
func (r Rat) Sub(o Rat) Rat { return wrap(new(big.Rat).Sub(r.val(), o.val())) }

// Mul returns r*o.
func (r Rat) Mul(o Rat) Rat { return wrap(new(big.Rat).Mul(r.val(), o.val())) }

// Div returns r/o. It panics if o is zero.
func (r Rat) Div(o Rat) Rat {
	if o.IsZero() {
		panic("rat: division by zero")
	}
	return wrap(new(big.Rat).Quo(r.val(), o.val()))
}

// Neg returns -r.
func (r Rat) Neg() Rat { return wrap(new(big.Rat).Neg(r.val())) }

// Inverse returns 1/r. The inverse of zero is zero.
func (r Rat) Inverse() Rat {
	if r.IsZero() {
		return Zero
	}
	return wrap(new(big.Rat).Inv(r.val()))
}

// IsZero reports whether r == 0.
func (r Rat) IsZero() bool { return r.val().Sign() == 0 }

// Sign returns -1, 0 or +1.
func (r Rat) Sign() int { return r.val().Sign() }

// Cmp compares r and o, returning -1, 0 or +1.
func (r Rat) Cmp(o Rat) int { return r.val().Cmp(o.val()) }

// Equal reports whether r == o.
func (r Rat) Equal(o Rat) bool { return r.Cmp(o) == 0 }

// IsInt reports whether the denominator of r is 1.
func (r Rat) IsInt() bool { return r.val().IsInt() }

// Num returns the numerator of r in lowest terms.
func (r Rat) Num() *big.Int { return new(big.Int).Set(r.val().Num()) }

// Denom returns the positive denominator of r in lowest terms.
func (r Rat) Denom() *big.Int { return new(big.Int).Set(r.val().Denom()) }

// Int64 returns r as an int64. The second return value is false if r is not
// an integer or does not fit.
func (r Rat) Int64() (int64, bool) {
	b := r.val()
	if !b.IsInt() || !b.Num().IsInt64() {
		return 0, false
	}
	return b.Num().Int64(), true
}

// InRange reports whether lo <= r <= hi.
func (r Rat) InRange(lo, hi int64) bool {
	return r.Cmp(FromInt(lo)) >= 0 && r.Cmp(FromInt(hi)) <= 0
}

// Sum adds up every value of seq. The sum of an empty sequence is 0.
func Sum(seq iter.Seq[Rat]) Rat {
	acc := new(big.Rat)
	for x := range seq {
		acc.Add(acc, x.val())
	}
	return wrap(acc)
}

// String formats r as "n" or "n/d".
func (r Rat) String() string {
	return r.val().RatString()
}
