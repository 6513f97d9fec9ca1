package valueobject

import (
	"math/big"

	"github.com/hapkiduki/uom-go/pkg/errors"
)

// Factor is an exact rational number used for unit scale factors, offsets
// and prefixes. Composing prefixed units multiplies Factors exactly, so
// converting between metric-prefixed units never accumulates drift before
// the value reaches the caller's numeric representation.
//
// The zero value is 0. Factor never mutates its operands.
//
// Example usage:
//
//	perGram := valueobject.One.Mul(valueobject.Kilo) // exact 1000
//	fahrenheit := valueobject.MustFactor(5, 9)
type Factor struct {
	r *big.Rat
}

// One is the multiplicative identity.
var One = Factor{r: big.NewRat(1, 1)}

// SI prefixes as exact powers of ten.
var (
	Yotta = Pow10(24)
	Zetta = Pow10(21)
	Exa   = Pow10(18)
	Peta  = Pow10(15)
	Tera  = Pow10(12)
	Giga  = Pow10(9)
	Mega  = Pow10(6)
	Kilo  = Pow10(3)
	Hecto = Pow10(2)
	Deca  = Pow10(1)
	Deci  = Pow10(-1)
	Centi = Pow10(-2)
	Milli = Pow10(-3)
	Micro = Pow10(-6)
	Nano  = Pow10(-9)
	Pico  = Pow10(-12)
	Femto = Pow10(-15)
	Atto  = Pow10(-18)
	Zepto = Pow10(-21)
	Yocto = Pow10(-24)
)

// NewFactor creates the Factor num/den.
//
// Parameters:
//   - num: numerator
//   - den: denominator (must not be zero)
//
// Returns:
//   - Factor: the exact ratio
//   - error: ErrDivisionByZero if den is zero
func NewFactor(num, den int64) (Factor, error) {
	if den == 0 {
		return Factor{}, errors.Wrapf(ErrDivisionByZero, "factor %d/0", num)
	}
	return Factor{r: big.NewRat(num, den)}, nil
}

// MustFactor is like NewFactor but panics on error.
func MustFactor(num, den int64) Factor {
	f, err := NewFactor(num, den)
	if err != nil {
		panic(err)
	}
	return f
}

// ParseFactor parses a decimal ("273.15", "1e-3") or fraction ("5/9") literal.
func ParseFactor(s string) (Factor, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Factor{}, errors.Newf("invalid factor literal %q", s)
	}
	return Factor{r: r}, nil
}

// MustParseFactor is like ParseFactor but panics on error.
func MustParseFactor(s string) Factor {
	f, err := ParseFactor(s)
	if err != nil {
		panic(err)
	}
	return f
}

// FactorFromRat copies r into a Factor. A nil r is zero.
func FactorFromRat(r *big.Rat) Factor {
	if r == nil {
		return Factor{}
	}
	return Factor{r: new(big.Rat).Set(r)}
}

// Pow10 returns 10^n exactly.
func Pow10(n int) Factor {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(abs)), nil)
	if n < 0 {
		return Factor{r: new(big.Rat).SetFrac(big.NewInt(1), p)}
	}
	return Factor{r: new(big.Rat).SetInt(p)}
}

func (f Factor) rat() *big.Rat {
	if f.r == nil {
		return new(big.Rat)
	}
	return f.r
}

// Rat returns a copy of the underlying rational.
func (f Factor) Rat() *big.Rat {
	return new(big.Rat).Set(f.rat())
}

// Mul returns f * other.
func (f Factor) Mul(other Factor) Factor {
	return Factor{r: new(big.Rat).Mul(f.rat(), other.rat())}
}

// Quo returns f / other.
//
// Returns:
//   - Factor: the exact quotient
//   - error: ErrDivisionByZero if other is zero
func (f Factor) Quo(other Factor) (Factor, error) {
	if other.IsZero() {
		return Factor{}, errors.Wrapf(ErrDivisionByZero, "%s / 0", f)
	}
	return Factor{r: new(big.Rat).Quo(f.rat(), other.rat())}, nil
}

// Add returns f + other.
func (f Factor) Add(other Factor) Factor {
	return Factor{r: new(big.Rat).Add(f.rat(), other.rat())}
}

// Sub returns f - other.
func (f Factor) Sub(other Factor) Factor {
	return Factor{r: new(big.Rat).Sub(f.rat(), other.rat())}
}

// Neg returns -f.
func (f Factor) Neg() Factor {
	return Factor{r: new(big.Rat).Neg(f.rat())}
}

// Inv returns 1/f.
func (f Factor) Inv() (Factor, error) {
	return One.Quo(f)
}

// Pow returns f^n for any integer n.
//
// Returns:
//   - Factor: the exact power
//   - error: ErrDivisionByZero for a negative power of zero
func (f Factor) Pow(n int) (Factor, error) {
	base := f
	if n < 0 {
		inv, err := f.Inv()
		if err != nil {
			return Factor{}, err
		}
		base, n = inv, -n
	}
	r := base.rat()
	num := new(big.Int).Exp(r.Num(), big.NewInt(int64(n)), nil)
	den := new(big.Int).Exp(r.Denom(), big.NewInt(int64(n)), nil)
	return Factor{r: new(big.Rat).SetFrac(num, den)}, nil
}

// Sign returns -1, 0 or +1.
func (f Factor) Sign() int {
	return f.rat().Sign()
}

// IsZero checks if the factor is exactly zero.
func (f Factor) IsZero() bool {
	return f.Sign() == 0
}

// IsOne checks if the factor is exactly one.
func (f Factor) IsOne() bool {
	return f.rat().Cmp(One.r) == 0
}

// Cmp compares f and other and returns -1, 0 or +1.
func (f Factor) Cmp(other Factor) int {
	return f.rat().Cmp(other.rat())
}

// Equals checks if both factors denote the same rational.
func (f Factor) Equals(other Factor) bool {
	return f.Cmp(other) == 0
}

// Float64 returns the nearest float64 value.
func (f Factor) Float64() float64 {
	v, _ := f.rat().Float64()
	return v
}

// String returns the factor as "a/b", or "a" when the denominator is one.
func (f Factor) String() string {
	return f.rat().RatString()
}
