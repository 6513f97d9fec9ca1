package quantity

import (
	"math/big"
	"reflect"

	"golang.org/x/exp/constraints"
	"gopkg.in/inf.v0"
)

// Arithmetic supplies the numeric operations for a representation T.
// Implementations are zero-size types used as type parameters, so the
// engine stays generic without storing a strategy in every Quantity.
//
// Implementations must return fresh values and never mutate operands.
type Arithmetic[T any] interface {
	// Add returns a + b.
	Add(a, b T) T

	// Sub returns a - b.
	Sub(a, b T) T

	// Mul returns a * b.
	Mul(a, b T) T

	// Quo returns a / b. Callers check IsZero(b) first.
	Quo(a, b T) T

	// One returns the multiplicative identity.
	One() T

	// IsZero reports whether a is exactly zero.
	IsZero(a T) bool

	// FromRat materialises an exact scale factor or offset in T.
	FromRat(r *big.Rat) T

	// MulAdd returns m*k + c evaluated exactly and rounded once into T.
	// Unit conversions go through it so that a fractional scale is never
	// rounded on its own before it meets the magnitude.
	MulAdd(m T, k, c *big.Rat) T
}

// Float is the Arithmetic of the built-in floating-point types.
type Float[T constraints.Float] struct{}

func (Float[T]) Add(a, b T) T { return a + b }
func (Float[T]) Sub(a, b T) T { return a - b }
func (Float[T]) Mul(a, b T) T { return a * b }
func (Float[T]) Quo(a, b T) T { return a / b }
func (Float[T]) One() T { return 1 }
func (Float[T]) IsZero(a T) bool { return a == 0 }
func (Float[T]) FromRat(r *big.Rat) T {
	if reflect.TypeFor[T]().Kind() == reflect.Float32 {
		f, _ := orZeroRat(r).Float32()
		return T(f)
	}
	f, _ := orZeroRat(r).Float64()
	return T(f)
}

func (f Float[T]) MulAdd(m T, k, c *big.Rat) T {
	x := new(big.Rat).SetFloat64(float64(m))
	if x == nil {
		// ±Inf and NaN have no rational form.
		return m*f.FromRat(k) + f.FromRat(c)
	}
	return f.FromRat(mulAddRat(x, k, c))
}

// Integer is the Arithmetic of the built-in signed integer types.
// Division, FromRat and MulAdd truncate toward zero.
type Integer[T constraints.Signed] struct{}

func (Integer[T]) Add(a, b T) T { return a + b }
func (Integer[T]) Sub(a, b T) T { return a - b }
func (Integer[T]) Mul(a, b T) T { return a * b }
func (Integer[T]) Quo(a, b T) T { return a / b }
func (Integer[T]) One() T { return 1 }
func (Integer[T]) IsZero(a T) bool { return a == 0 }
func (Integer[T]) FromRat(r *big.Rat) T {
	r = orZeroRat(r)
	return T(new(big.Int).Quo(r.Num(), r.Denom()).Int64())
}

func (i Integer[T]) MulAdd(m T, k, c *big.Rat) T {
	return i.FromRat(mulAddRat(new(big.Rat).SetInt64(int64(m)), k, c))
}

// Rational is the exact Arithmetic over *big.Rat. A nil operand is zero.
type Rational struct{}

func orZeroRat(r *big.Rat) *big.Rat {
	if r == nil {
		return new(big.Rat)
	}
	return r
}

func (Rational) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(orZeroRat(a), orZeroRat(b)) }
func (Rational) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(orZeroRat(a), orZeroRat(b)) }
func (Rational) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(orZeroRat(a), orZeroRat(b)) }
func (Rational) Quo(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(orZeroRat(a), orZeroRat(b)) }
func (Rational) One() *big.Rat { return big.NewRat(1, 1) }
func (Rational) IsZero(a *big.Rat) bool { return a == nil || a.Sign() == 0 }
func (Rational) FromRat(r *big.Rat) *big.Rat {
	return new(big.Rat).Set(orZeroRat(r))
}

func (Rational) MulAdd(m, k, c *big.Rat) *big.Rat {
	return mulAddRat(new(big.Rat).Set(orZeroRat(m)), k, c)
}

// mulAddRat sets x to x*k + c and returns it. Nil factors are zero.
func mulAddRat(x, k, c *big.Rat) *big.Rat {
	x.Mul(x, orZeroRat(k))
	return x.Add(x, orZeroRat(c))
}

// DecimalScale is the number of fractional digits Decimal keeps after
// a rounding operation (quotients, products and materialised factors).
const DecimalScale inf.Scale = 40

// Decimal is the fixed-point Arithmetic over *inf.Dec, rounding half to
// even at DecimalScale fractional digits. A nil operand is zero.
type Decimal struct{}

func orZeroDec(d *inf.Dec) *inf.Dec {
	if d == nil {
		return new(inf.Dec)
	}
	return d
}

func (Decimal) Add(a, b *inf.Dec) *inf.Dec { return new(inf.Dec).Add(orZeroDec(a), orZeroDec(b)) }
func (Decimal) Sub(a, b *inf.Dec) *inf.Dec { return new(inf.Dec).Sub(orZeroDec(a), orZeroDec(b)) }

func (Decimal) Mul(a, b *inf.Dec) *inf.Dec {
	z := new(inf.Dec).Mul(orZeroDec(a), orZeroDec(b))
	if z.Scale() > DecimalScale {
		z.Round(z, DecimalScale, inf.RoundHalfEven)
	}
	return z
}

func (Decimal) Quo(a, b *inf.Dec) *inf.Dec {
	return new(inf.Dec).QuoRound(orZeroDec(a), orZeroDec(b), DecimalScale, inf.RoundHalfEven)
}

func (Decimal) One() *inf.Dec { return inf.NewDec(1, 0) }
func (Decimal) IsZero(a *inf.Dec) bool { return a == nil || a.Sign() == 0 }

func (Decimal) FromRat(r *big.Rat) *inf.Dec {
	r = orZeroRat(r)
	if r.IsInt() {
		return inf.NewDecBig(new(big.Int).Set(r.Num()), 0)
	}
	num := inf.NewDecBig(new(big.Int).Set(r.Num()), 0)
	den := inf.NewDecBig(new(big.Int).Set(r.Denom()), 0)
	return new(inf.Dec).QuoRound(num, den, DecimalScale, inf.RoundHalfEven)
}

func (d Decimal) MulAdd(m *inf.Dec, k, c *big.Rat) *inf.Dec {
	return d.FromRat(mulAddRat(decToRat(orZeroDec(m)), k, c))
}

// decToRat returns the exact rational value of d.
func decToRat(d *inf.Dec) *big.Rat {
	r := new(big.Rat).SetInt(d.UnscaledBig())
	scale := int64(d.Scale())
	if scale == 0 {
		return r
	}
	exp := scale
	if exp < 0 {
		exp = -exp
	}
	pow := new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(exp), nil))
	if scale > 0 {
		return r.Quo(r, pow)
	}
	return r.Mul(r, pow)
}
