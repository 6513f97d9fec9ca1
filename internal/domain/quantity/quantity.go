// Package quantity implements the generic quantity engine: values tagged
// with a Dimension and a Kind, conversion between units, and arithmetic
// whose legality follows the Ratio/Affine table in valueobject.
//
// The engine is generic over the numeric representation. A representation
// is a type T plus a zero-size Arithmetic[T] implementation:
//
//	q := quantity.NewFloat64(1.5, kelvinPerWatt)
//	r := quantity.NewRational(big.NewRat(3, 2), kelvinPerWatt)
//	d := quantity.NewDecimal(inf.NewDec(15, 1), kelvinPerWatt)
//
// Every value is immutable and safe to share between goroutines.
package quantity

import (
	"fmt"
	"math"
	"math/big"

	"gopkg.in/inf.v0"

	"github.com/hapkiduki/uom-go/internal/domain/entity"
	"github.com/hapkiduki/uom-go/internal/domain/valueobject"
	"github.com/hapkiduki/uom-go/pkg/errors"
)

// Quantity is a magnitude tagged with its Dimension and Kind.
// The magnitude is stored in base-unit terms; for Affine quantities the
// base unit's own zero is the reference point.
type Quantity[T any, A Arithmetic[T]] struct {
	base T
	dim  valueobject.Dimension
	kind valueobject.Kind
}

// Representation-specific quantity types.
type (
	Float64 = Quantity[float64, Float[float64]]
	Rat     = Quantity[*big.Rat, Rational]
	Dec     = Quantity[*inf.Dec, Decimal]
)

// New creates a Quantity from a magnitude expressed in unit u.
// It always succeeds; the Quantity takes u's Dimension and Kind.
func New[A Arithmetic[T], T any](m T, u *entity.Unit) Quantity[T, A] {
	return Quantity[T, A]{
		base: ToBase[A](m, u),
		dim:  u.Dimension,
		kind: u.Kind,
	}
}

// Scalar creates a dimensionless Ratio quantity.
func Scalar[A Arithmetic[T], T any](m T) Quantity[T, A] {
	return Quantity[T, A]{base: m}
}

// NewFloat64 creates a float64 quantity.
func NewFloat64(m float64, u *entity.Unit) Float64 {
	return New[Float[float64]](m, u)
}

// NewRational creates an exact rational quantity.
func NewRational(m *big.Rat, u *entity.Unit) Rat {
	return New[Rational](m, u)
}

// NewDecimal creates a fixed-point decimal quantity.
func NewDecimal(m *inf.Dec, u *entity.Unit) Dec {
	return New[Decimal](m, u)
}

// Dimension returns the quantity's dimension.
func (q Quantity[T, A]) Dimension() valueobject.Dimension {
	return q.dim
}

// Kind returns the quantity's kind.
func (q Quantity[T, A]) Kind() valueobject.Kind {
	return q.kind
}

// Base returns the magnitude expressed in the dimension's base unit.
func (q Quantity[T, A]) Base() T {
	return q.base
}

// IsZero checks if the base magnitude is zero.
func (q Quantity[T, A]) IsZero() bool {
	var a A
	return a.IsZero(q.base)
}

// ValueIn returns the magnitude expressed in unit u.
//
// Parameters:
//   - u: target unit; must share the quantity's Dimension and Kind
//
// Returns:
//   - T: magnitude in u
//   - error: ErrDimensionMismatch, or ErrIncompatibleKind when u's Kind
//     differs (a Ratio interval is never read out through an Affine unit)
func (q Quantity[T, A]) ValueIn(u *entity.Unit) (T, error) {
	var zero T
	if !q.dim.Equals(u.Dimension) {
		return zero, errors.Wrapf(valueobject.ErrDimensionMismatch,
			"cannot express %s quantity in %s", q.dim, u)
	}
	if q.kind != u.Kind {
		return zero, errors.Wrapf(valueobject.ErrIncompatibleKind,
			"cannot express %s quantity in %s", q.kind, u)
	}
	return FromBase[A](q.base, u)
}

// Add returns q + other.
//
// Parameters:
//   - other: quantity of the same dimension
//
// Returns:
//   - Quantity: the sum; Affine + Ratio stays Affine
//   - error: ErrDimensionMismatch, or ErrIncompatibleKind for Affine + Affine
func (q Quantity[T, A]) Add(other Quantity[T, A]) (Quantity[T, A], error) {
	if !q.dim.Equals(other.dim) {
		return Quantity[T, A]{}, errors.Wrapf(valueobject.ErrDimensionMismatch, "add %s and %s", q.dim, other.dim)
	}
	kind, err := valueobject.AddKind(q.kind, other.kind)
	if err != nil {
		return Quantity[T, A]{}, err
	}
	var a A
	return Quantity[T, A]{base: a.Add(q.base, other.base), dim: q.dim, kind: kind}, nil
}

// Subtract returns q - other.
//
// Parameters:
//   - other: quantity of the same dimension
//
// Returns:
//   - Quantity: the difference; Affine - Affine is a Ratio interval
//   - error: ErrDimensionMismatch, or ErrIncompatibleKind for Ratio - Affine
func (q Quantity[T, A]) Subtract(other Quantity[T, A]) (Quantity[T, A], error) {
	if !q.dim.Equals(other.dim) {
		return Quantity[T, A]{}, errors.Wrapf(valueobject.ErrDimensionMismatch, "subtract %s from %s", other.dim, q.dim)
	}
	kind, err := valueobject.SubtractKind(q.kind, other.kind)
	if err != nil {
		return Quantity[T, A]{}, err
	}
	var a A
	return Quantity[T, A]{base: a.Sub(q.base, other.base), dim: q.dim, kind: kind}, nil
}

// Multiply returns q * other with combined dimensions.
//
// Parameters:
//   - other: any Ratio quantity
//
// Returns:
//   - Quantity: the Ratio product
//   - error: ErrIncompatibleKind if an operand is Affine,
//     ErrExponentOverflow if the dimensions cannot combine
func (q Quantity[T, A]) Multiply(other Quantity[T, A]) (Quantity[T, A], error) {
	kind, err := valueobject.ProductKind(q.kind, q.dim, other.kind, other.dim)
	if err != nil {
		return Quantity[T, A]{}, err
	}
	dim, err := q.dim.Combine(other.dim)
	if err != nil {
		return Quantity[T, A]{}, err
	}
	var a A
	return Quantity[T, A]{base: a.Mul(q.base, other.base), dim: dim, kind: kind}, nil
}

// Divide returns q / other with the dimension q.dim - other.dim.
//
// Parameters:
//   - other: any non-zero Ratio quantity
//
// Returns:
//   - Quantity: the Ratio quotient
//   - error: ErrIncompatibleKind if an operand is Affine,
//     ErrDivisionByZero if other is zero, ErrExponentOverflow
func (q Quantity[T, A]) Divide(other Quantity[T, A]) (Quantity[T, A], error) {
	kind, err := valueobject.ProductKind(q.kind, q.dim, other.kind, other.dim)
	if err != nil {
		return Quantity[T, A]{}, err
	}
	dim, err := q.dim.Divide(other.dim)
	if err != nil {
		return Quantity[T, A]{}, err
	}
	var a A
	if a.IsZero(other.base) {
		return Quantity[T, A]{}, errors.Wrapf(valueobject.ErrDivisionByZero, "divide %s by zero %s", q.dim, other.dim)
	}
	return Quantity[T, A]{base: a.Quo(q.base, other.base), dim: dim, kind: kind}, nil
}

// MultiplyScalar scales the magnitude by a bare number.
//
// Returns:
//   - Quantity: the scaled quantity with unchanged dimension and kind
//   - error: ErrIncompatibleKind for Affine quantities
func (q Quantity[T, A]) MultiplyScalar(k T) (Quantity[T, A], error) {
	kind, err := valueobject.ScaleKind(q.kind)
	if err != nil {
		return Quantity[T, A]{}, err
	}
	var a A
	return Quantity[T, A]{base: a.Mul(q.base, k), dim: q.dim, kind: kind}, nil
}

// DivideScalar divides the magnitude by a bare number.
//
// Returns:
//   - Quantity: the scaled quantity with unchanged dimension and kind
//   - error: ErrIncompatibleKind for Affine quantities, ErrDivisionByZero
func (q Quantity[T, A]) DivideScalar(k T) (Quantity[T, A], error) {
	kind, err := valueobject.ScaleKind(q.kind)
	if err != nil {
		return Quantity[T, A]{}, err
	}
	var a A
	if a.IsZero(k) {
		return Quantity[T, A]{}, errors.Wrapf(valueobject.ErrDivisionByZero, "divide %s by scalar zero", q.dim)
	}
	return Quantity[T, A]{base: a.Quo(q.base, k), dim: q.dim, kind: kind}, nil
}

// Negate returns -q. It is a scaling by -1 and follows the same policy.
func (q Quantity[T, A]) Negate() (Quantity[T, A], error) {
	kind, err := valueobject.ScaleKind(q.kind)
	if err != nil {
		return Quantity[T, A]{}, err
	}
	var a A
	zero := a.Sub(a.One(), a.One())
	return Quantity[T, A]{base: a.Sub(zero, q.base), dim: q.dim, kind: kind}, nil
}

// MaxPower bounds the integer exponent accepted by Pow. It is the largest
// power a unit exponent can be raised to without overflowing a Dimension.
const MaxPower = math.MaxInt8

// Pow raises q to an integer power; q^0 is the dimensionless one.
//
// Returns:
//   - Quantity: the raised Ratio quantity
//   - error: ErrIncompatibleKind for Affine quantities, ErrExponentOverflow
//     when |n| exceeds MaxPower or the dimension overflows,
//     ErrDivisionByZero for a negative power of zero
func (q Quantity[T, A]) Pow(n int) (Quantity[T, A], error) {
	kind, err := valueobject.ScaleKind(q.kind)
	if err != nil {
		return Quantity[T, A]{}, err
	}
	if n > MaxPower || n < -MaxPower {
		return Quantity[T, A]{}, errors.Wrapf(valueobject.ErrExponentOverflow,
			"power %d is outside ±%d", n, MaxPower)
	}
	dim, err := q.dim.Power(n)
	if err != nil {
		return Quantity[T, A]{}, err
	}
	var a A
	exp := n
	if exp < 0 {
		exp = -exp
	}
	// square and multiply
	out, sq := a.One(), q.base
	for ; exp > 0; exp >>= 1 {
		if exp&1 == 1 {
			out = a.Mul(out, sq)
		}
		if exp > 1 {
			sq = a.Mul(sq, sq)
		}
	}
	if n < 0 {
		if a.IsZero(out) {
			return Quantity[T, A]{}, errors.Wrapf(valueobject.ErrDivisionByZero, "%s to the power %d", q.dim, n)
		}
		out = a.Quo(a.One(), out)
	}
	return Quantity[T, A]{base: out, dim: dim, kind: kind}, nil
}

// Reciprocal returns 1/q.
func (q Quantity[T, A]) Reciprocal() (Quantity[T, A], error) {
	return q.Pow(-1)
}

// String returns the base magnitude with its dimension and kind.
// It is meant for logs, not for presenting values to users.
func (q Quantity[T, A]) String() string {
	return fmt.Sprintf("%v %s (%s)", q.base, q.dim, q.kind)
}
