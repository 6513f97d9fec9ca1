package quantity

import (
	"fmt"

	"github.com/hapkiduki/uom-go/internal/domain/entity"
	"github.com/hapkiduki/uom-go/internal/domain/valueobject"
	"github.com/hapkiduki/uom-go/pkg/errors"
)

// Linear is the exact map m' = m*Scale + Offset between two units.
// Composing maps stays exact; a Linear is only materialised in a numeric
// representation when it is applied.
type Linear struct {
	Scale  valueobject.Factor
	Offset valueobject.Factor
}

// Identity is the Linear map that leaves values unchanged.
var Identity = Linear{Scale: valueobject.One}

// Compose builds the exact conversion from one unit to another:
//
//	base = m*from.Scale + from.Offset
//	m'   = (base - to.Offset) / to.Scale
//
// For Ratio units both offsets are zero, so only the scale ratio remains.
//
// Parameters:
//   - from: unit the magnitude is expressed in
//   - to: unit the magnitude should be expressed in
//
// Returns:
//   - Linear: the exact conversion
//   - error: ErrDimensionMismatch or ErrIncompatibleKind
func Compose(from, to *entity.Unit) (Linear, error) {
	if err := from.Compatible(to); err != nil {
		return Linear{}, err
	}
	scale, err := from.Scale.Quo(to.Scale)
	if err != nil {
		return Linear{}, err
	}
	offset, err := from.Offset.Sub(to.Offset).Quo(to.Scale)
	if err != nil {
		return Linear{}, err
	}
	return Linear{Scale: scale, Offset: offset}, nil
}

// Then returns the map that applies l first and next second.
func (l Linear) Then(next Linear) Linear {
	return Linear{
		Scale:  l.Scale.Mul(next.Scale),
		Offset: l.Offset.Mul(next.Scale).Add(next.Offset),
	}
}

// IsIdentity checks if the map leaves values unchanged.
func (l Linear) IsIdentity() bool {
	return l.Scale.IsOne() && l.Offset.IsZero()
}

// String returns the map as "x*scale + offset".
func (l Linear) String() string {
	return fmt.Sprintf("x*%s + %s", l.Scale, l.Offset)
}

// Apply evaluates l at m in the representation chosen by A, rounding once.
func Apply[A Arithmetic[T], T any](l Linear, m T) T {
	var a A
	return a.MulAdd(m, l.Scale.Rat(), l.Offset.Rat())
}

// ToBase converts a magnitude in unit u to the dimension's base unit.
// The result is always a fresh value, so pointer representations never alias m.
func ToBase[A Arithmetic[T], T any](m T, u *entity.Unit) T {
	return Apply[A](Linear{Scale: u.Scale, Offset: u.Offset}, m)
}

// FromBase converts a base-unit magnitude to unit u by applying the
// exact inverse of u's map:
//
//	m = base*(1/u.Scale) - u.Offset/u.Scale
//
// Returns:
//   - T: magnitude in u
//   - error: ErrDivisionByZero if u has a zero scale
func FromBase[A Arithmetic[T], T any](base T, u *entity.Unit) (T, error) {
	inv, err := u.Scale.Inv()
	if err != nil {
		var zero T
		return zero, errors.Wrapf(err, "unit %s", u.ID)
	}
	return Apply[A](Linear{Scale: inv, Offset: u.Offset.Neg().Mul(inv)}, base), nil
}

// Convert converts magnitude m from one unit to another through the
// exact composed map, so the intermediate base value is never rounded.
//
// Parameters:
//   - m: magnitude expressed in from
//   - from: source unit
//   - to: target unit
//
// Returns:
//   - T: magnitude expressed in to
//   - error: ErrDimensionMismatch or ErrIncompatibleKind
func Convert[A Arithmetic[T], T any](m T, from, to *entity.Unit) (T, error) {
	l, err := Compose(from, to)
	if err != nil {
		var zero T
		return zero, err
	}
	return Apply[A](l, m), nil
}
