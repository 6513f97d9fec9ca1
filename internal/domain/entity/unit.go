// Package entity contains the core entities of the domain layer.
package entity

import (
	"fmt"

	"github.com/hapkiduki/uom-go/internal/domain/valueobject"
	"github.com/hapkiduki/uom-go/pkg/errors"
)

// Unit errors define domain-specific error conditions for unit descriptors.
var (
	ErrInvalidUnitID = errors.New("unit id cannot be empty")
	ErrInvalidUnit   = errors.New("invalid unit descriptor")
)

// Unit is a named unit of one (Dimension, Kind) pair.
// Its Scale relates one unit to the dimension's base unit, and for Affine
// units Offset shifts the zero point:
//
//	base = value*Scale + Offset
//
// Units are immutable once built; composition methods return new Units.
type Unit struct {
	// ID is the catalog identifier (e.g. "kelvin_per_watt")
	ID string `json:"id"`

	// Dimension is the dimension every quantity in this unit carries
	Dimension valueobject.Dimension `json:"dimension"`

	// Kind is Ratio or Affine
	Kind valueobject.Kind `json:"kind"`

	// Scale is the exact factor to the base unit (always positive)
	Scale valueobject.Factor `json:"-"`

	// Offset is the base-unit value of this unit's zero (Affine only)
	Offset valueobject.Factor `json:"-"`
}

// NewUnit creates a new Unit after validating its invariants.
//
// Parameters:
//   - id: catalog identifier (required)
//   - dim: owning dimension
//   - kind: owning kind
//   - scale: factor relative to the base unit (must be positive)
//   - offset: zero-point shift (must be zero unless kind is Affine)
//
// Returns:
//   - *Unit: the created Unit
//   - error: ErrInvalidUnitID, ErrInvalidScale, or ErrInvalidUnit /
//     ErrIncompatibleKind when the kind and offset disagree
func NewUnit(
	id string,
	dim valueobject.Dimension,
	kind valueobject.Kind,
	scale, offset valueobject.Factor,
) (*Unit, error) {
	if id == "" {
		return nil, ErrInvalidUnitID
	}
	if !kind.IsValid() {
		return nil, errors.Wrapf(ErrInvalidUnit, "unit %s has unknown kind %s", id, kind)
	}
	if scale.Sign() <= 0 {
		return nil, errors.Wrapf(valueobject.ErrInvalidScale, "unit %s has scale %s", id, scale)
	}
	if kind == valueobject.KindRatio && !offset.IsZero() {
		return nil, errors.Wrapf(valueobject.ErrIncompatibleKind, "ratio unit %s cannot carry offset %s", id, offset)
	}
	if kind == valueobject.KindAffine && dim.IsDimensionless() {
		return nil, errors.Wrapf(ErrInvalidUnit, "affine unit %s must have a dimension", id)
	}

	return &Unit{
		ID:        id,
		Dimension: dim,
		Kind:      kind,
		Scale:     scale,
		Offset:    offset,
	}, nil
}

// NewRatioUnit creates a Ratio unit, which is defined by its scale alone.
func NewRatioUnit(id string, dim valueobject.Dimension, scale valueobject.Factor) (*Unit, error) {
	return NewUnit(id, dim, valueobject.KindRatio, scale, valueobject.Factor{})
}

// NewAffineUnit creates an Affine unit with a zero-point offset.
func NewAffineUnit(id string, dim valueobject.Dimension, scale, offset valueobject.Factor) (*Unit, error) {
	return NewUnit(id, dim, valueobject.KindAffine, scale, offset)
}

// IsAffine checks if the unit measures against an arbitrary zero point.
func (u *Unit) IsAffine() bool {
	return u.Kind == valueobject.KindAffine
}

// Prefixed returns the unit scaled by an SI prefix, computed exactly.
//
// Parameters:
//   - id: identifier of the new unit
//   - prefix: the prefix factor (e.g. valueobject.Kilo)
//
// Returns:
//   - *Unit: the prefixed unit
//   - error: ErrIncompatibleKind for Affine units
func (u *Unit) Prefixed(id string, prefix valueobject.Factor) (*Unit, error) {
	if _, err := valueobject.ScaleKind(u.Kind); err != nil {
		return nil, errors.Wrapf(err, "prefix %s", u.ID)
	}
	return NewRatioUnit(id, u.Dimension, u.Scale.Mul(prefix))
}

// Times returns the product unit u·other (e.g. kelvin second).
//
// Parameters:
//   - id: identifier of the new unit
//   - other: the unit to multiply by
//
// Returns:
//   - *Unit: the product unit
//   - error: ErrIncompatibleKind if either unit is Affine,
//     ErrExponentOverflow if the dimensions cannot combine
func (u *Unit) Times(id string, other *Unit) (*Unit, error) {
	if _, err := valueobject.ProductKind(u.Kind, u.Dimension, other.Kind, other.Dimension); err != nil {
		return nil, errors.Wrapf(err, "%s times %s", u.ID, other.ID)
	}
	dim, err := u.Dimension.Combine(other.Dimension)
	if err != nil {
		return nil, err
	}
	return NewRatioUnit(id, dim, u.Scale.Mul(other.Scale))
}

// Per returns the quotient unit u/other (e.g. kelvin per watt).
//
// Parameters:
//   - id: identifier of the new unit
//   - other: the unit to divide by
//
// Returns:
//   - *Unit: the quotient unit
//   - error: ErrIncompatibleKind if either unit is Affine,
//     ErrExponentOverflow if the dimensions cannot combine
func (u *Unit) Per(id string, other *Unit) (*Unit, error) {
	if _, err := valueobject.ProductKind(u.Kind, u.Dimension, other.Kind, other.Dimension); err != nil {
		return nil, errors.Wrapf(err, "%s per %s", u.ID, other.ID)
	}
	dim, err := u.Dimension.Divide(other.Dimension)
	if err != nil {
		return nil, err
	}
	scale, err := u.Scale.Quo(other.Scale)
	if err != nil {
		return nil, err
	}
	return NewRatioUnit(id, dim, scale)
}

// Pow returns the unit raised to an integer power (e.g. meter squared).
func (u *Unit) Pow(id string, n int) (*Unit, error) {
	if _, err := valueobject.ScaleKind(u.Kind); err != nil {
		return nil, errors.Wrapf(err, "%s to the power %d", u.ID, n)
	}
	dim, err := u.Dimension.Power(n)
	if err != nil {
		return nil, err
	}
	scale, err := u.Scale.Pow(n)
	if err != nil {
		return nil, err
	}
	return NewRatioUnit(id, dim, scale)
}

// Interval returns the Ratio unit measuring differences on this unit's
// scale: same dimension and scale, zero offset. For a Ratio unit it
// returns a renamed copy.
func (u *Unit) Interval(id string) (*Unit, error) {
	return NewRatioUnit(id, u.Dimension, u.Scale)
}

// Compatible checks if values can be converted between u and other.
//
// Returns:
//   - error: ErrDimensionMismatch or ErrIncompatibleKind, nil when compatible
func (u *Unit) Compatible(other *Unit) error {
	if !u.Dimension.Equals(other.Dimension) {
		return errors.Wrapf(valueobject.ErrDimensionMismatch,
			"%s (%s) and %s (%s)", u.ID, u.Dimension, other.ID, other.Dimension)
	}
	if u.Kind != other.Kind {
		return errors.Wrapf(valueobject.ErrIncompatibleKind,
			"%s is %s, %s is %s", u.ID, u.Kind, other.ID, other.Kind)
	}
	return nil
}

// String returns the unit identifier with its dimension and kind.
func (u *Unit) String() string {
	return fmt.Sprintf("%s [%s, %s]", u.ID, u.Dimension, u.Kind)
}
