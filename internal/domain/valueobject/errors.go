package valueobject

import "github.com/hapkiduki/uom-go/pkg/errors"

// Quantity errors define the conditions under which the engine refuses
// to produce a value. They indicate programming errors, never transient
// conditions, and must not be retried.
var (
	// ErrDimensionMismatch is returned when two operands, or a quantity and
	// a unit, do not share the same Dimension Vector.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrIncompatibleKind is returned when an operation violates the
	// Ratio/Affine legality table.
	ErrIncompatibleKind = errors.New("incompatible kind")

	// ErrExponentOverflow is returned when dimension exponent arithmetic
	// leaves the representable range.
	ErrExponentOverflow = errors.New("dimension exponent overflow")

	// ErrFractionalExponent is returned when a rational power of a
	// dimension does not produce integral exponents.
	ErrFractionalExponent = errors.New("dimension exponent is not integral")

	// ErrDivisionByZero is returned when dividing by a zero magnitude or factor.
	ErrDivisionByZero = errors.New("cannot divide by zero")

	// ErrInvalidScale is returned when a unit scale factor is not strictly positive.
	ErrInvalidScale = errors.New("unit scale must be positive")
)
