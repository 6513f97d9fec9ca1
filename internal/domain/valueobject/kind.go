package valueobject

import (
	"fmt"

	"github.com/hapkiduki/uom-go/pkg/errors"
)

// Kind distinguishes quantities whose zero is physically meaningful (Ratio)
// from quantities measured against an arbitrary reference point (Affine).
// Kind is orthogonal to Dimension: thermodynamic temperature and temperature
// interval share the dimension Θ but differ in Kind.
type Kind uint8

const (
	// KindRatio quantities have a true zero and are closed under
	// multiplication and division. Temperature intervals are Ratio.
	KindRatio Kind = iota

	// KindAffine quantities have an arbitrary zero point, such as
	// absolute temperature scales.
	KindAffine
)

// String returns "ratio" or "affine".
func (k Kind) String() string {
	switch k {
	case KindRatio:
		return "ratio"
	case KindAffine:
		return "affine"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind parses the output of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "ratio":
		return KindRatio, nil
	case "affine":
		return KindAffine, nil
	}
	return 0, errors.Wrapf(ErrIncompatibleKind, "unknown kind %q", s)
}

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k == KindRatio || k == KindAffine
}

// The functions below are the single place where the Ratio/Affine
// legality table is enforced. Quantity arithmetic and unit composition
// consult them before touching any magnitude.
//
//	add       Ratio  + Ratio  -> Ratio
//	add       Affine + Ratio  -> Affine   (either operand order)
//	add       Affine + Affine -> illegal
//	subtract  Ratio  - Ratio  -> Ratio
//	subtract  Affine - Ratio  -> Affine
//	subtract  Affine - Affine -> Ratio
//	subtract  Ratio  - Affine -> illegal
//	mul/div   Affine with non-zero dimension on either side -> illegal
//	mul/div   otherwise -> Ratio
//	scale     Ratio -> Ratio, Affine -> illegal

// AddKind returns the Kind of a + b.
//
// Parameters:
//   - a, b: kinds of the left and right operands
//
// Returns:
//   - Kind: the result kind
//   - error: ErrIncompatibleKind when both operands are Affine
func AddKind(a, b Kind) (Kind, error) {
	switch {
	case a == KindRatio && b == KindRatio:
		return KindRatio, nil
	case a == KindAffine && b == KindAffine:
		return 0, errors.WithHint(
			errors.Wrap(ErrIncompatibleKind, "cannot add two affine quantities"),
			"subtract one from the other to obtain an interval")
	default:
		return KindAffine, nil
	}
}

// SubtractKind returns the Kind of a - b.
//
// Parameters:
//   - a, b: kinds of the left and right operands
//
// Returns:
//   - Kind: the result kind; Affine - Affine is an interval (Ratio)
//   - error: ErrIncompatibleKind when subtracting an Affine from a Ratio
func SubtractKind(a, b Kind) (Kind, error) {
	switch {
	case a == b:
		return KindRatio, nil
	case a == KindAffine && b == KindRatio:
		return KindAffine, nil
	default:
		return 0, errors.Wrap(ErrIncompatibleKind, "cannot subtract an affine quantity from a ratio quantity")
	}
}

// ProductKind returns the Kind of a product or quotient of two quantities.
//
// Parameters:
//   - a, da: kind and dimension of the left operand
//   - b, db: kind and dimension of the right operand
//
// Returns:
//   - Kind: always KindRatio when legal
//   - error: ErrIncompatibleKind if either operand is Affine with a non-zero dimension
func ProductKind(a Kind, da Dimension, b Kind, db Dimension) (Kind, error) {
	if a == KindAffine && !da.IsDimensionless() {
		return 0, affineProductError(da)
	}
	if b == KindAffine && !db.IsDimensionless() {
		return 0, affineProductError(db)
	}
	return KindRatio, nil
}

func affineProductError(d Dimension) error {
	return errors.WithHint(
		errors.Wrapf(ErrIncompatibleKind, "cannot multiply or divide affine quantity of dimension %s", d),
		"convert to an interval before combining dimensions")
}

// ScaleKind is the policy for multiplying or dividing a quantity by a bare
// number, negating it, or raising it to a power.
// Scaling an absolute point ("twice the temperature") has no agreed
// meaning, so Affine quantities are rejected.
//
// Parameters:
//   - k: kind of the quantity being scaled
//
// Returns:
//   - Kind: k unchanged when legal
//   - error: ErrIncompatibleKind for Affine quantities
func ScaleKind(k Kind) (Kind, error) {
	if k == KindAffine {
		return 0, errors.WithHint(
			errors.Wrap(ErrIncompatibleKind, "cannot scale an affine quantity"),
			"subtract a reference point to obtain an interval first")
	}
	return k, nil
}
