// Package valueobject contains value objects that represent concepts without identity.
// Value objects are immutable and compared by their attributes rather than identity.
//
// The value objects of the quantity engine are:
//   - Dimension: exponents over the seven base physical dimensions
//   - Kind: Ratio or Affine, and the table of which operations combine them
//   - Factor: an exact rational used for unit scales, offsets and prefixes
//
// Value Objects follow these principles:
//   - Immutability: Once created, they cannot be changed.
//   - Equality: Two value objects are equal if all their attributes are equal.
//   - Self-validation: They validate their own data upon creation.
//   - Side-effect free: Methods return new instances rather than modifying state
package valueobject

import (
	"math"
	"strings"

	"github.com/hapkiduki/uom-go/pkg/errors"
)

// BaseDimension indexes one of the seven ISQ base dimensions.
type BaseDimension int

// Base dimensions in ISQ order.
const (
	Length      BaseDimension = iota // L
	Mass                             // M
	Time                             // T
	Current                          // I
	Temperature                      // Θ
	Amount                           // N
	Luminosity                       // J

	// NumBaseDimensions is the length of a Dimension.
	NumBaseDimensions = 7
)

var baseSymbols = [NumBaseDimensions]string{"L", "M", "T", "I", "Θ", "N", "J"}

// Symbol returns the ISQ symbol of the base dimension.
func (b BaseDimension) Symbol() string {
	if b < 0 || b >= NumBaseDimensions {
		return "?"
	}
	return baseSymbols[b]
}

// Dimension is the vector of exponents over the base dimensions.
// The zero value is dimensionless and is the identity of Combine.
//
// Example usage:
//
//	power := valueobject.MustDimension(2, 1, -3, 0, 0, 0, 0) // L²MT⁻³
//	perPower, _ := power.Invert()
type Dimension [NumBaseDimensions]int8

// Dimensionless is the all-zero Dimension.
var Dimensionless Dimension

// NewDimension creates a Dimension from exponents in ISQ order.
//
// Parameters:
//   - l, m, t, i, th, n, j: exponents of length, mass, time, current,
//     temperature, amount of substance and luminous intensity
//
// Returns:
//   - Dimension: the created Dimension
//   - error: ErrExponentOverflow if an exponent does not fit
func NewDimension(l, m, t, i, th, n, j int) (Dimension, error) {
	var d Dimension
	for idx, e := range [NumBaseDimensions]int{l, m, t, i, th, n, j} {
		v, err := narrow(e)
		if err != nil {
			return Dimension{}, errors.Wrapf(err, "%s exponent %d", BaseDimension(idx).Symbol(), e)
		}
		d[idx] = v
	}
	return d, nil
}

// MustDimension is like NewDimension but panics on error.
// Use it for static unit tables only.
func MustDimension(l, m, t, i, th, n, j int) Dimension {
	d, err := NewDimension(l, m, t, i, th, n, j)
	if err != nil {
		panic(err)
	}
	return d
}

// Exponent returns the exponent of a single base dimension.
func (d Dimension) Exponent(b BaseDimension) int8 {
	return d[b]
}

// Combine returns the elementwise sum of both vectors.
// It is the dimension of the product of two quantities.
//
// Parameters:
//   - other: the Dimension to add
//
// Returns:
//   - Dimension: the combined Dimension
//   - error: ErrExponentOverflow if an exponent leaves the int8 range
func (d Dimension) Combine(other Dimension) (Dimension, error) {
	var out Dimension
	for i := range d {
		v, err := narrow(int(d[i]) + int(other[i]))
		if err != nil {
			return Dimension{}, errors.Wrapf(err, "combine %s and %s", d, other)
		}
		out[i] = v
	}
	return out, nil
}

// Invert returns the elementwise negation.
// It is the dimension of the reciprocal of a quantity.
//
// Returns:
//   - Dimension: the inverted Dimension
//   - error: ErrExponentOverflow when negating -128
func (d Dimension) Invert() (Dimension, error) {
	return d.Power(-1)
}

// Divide returns the dimension of the quotient d / other.
func (d Dimension) Divide(other Dimension) (Dimension, error) {
	inv, err := other.Invert()
	if err != nil {
		return Dimension{}, err
	}
	return d.Combine(inv)
}

// Power multiplies every exponent by n.
//
// Parameters:
//   - n: the integer power
//
// Returns:
//   - Dimension: the raised Dimension
//   - error: ErrExponentOverflow if an exponent leaves the int8 range
func (d Dimension) Power(n int) (Dimension, error) {
	return d.PowerRatio(n, 1)
}

// PowerRatio multiplies every exponent by num/den, which is how roots of
// a quantity are dimensioned.
//
// Parameters:
//   - num: numerator of the rational power
//   - den: denominator of the rational power (must not be zero)
//
// Returns:
//   - Dimension: the raised Dimension
//   - error: ErrExponentOverflow on overflow or a zero denominator,
//     ErrFractionalExponent if an exponent would not be integral
func (d Dimension) PowerRatio(num, den int) (Dimension, error) {
	if den == 0 {
		return Dimension{}, errors.Wrapf(ErrExponentOverflow, "power %d/0", num)
	}
	if den < 0 {
		num, den = -num, -den
	}
	var out Dimension
	for i, e := range d {
		p, ok := mulInt(int(e), num)
		if !ok {
			return Dimension{}, errors.Wrapf(ErrExponentOverflow, "%s to the power %d/%d", d, num, den)
		}
		if p%den != 0 {
			return Dimension{}, errors.Wrapf(ErrFractionalExponent, "%s to the power %d/%d", d, num, den)
		}
		v, err := narrow(p / den)
		if err != nil {
			return Dimension{}, errors.Wrapf(err, "%s to the power %d/%d", d, num, den)
		}
		out[i] = v
	}
	return out, nil
}

// Equals checks if two Dimensions are structurally equal.
func (d Dimension) Equals(other Dimension) bool {
	return d == other
}

// IsDimensionless checks if every exponent is zero.
func (d Dimension) IsDimensionless() bool {
	return d == Dimensionless
}

// String returns the dimension in ISQ notation, e.g. "L⁻²M⁻¹T³Θ".
// A dimensionless vector is rendered as "1".
func (d Dimension) String() string {
	if d.IsDimensionless() {
		return "1"
	}
	var sb strings.Builder
	for i, e := range d {
		if e == 0 {
			continue
		}
		sb.WriteString(baseSymbols[i])
		if e != 1 {
			sb.WriteString(superscript(int(e)))
		}
	}
	return sb.String()
}

func narrow(v int) (int8, error) {
	if v < math.MinInt8 || v > math.MaxInt8 {
		return 0, ErrExponentOverflow
	}
	return int8(v), nil
}

func mulInt(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

var superscriptDigits = []rune("⁰¹²³⁴⁵⁶⁷⁸⁹")

func superscript(n int) string {
	var sb strings.Builder
	if n < 0 {
		sb.WriteRune('⁻')
		n = -n
	}
	digits := []rune{}
	for {
		digits = append([]rune{superscriptDigits[n%10]}, digits...)
		n /= 10
		if n == 0 {
			break
		}
	}
	sb.WriteString(string(digits))
	return sb.String()
}
