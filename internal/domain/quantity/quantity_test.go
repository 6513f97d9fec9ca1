package quantity_test

import (
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/inf.v0"

	"github.com/hapkiduki/uom-go/internal/domain/entity"
	"github.com/hapkiduki/uom-go/internal/domain/quantity"
	"github.com/hapkiduki/uom-go/internal/domain/valueobject"
	"github.com/hapkiduki/uom-go/internal/infrastructure/catalog"
	"github.com/hapkiduki/uom-go/pkg/errors"
)

var units = func() map[string]*entity.Unit {
	list, err := catalog.Units()
	if err != nil {
		panic(err)
	}
	byID := make(map[string]*entity.Unit, len(list))
	for _, u := range list {
		byID[u.ID] = u
	}
	return byID
}()

func unit(t *testing.T, id string) *entity.Unit {
	t.Helper()
	u, ok := units[id]
	require.True(t, ok, "unit %s missing", id)
	return u
}

func TestQuantity_NewAndValueIn(t *testing.T) {
	t.Parallel()

	q := quantity.NewFloat64(2.5, unit(t, "length.kilometer"))
	assert.Equal(t, catalog.DimLength, q.Dimension())
	assert.Equal(t, valueobject.KindRatio, q.Kind())
	assert.InDelta(t, 2500.0, q.Base(), 1e-9)

	m, err := q.ValueIn(unit(t, "length.meter"))
	require.NoError(t, err)
	assert.InDelta(t, 2500.0, m, 1e-9)

	_, err = q.ValueIn(unit(t, "mass.kilogram"))
	assert.True(t, errors.Is(err, valueobject.ErrDimensionMismatch))
}

func TestQuantity_ValueInRejectsKindReinterpretation(t *testing.T) {
	t.Parallel()

	interval := quantity.NewFloat64(10, unit(t, "temperature_interval.kelvin"))
	_, err := interval.ValueIn(unit(t, "thermodynamic_temperature.degree_celsius"))
	assert.True(t, errors.Is(err, valueobject.ErrIncompatibleKind))

	absolute := quantity.NewFloat64(10, unit(t, "thermodynamic_temperature.degree_celsius"))
	_, err = absolute.ValueIn(unit(t, "temperature_interval.kelvin"))
	assert.True(t, errors.Is(err, valueobject.ErrIncompatibleKind))
}

func TestQuantity_RoundTrip(t *testing.T) {
	t.Parallel()

	ids := []string{
		"thermal_resistance.kelvin_per_watt",
		"thermal_resistance.kelvin_per_yottawatt",
		"thermal_resistance.kelvin_per_yoctowatt",
		"thermal_resistance.kelvin_second_cubed_per_gram_meter_squared",
		"thermal_resistance.degree_celsius_per_milliwatt",
	}
	values := []float64{1, 0.1, 3.14159, -42.5, 1e-9, 6.02e23}

	for _, from := range ids {
		for _, to := range ids {
			u, w := unit(t, from), unit(t, to)
			for _, v := range values {
				q := quantity.NewFloat64(v, u)
				inU, err := q.ValueIn(u)
				require.NoError(t, err)

				inW, err := quantity.Convert[quantity.Float[float64]](inU, u, w)
				require.NoError(t, err)
				back, err := quantity.Convert[quantity.Float[float64]](inW, w, u)
				require.NoError(t, err)

				assert.InEpsilon(t, v, back, 1e-12, "%v %s -> %s -> %s", v, from, to, from)
			}

			// Exact representation round-trips exactly.
			r := quantity.NewRational(big.NewRat(314159, 100000), u)
			inW, err := r.ValueIn(w)
			require.NoError(t, err)
			back, err := quantity.NewRational(inW, w).ValueIn(u)
			require.NoError(t, err)
			assert.Zero(t, big.NewRat(314159, 100000).Cmp(back))
		}
	}
}

func TestQuantity_AffineKindPropagation(t *testing.T) {
	t.Parallel()

	celsius := unit(t, "thermodynamic_temperature.degree_celsius")
	fahrenheit := unit(t, "thermodynamic_temperature.degree_fahrenheit")

	boiling := quantity.NewFloat64(100, celsius)
	freezing := quantity.NewFloat64(32, fahrenheit)

	diff, err := boiling.Subtract(freezing)
	require.NoError(t, err)
	assert.Equal(t, valueobject.KindRatio, diff.Kind())

	k, err := diff.ValueIn(unit(t, "temperature_interval.kelvin"))
	require.NoError(t, err)
	assert.InDelta(t, 100.0, k, 1e-9)

	f, err := diff.ValueIn(unit(t, "temperature_interval.degree_fahrenheit"))
	require.NoError(t, err)
	assert.InDelta(t, 180.0, f, 1e-9)

	_, err = boiling.Add(freezing)
	assert.True(t, errors.Is(err, valueobject.ErrIncompatibleKind))
}

func TestQuantity_AffinePlusInterval(t *testing.T) {
	t.Parallel()

	celsius := unit(t, "thermodynamic_temperature.degree_celsius")
	start := quantity.NewFloat64(20, celsius)
	rise := quantity.NewFloat64(5, unit(t, "temperature_interval.degree_celsius"))

	later, err := start.Add(rise)
	require.NoError(t, err)
	assert.Equal(t, valueobject.KindAffine, later.Kind())
	c, err := later.ValueIn(celsius)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, c, 1e-9)

	commuted, err := rise.Add(start)
	require.NoError(t, err)
	assert.Equal(t, valueobject.KindAffine, commuted.Kind())

	earlier, err := start.Subtract(rise)
	require.NoError(t, err)
	assert.Equal(t, valueobject.KindAffine, earlier.Kind())
	c, err = earlier.ValueIn(celsius)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, c, 1e-9)

	_, err = rise.Subtract(start)
	assert.True(t, errors.Is(err, valueobject.ErrIncompatibleKind))
}

func TestQuantity_AddRequiresSameDimension(t *testing.T) {
	t.Parallel()

	a := quantity.NewFloat64(1, unit(t, "length.meter"))
	b := quantity.NewFloat64(1, unit(t, "time.second"))

	_, err := a.Add(b)
	assert.True(t, errors.Is(err, valueobject.ErrDimensionMismatch))
	_, err = a.Subtract(b)
	assert.True(t, errors.Is(err, valueobject.ErrDimensionMismatch))

	sum, err := a.Add(quantity.NewFloat64(2, unit(t, "length.foot")))
	require.NoError(t, err)
	assert.InDelta(t, 1.6096, sum.Base(), 1e-12)
}

func TestQuantity_MultiplyAffine(t *testing.T) {
	t.Parallel()

	t1 := quantity.NewFloat64(300, unit(t, "thermodynamic_temperature.kelvin"))
	t2 := quantity.NewFloat64(20, unit(t, "thermodynamic_temperature.degree_celsius"))

	_, err := t1.Multiply(t2)
	assert.True(t, errors.Is(err, valueobject.ErrIncompatibleKind))

	_, err = t1.Divide(t2)
	assert.True(t, errors.Is(err, valueobject.ErrIncompatibleKind))

	watt := quantity.NewFloat64(1, unit(t, "power.watt"))
	_, err = t1.Divide(watt)
	assert.True(t, errors.Is(err, valueobject.ErrIncompatibleKind))
	_, err = watt.Multiply(t1)
	assert.True(t, errors.Is(err, valueobject.ErrIncompatibleKind))
}

func TestQuantity_IntervalPerPower(t *testing.T) {
	t.Parallel()

	interval := quantity.NewFloat64(30, unit(t, "temperature_interval.kelvin"))
	power := quantity.NewFloat64(15, unit(t, "power.watt"))

	r, err := interval.Divide(power)
	require.NoError(t, err)
	assert.Equal(t, valueobject.KindRatio, r.Kind())

	for i := range r.Dimension() {
		assert.Equal(t, catalog.DimTemperature[i]-catalog.DimPower[i], r.Dimension()[i])
	}
	assert.Equal(t, catalog.DimThermalResistance, r.Dimension())

	kpw, err := r.ValueIn(unit(t, "thermal_resistance.kelvin_per_watt"))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, kpw, 1e-12)
}

func TestThermalResistance_CelsiusScaleOnly(t *testing.T) {
	t.Parallel()

	celsiusPerWatt := unit(t, "thermal_resistance.degree_celsius_per_watt")
	kelvinPerWatt := unit(t, "thermal_resistance.kelvin_per_watt")

	q := quantity.NewFloat64(1.0, celsiusPerWatt)
	got, err := q.ValueIn(kelvinPerWatt)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	l, err := quantity.Compose(celsiusPerWatt, kelvinPerWatt)
	require.NoError(t, err)
	assert.True(t, l.IsIdentity())
}

func TestThermalResistance_PerGramPrefix(t *testing.T) {
	t.Parallel()

	perGram := unit(t, "thermal_resistance.kelvin_second_cubed_per_gram_meter_squared")
	perKilogram := unit(t, "thermal_resistance.kelvin_second_cubed_per_kilogram_meter_squared")

	q := quantity.NewFloat64(1.0, perGram)
	got, err := q.ValueIn(perKilogram)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got)

	d := quantity.NewDecimal(inf.NewDec(1, 0), perGram)
	dv, err := d.ValueIn(perKilogram)
	require.NoError(t, err)
	assert.Zero(t, dv.Cmp(inf.NewDec(1000, 0)))
}

func TestQuantity_ScalarPolicy(t *testing.T) {
	t.Parallel()

	r := quantity.NewFloat64(4, unit(t, "thermal_resistance.kelvin_per_watt"))
	doubled, err := r.MultiplyScalar(2)
	require.NoError(t, err)
	assert.Equal(t, 8.0, doubled.Base())
	assert.Equal(t, r.Dimension(), doubled.Dimension())

	halved, err := r.DivideScalar(2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, halved.Base())

	_, err = r.DivideScalar(0)
	assert.True(t, errors.Is(err, valueobject.ErrDivisionByZero))

	neg, err := r.Negate()
	require.NoError(t, err)
	assert.Equal(t, -4.0, neg.Base())

	temp := quantity.NewFloat64(300, unit(t, "thermodynamic_temperature.kelvin"))
	_, err = temp.MultiplyScalar(2)
	assert.True(t, errors.Is(err, valueobject.ErrIncompatibleKind))
	_, err = temp.DivideScalar(2)
	assert.True(t, errors.Is(err, valueobject.ErrIncompatibleKind))
	_, err = temp.Negate()
	assert.True(t, errors.Is(err, valueobject.ErrIncompatibleKind))
	_, err = temp.Pow(2)
	assert.True(t, errors.Is(err, valueobject.ErrIncompatibleKind))
}

func TestQuantity_DivideByZero(t *testing.T) {
	t.Parallel()

	r := quantity.NewFloat64(4, unit(t, "temperature_interval.kelvin"))
	zero := quantity.NewFloat64(0, unit(t, "power.watt"))

	_, err := r.Divide(zero)
	assert.True(t, errors.Is(err, valueobject.ErrDivisionByZero))

	_, err = quantity.NewFloat64(0, unit(t, "length.meter")).Reciprocal()
	assert.True(t, errors.Is(err, valueobject.ErrDivisionByZero))
}

func TestQuantity_PowAndReciprocal(t *testing.T) {
	t.Parallel()

	side := quantity.NewFloat64(3, unit(t, "length.meter"))
	area, err := side.Pow(2)
	require.NoError(t, err)
	assert.Equal(t, catalog.DimArea, area.Dimension())
	assert.Equal(t, 9.0, area.Base())

	inv, err := side.Reciprocal()
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, inv.Base(), 1e-15)

	back, err := inv.Multiply(side)
	require.NoError(t, err)
	assert.True(t, back.Dimension().IsDimensionless())

	one, err := side.Pow(0)
	require.NoError(t, err)
	assert.True(t, one.Dimension().IsDimensionless())
	assert.Equal(t, 1.0, one.Base())
}

func TestQuantity_ExponentOverflow(t *testing.T) {
	t.Parallel()

	s := quantity.NewFloat64(1, unit(t, "time.second"))
	huge, err := s.Pow(127)
	require.NoError(t, err)

	_, err = huge.Multiply(s)
	assert.True(t, errors.Is(err, valueobject.ErrExponentOverflow))
}

func TestQuantity_PowBounded(t *testing.T) {
	t.Parallel()

	one := quantity.Scalar[quantity.Float[float64]](1)
	for _, n := range []int{quantity.MaxPower + 1, -quantity.MaxPower - 1, 1 << 40, -(1 << 40)} {
		_, err := one.Pow(n)
		assert.True(t, errors.Is(err, valueobject.ErrExponentOverflow), "n=%d", n)
	}

	two := quantity.Scalar[quantity.Rational](big.NewRat(2, 1))
	tests := []struct {
		n    int
		want string
	}{
		{1, "2"},
		{10, "1024"},
		{13, "8192"},
		{-3, "1/8"},
		{quantity.MaxPower, new(big.Int).Lsh(big.NewInt(1), quantity.MaxPower).String()},
	}
	for _, tt := range tests {
		p, err := two.Pow(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, p.Base().RatString(), "n=%d", tt.n)
	}

	zero := quantity.Scalar[quantity.Integer[int64]](int64(0))
	_, err := zero.Pow(-2)
	assert.True(t, errors.Is(err, valueobject.ErrDivisionByZero))
}

func TestQuantity_Scalar(t *testing.T) {
	t.Parallel()

	half := quantity.Scalar[quantity.Float[float64]](0.5)
	assert.True(t, half.Dimension().IsDimensionless())

	r := quantity.NewFloat64(4, unit(t, "length.meter"))
	scaled, err := r.Multiply(half)
	require.NoError(t, err)
	assert.Equal(t, catalog.DimLength, scaled.Dimension())
	assert.Equal(t, 2.0, scaled.Base())
}

func TestQuantity_IsImmutable(t *testing.T) {
	t.Parallel()

	start := big.NewRat(3, 2)
	q := quantity.NewRational(start, unit(t, "power.kilowatt"))
	before := q.Base().RatString()

	_, err := q.Add(q)
	require.NoError(t, err)
	_, err = q.MultiplyScalar(big.NewRat(7, 1))
	require.NoError(t, err)

	assert.Equal(t, before, q.Base().RatString())
	assert.Equal(t, "3/2", start.RatString())
}

func TestQuantity_ConcurrentUse(t *testing.T) {
	t.Parallel()

	kpw := unit(t, "thermal_resistance.kelvin_per_watt")
	cpk := unit(t, "thermal_resistance.degree_celsius_per_kilowatt")
	shared := quantity.NewDecimal(inf.NewDec(125, 2), kpw)

	var wg sync.WaitGroup
	results := make([]*inf.Dec, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := shared.ValueIn(cpk)
			if err == nil {
				results[i] = v
			}
		}(i)
	}
	wg.Wait()

	for _, v := range results {
		require.NotNil(t, v)
		assert.Zero(t, v.Cmp(inf.NewDec(1250, 0)))
	}
}

func TestQuantity_String(t *testing.T) {
	t.Parallel()

	q := quantity.NewFloat64(2, unit(t, "thermal_resistance.kelvin_per_watt"))
	assert.Equal(t, "2 L⁻²M⁻¹T³Θ (ratio)", q.String())
}
