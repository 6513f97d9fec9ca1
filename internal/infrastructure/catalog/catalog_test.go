package catalog_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/uom-go/internal/domain/entity"
	"github.com/hapkiduki/uom-go/internal/domain/quantity"
	"github.com/hapkiduki/uom-go/internal/domain/valueobject"
	"github.com/hapkiduki/uom-go/internal/infrastructure/catalog"
)

func loadUnits(t *testing.T) map[string]*entity.Unit {
	t.Helper()
	units, err := catalog.Units()
	require.NoError(t, err)

	byID := make(map[string]*entity.Unit, len(units))
	for _, u := range units {
		byID[u.ID] = u
	}
	return byID
}

func mustGet(t *testing.T, units map[string]*entity.Unit, id string) *entity.Unit {
	t.Helper()
	u, ok := units[id]
	require.True(t, ok, "unit %s missing from catalog", id)
	return u
}

func TestUnits_IDsAreUnique(t *testing.T) {
	t.Parallel()

	records := catalog.Records()
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
	assert.Len(t, loadUnits(t), len(records))
}

func TestUnits_RatioUnitsHaveNoOffset(t *testing.T) {
	t.Parallel()

	for _, u := range loadUnits(t) {
		if u.Kind == valueobject.KindRatio {
			assert.True(t, u.Offset.IsZero(), "ratio unit %s carries an offset", u.ID)
		}
		assert.Equal(t, 1, u.Scale.Sign(), "unit %s has non-positive scale", u.ID)
	}
}

func TestUnits_BaseUnitsHaveUnitScale(t *testing.T) {
	t.Parallel()

	units := loadUnits(t)
	for _, id := range []string{
		"length.meter",
		"mass.kilogram",
		"time.second",
		"electric_current.ampere",
		"thermodynamic_temperature.kelvin",
		"temperature_interval.kelvin",
		"amount_of_substance.mole",
		"luminous_intensity.candela",
		"power.watt",
		"thermal_resistance.kelvin_per_watt",
		"thermal_resistance.kelvin_second_cubed_per_kilogram_meter_squared",
	} {
		u := mustGet(t, units, id)
		assert.True(t, u.Scale.IsOne(), "%s should be a base unit", id)
	}
}

func TestUnits_ThermalResistanceIsRatio(t *testing.T) {
	t.Parallel()

	count := 0
	for _, u := range loadUnits(t) {
		if u.Dimension == catalog.DimThermalResistance {
			count++
			assert.Equal(t, valueobject.KindRatio, u.Kind, u.ID)
		}
	}
	// 21 per-mass units, 21 per-power units and 4 Celsius units.
	assert.Equal(t, 46, count)
}

var massPrefixes = []string{
	"yotta", "zetta", "exa", "peta", "tera", "giga", "mega", "kilo", "hecto", "deca", "",
	"deci", "centi", "milli", "micro", "nano", "pico", "femto", "atto", "zepto", "yocto",
}

// One unit of thermal resistance equals TI(1)·s³ / (M(1)·m²) for the
// matching interval and mass units.
func TestThermalResistance_BaseUnits(t *testing.T) {
	t.Parallel()

	units := loadUnits(t)
	type triple struct{ interval, mass, resistance string }

	cases := make([]triple, 0, len(massPrefixes)+1)
	for _, p := range massPrefixes {
		cases = append(cases, triple{
			"temperature_interval.kelvin",
			"mass." + p + "gram",
			"thermal_resistance.kelvin_second_cubed_per_" + p + "gram_meter_squared",
		})
	}
	cases = append(cases, triple{
		"temperature_interval.degree_celsius",
		"mass.kilogram",
		"thermal_resistance.degree_celsius_second_cubed_per_kilogram_meter_squared",
	})

	one := big.NewRat(1, 1)
	second := mustGet(t, units, "time.second")
	meter := mustGet(t, units, "length.meter")

	for _, c := range cases {
		t.Run(c.resistance, func(t *testing.T) {
			t.Parallel()

			s := quantity.NewRational(one, second)
			m := quantity.NewRational(one, meter)

			num := quantity.NewRational(one, mustGet(t, units, c.interval))
			for i := 0; i < 3; i++ {
				var err error
				num, err = num.Multiply(s)
				require.NoError(t, err)
			}
			den := quantity.NewRational(one, mustGet(t, units, c.mass))
			for i := 0; i < 2; i++ {
				var err error
				den, err = den.Multiply(m)
				require.NoError(t, err)
			}
			got, err := num.Divide(den)
			require.NoError(t, err)

			want := quantity.NewRational(one, mustGet(t, units, c.resistance))
			assert.Equal(t, want.Dimension(), got.Dimension())
			assert.Equal(t, want.Kind(), got.Kind())
			assert.Zero(t, want.Base().Cmp(got.Base()), "want %s, got %s", want.Base(), got.Base())
		})
	}
}

// One unit of thermal resistance equals TI(1) / P(1).
func TestThermalResistance_IntervalPerPowerUnits(t *testing.T) {
	t.Parallel()

	units := loadUnits(t)
	type triple struct{ interval, power, resistance string }

	cases := make([]triple, 0, len(massPrefixes)+3)
	for _, p := range massPrefixes {
		cases = append(cases, triple{
			"temperature_interval.kelvin",
			"power." + p + "watt",
			"thermal_resistance.kelvin_per_" + p + "watt",
		})
	}
	cases = append(cases,
		triple{"temperature_interval.degree_celsius", "power.kilowatt", "thermal_resistance.degree_celsius_per_kilowatt"},
		triple{"temperature_interval.degree_celsius", "power.watt", "thermal_resistance.degree_celsius_per_watt"},
		triple{"temperature_interval.degree_celsius", "power.milliwatt", "thermal_resistance.degree_celsius_per_milliwatt"},
	)

	for _, c := range cases {
		t.Run(c.resistance, func(t *testing.T) {
			t.Parallel()

			interval := quantity.NewFloat64(1, mustGet(t, units, c.interval))
			power := quantity.NewFloat64(1, mustGet(t, units, c.power))
			got, err := interval.Divide(power)
			require.NoError(t, err)

			want := quantity.NewFloat64(1, mustGet(t, units, c.resistance))
			assert.Equal(t, want.Dimension(), got.Dimension())
			assert.InEpsilon(t, want.Base(), got.Base(), 1e-12)
		})
	}
}

func TestTemperatureScales(t *testing.T) {
	t.Parallel()

	units := loadUnits(t)
	kelvin := mustGet(t, units, "thermodynamic_temperature.kelvin")

	tests := []struct {
		unit  string
		value float64
		want  float64
	}{
		{"thermodynamic_temperature.degree_celsius", 0, 273.15},
		{"thermodynamic_temperature.degree_celsius", 100, 373.15},
		{"thermodynamic_temperature.degree_fahrenheit", 32, 273.15},
		{"thermodynamic_temperature.degree_fahrenheit", -459.67, 0},
		{"thermodynamic_temperature.degree_rankine", 491.67, 273.15},
	}
	for _, tt := range tests {
		got, err := quantity.NewFloat64(tt.value, mustGet(t, units, tt.unit)).ValueIn(kelvin)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9, "%v %s", tt.value, tt.unit)
	}
}
