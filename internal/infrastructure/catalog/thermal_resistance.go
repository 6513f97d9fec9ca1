package catalog

import "github.com/hapkiduki/uom-go/internal/domain/valueobject"

func powerRecords() []Record {
	records := prefixed("power", "watt", DimPower, identity)
	return append(records,
		ratio("power.erg_per_second", DimPower, valueobject.Pow10(-7)),
		ratio("power.horsepower", DimPower, valueobject.MustParseFactor("745.69987158227022")),
	)
}

// Thermal resistance (base unit kelvin per watt, kg⁻¹·m⁻²·s³·K) has the
// kind of temperature interval, not of thermodynamic temperature: it
// relates to a change of temperature. Its Celsius units therefore carry
// the Celsius scale and never the Celsius offset.
func thermalResistanceRecords() []Record {
	// K·s³/(Xg·m²): kilo / prefix, since the base unit is per kilogram.
	records := make([]Record, 0, 2*len(siPrefixes)+4)
	for _, p := range siPrefixes {
		scale, _ := valueobject.Kilo.Quo(p.factor)
		records = append(records, ratio(
			"thermal_resistance.kelvin_second_cubed_per_"+p.name+"gram_meter_squared",
			DimThermalResistance, scale))
	}

	// K/XW: 1 / prefix. This is how thermal resistance is usually written.
	for _, p := range siPrefixes {
		scale, _ := valueobject.One.Quo(p.factor)
		records = append(records, ratio(
			"thermal_resistance.kelvin_per_"+p.name+"watt",
			DimThermalResistance, scale))
	}

	celsius := []struct {
		id    string
		scale valueobject.Factor
	}{
		{"degree_celsius_second_cubed_per_kilogram_meter_squared", valueobject.One},
		{"degree_celsius_per_kilowatt", valueobject.Milli},
		{"degree_celsius_per_watt", valueobject.One},
		{"degree_celsius_per_milliwatt", valueobject.Kilo},
	}
	for _, c := range celsius {
		records = append(records, ratio("thermal_resistance."+c.id, DimThermalResistance, c.scale))
	}
	return records
}
