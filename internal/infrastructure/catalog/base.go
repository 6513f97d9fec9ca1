package catalog

import "github.com/hapkiduki/uom-go/internal/domain/valueobject"

func identity(p valueobject.Factor) valueobject.Factor { return p }

func lengthRecords() []Record {
	records := prefixed("length", "meter", DimLength, identity)
	return append(records,
		ratio("length.inch", DimLength, valueobject.MustParseFactor("0.0254")),
		ratio("length.foot", DimLength, valueobject.MustParseFactor("0.3048")),
		ratio("length.yard", DimLength, valueobject.MustParseFactor("0.9144")),
		ratio("length.mile", DimLength, valueobject.MustParseFactor("1609.344")),
		ratio("length.nautical_mile", DimLength, valueobject.MustFactor(1852, 1)),
	)
}

// Mass is the only base quantity whose base unit (kilogram) is itself
// prefixed, so every gram-based scale is divided by kilo.
func massRecords() []Record {
	records := prefixed("mass", "gram", DimMass, func(p valueobject.Factor) valueobject.Factor {
		return p.Mul(valueobject.Milli)
	})
	return append(records,
		ratio("mass.pound", DimMass, valueobject.MustParseFactor("0.45359237")),
		ratio("mass.ounce", DimMass, valueobject.MustParseFactor("0.028349523125")),
	)
}

func timeRecords() []Record {
	records := prefixed("time", "second", DimTime, identity)
	return append(records,
		ratio("time.minute", DimTime, valueobject.MustFactor(60, 1)),
		ratio("time.hour", DimTime, valueobject.MustFactor(3600, 1)),
		ratio("time.day", DimTime, valueobject.MustFactor(86400, 1)),
	)
}

func electricCurrentRecords() []Record {
	return prefixed("electric_current", "ampere", DimElectricCurrent, identity)
}

func amountOfSubstanceRecords() []Record {
	return prefixed("amount_of_substance", "mole", DimAmountOfSubstance, identity)
}

func luminousIntensityRecords() []Record {
	return prefixed("luminous_intensity", "candela", DimLuminousIntensity, identity)
}

// Thermodynamic temperature is Affine: its units disagree on where zero
// is. Temperature interval is the Ratio quantity obtained by subtracting
// two thermodynamic temperatures; its units share the scales but never
// the offsets.
func temperatureRecords() []Record {
	fiveNinths := valueobject.MustFactor(5, 9)
	celsiusZero := valueobject.MustParseFactor("273.15")
	fahrenheitZero := valueobject.MustParseFactor("459.67").Mul(fiveNinths)

	return []Record{
		affine("thermodynamic_temperature.kelvin", DimTemperature, valueobject.One, valueobject.Factor{}),
		affine("thermodynamic_temperature.degree_celsius", DimTemperature, valueobject.One, celsiusZero),
		affine("thermodynamic_temperature.degree_fahrenheit", DimTemperature, fiveNinths, fahrenheitZero),
		affine("thermodynamic_temperature.degree_rankine", DimTemperature, fiveNinths, valueobject.Factor{}),

		ratio("temperature_interval.kelvin", DimTemperature, valueobject.One),
		ratio("temperature_interval.millikelvin", DimTemperature, valueobject.Milli),
		ratio("temperature_interval.degree_celsius", DimTemperature, valueobject.One),
		ratio("temperature_interval.degree_fahrenheit", DimTemperature, fiveNinths),
		ratio("temperature_interval.degree_rankine", DimTemperature, fiveNinths),
	}
}
