// Package catalog holds the unit tables consumed by the quantity engine.
// Tables are plain data: each Record names a unit, its owning dimension
// and kind, and its exact scale and offset to the base unit. Prefixed
// families are expanded from the SI prefix table when the catalog is
// built, so every scale is an exact rational computed once.
//
// Unit ids are "<quantity>.<unit>", e.g. "thermal_resistance.kelvin_per_watt",
// which keeps thermodynamic kelvin and interval kelvin apart.
package catalog

import (
	"github.com/hapkiduki/uom-go/internal/domain/entity"
	"github.com/hapkiduki/uom-go/internal/domain/valueobject"
	"github.com/hapkiduki/uom-go/pkg/errors"
)

// Record is one row of a unit table.
type Record struct {
	// ID is the unit identifier
	ID string

	// Dimension is the owning dimension
	Dimension valueobject.Dimension

	// Kind is the owning kind
	Kind valueobject.Kind

	// Scale is the exact factor to the base unit
	Scale valueobject.Factor

	// Offset is the zero-point shift (Affine only)
	Offset valueobject.Factor
}

// Dimensions of the quantities in the catalog.
var (
	DimLength            = valueobject.MustDimension(1, 0, 0, 0, 0, 0, 0)
	DimArea              = valueobject.MustDimension(2, 0, 0, 0, 0, 0, 0)
	DimMass              = valueobject.MustDimension(0, 1, 0, 0, 0, 0, 0)
	DimTime              = valueobject.MustDimension(0, 0, 1, 0, 0, 0, 0)
	DimElectricCurrent   = valueobject.MustDimension(0, 0, 0, 1, 0, 0, 0)
	DimTemperature       = valueobject.MustDimension(0, 0, 0, 0, 1, 0, 0)
	DimAmountOfSubstance = valueobject.MustDimension(0, 0, 0, 0, 0, 1, 0)
	DimLuminousIntensity = valueobject.MustDimension(0, 0, 0, 0, 0, 0, 1)
	DimPower             = valueobject.MustDimension(2, 1, -3, 0, 0, 0, 0)
	DimThermalResistance = valueobject.MustDimension(-2, -1, 3, 0, 1, 0, 0)
)

type prefix struct {
	name   string
	factor valueobject.Factor
}

// siPrefixes lists yotta through yocto with the unprefixed unit in the
// middle, matching the families of the thermal resistance table.
var siPrefixes = []prefix{
	{"yotta", valueobject.Yotta},
	{"zetta", valueobject.Zetta},
	{"exa", valueobject.Exa},
	{"peta", valueobject.Peta},
	{"tera", valueobject.Tera},
	{"giga", valueobject.Giga},
	{"mega", valueobject.Mega},
	{"kilo", valueobject.Kilo},
	{"hecto", valueobject.Hecto},
	{"deca", valueobject.Deca},
	{"", valueobject.One},
	{"deci", valueobject.Deci},
	{"centi", valueobject.Centi},
	{"milli", valueobject.Milli},
	{"micro", valueobject.Micro},
	{"nano", valueobject.Nano},
	{"pico", valueobject.Pico},
	{"femto", valueobject.Femto},
	{"atto", valueobject.Atto},
	{"zepto", valueobject.Zepto},
	{"yocto", valueobject.Yocto},
}

func ratio(id string, dim valueobject.Dimension, scale valueobject.Factor) Record {
	return Record{ID: id, Dimension: dim, Kind: valueobject.KindRatio, Scale: scale}
}

func affine(id string, dim valueobject.Dimension, scale, offset valueobject.Factor) Record {
	return Record{ID: id, Dimension: dim, Kind: valueobject.KindAffine, Scale: scale, Offset: offset}
}

// prefixed expands a unit over every SI prefix. scale maps a prefix
// factor to the unit's scale relative to the base unit.
func prefixed(quantity, unit string, dim valueobject.Dimension, scale func(valueobject.Factor) valueobject.Factor) []Record {
	records := make([]Record, 0, len(siPrefixes))
	for _, p := range siPrefixes {
		records = append(records, ratio(quantity+"."+p.name+unit, dim, scale(p.factor)))
	}
	return records
}

// Records returns every unit table in the catalog.
func Records() []Record {
	var records []Record
	records = append(records, lengthRecords()...)
	records = append(records, massRecords()...)
	records = append(records, timeRecords()...)
	records = append(records, electricCurrentRecords()...)
	records = append(records, temperatureRecords()...)
	records = append(records, amountOfSubstanceRecords()...)
	records = append(records, luminousIntensityRecords()...)
	records = append(records, powerRecords()...)
	records = append(records, thermalResistanceRecords()...)
	return records
}

// Units validates every record and returns the unit descriptors.
//
// Returns:
//   - []*entity.Unit: the catalog in table order
//   - error: the first record that violates a unit invariant
func Units() ([]*entity.Unit, error) {
	records := Records()
	units := make([]*entity.Unit, 0, len(records))
	for _, r := range records {
		u, err := entity.NewUnit(r.ID, r.Dimension, r.Kind, r.Scale, r.Offset)
		if err != nil {
			return nil, errors.Wrapf(err, "catalog record %s", r.ID)
		}
		units = append(units, u)
	}
	return units, nil
}
