package repository

import (
	"context"
	"strings"

	"github.com/hapkiduki/uom-go/internal/domain/entity"
	"github.com/hapkiduki/uom-go/internal/domain/valueobject"
)

// UnitFilter contains criteria for filtering units.
type UnitFilter struct {
	// Dimension filters units by dimension vector.
	Dimension *valueobject.Dimension

	// Kind filters units by Ratio or Affine.
	Kind *valueobject.Kind

	// Prefix filters units whose ID starts with this string
	// (e.g. "thermal_resistance.").
	Prefix string

	// Limit specifies the maximum number of results (0 means no limit)
	Limit int

	// Offset specifies the starting position for pagination
	Offset int
}

// Matches checks if u satisfies the filter's criteria, ignoring pagination.
func (f UnitFilter) Matches(u *entity.Unit) bool {
	if f.Dimension != nil && !u.Dimension.Equals(*f.Dimension) {
		return false
	}
	if f.Kind != nil && u.Kind != *f.Kind {
		return false
	}
	if f.Prefix != "" && !strings.HasPrefix(u.ID, f.Prefix) {
		return false
	}
	return true
}

// UnitRepository defines the read access to the unit catalog.
//
// Example usage:
//
//	repo, err := memory.NewUnitRepository(units)
//	kelvin, err := repo.GetByID(ctx, "thermodynamic_temperature.kelvin")
type UnitRepository interface {
	// GetByID retrieves a unit by its catalog identifier.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - id: the unit's ID
	//
	// Returns:
	//   - *entity.Unit: the retrieved unit, or nil if not found
	//   - error: ErrUnitNotFound if the unit doesn't exist
	GetByID(ctx context.Context, id string) (*entity.Unit, error)

	// FindAll retrieves units matching the given filter, ordered by ID.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - filter: criteria to filter units
	//
	// Returns:
	//   - []*entity.Unit: list of matching units
	//   - error: any error encountered during retrieval
	FindAll(ctx context.Context, filter UnitFilter) ([]*entity.Unit, error)

	// Count returns the total number of units matching the filter.
	Count(ctx context.Context, filter UnitFilter) (int64, error)
}
