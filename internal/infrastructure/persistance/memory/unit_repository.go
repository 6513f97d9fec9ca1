// Package memory provides in-memory implementations of repository interfaces.
package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/hapkiduki/uom-go/internal/domain/entity"
	"github.com/hapkiduki/uom-go/internal/domain/repository"
	"github.com/hapkiduki/uom-go/pkg/errors"
)

// UnitRepository serves a fixed unit catalog from memory.
// It is built once and never written afterwards, so it is safe for
// concurrent use without locking.
type UnitRepository struct {
	byID   map[string]*entity.Unit
	sorted []*entity.Unit
}

var _ repository.UnitRepository = (*UnitRepository)(nil)

// NewUnitRepository creates a repository over the given units.
//
// Returns:
//   - *UnitRepository: the repository
//   - error: ErrInvalidInput for a nil unit, ErrDuplicateUnit when two
//     units share an ID
func NewUnitRepository(units []*entity.Unit) (*UnitRepository, error) {
	r := &UnitRepository{
		byID:   make(map[string]*entity.Unit, len(units)),
		sorted: make([]*entity.Unit, 0, len(units)),
	}
	for i, u := range units {
		if u == nil {
			return nil, errors.Wrapf(repository.ErrInvalidInput, "unit %d is nil", i)
		}
		if _, ok := r.byID[u.ID]; ok {
			return nil, errors.Wrapf(repository.ErrDuplicateUnit, "%s", u.ID)
		}
		r.byID[u.ID] = u
		r.sorted = append(r.sorted, u)
	}
	slices.SortFunc(r.sorted, func(a, b *entity.Unit) int {
		return strings.Compare(a.ID, b.ID)
	})
	return r, nil
}

// GetByID retrieves a unit by its catalog identifier.
func (r *UnitRepository) GetByID(ctx context.Context, id string) (*entity.Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, errors.Wrapf(repository.ErrUnitNotFound, "%s", id)
	}
	return u, nil
}

// FindAll retrieves units matching the filter, ordered by ID.
func (r *UnitRepository) FindAll(ctx context.Context, filter repository.UnitFilter) ([]*entity.Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, errors.Wrapf(repository.ErrInvalidInput,
			"limit %d, offset %d", filter.Limit, filter.Offset)
	}

	out := make([]*entity.Unit, 0)
	skipped := 0
	for _, u := range r.sorted {
		if !filter.Matches(u) {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		out = append(out, u)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

// Count returns the number of units matching the filter, ignoring
// Limit and Offset.
func (r *UnitRepository) Count(ctx context.Context, filter repository.UnitFilter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var n int64
	for _, u := range r.sorted {
		if filter.Matches(u) {
			n++
		}
	}
	return n, nil
}
