// Package service contains the application services that drive the
// quantity engine on behalf of the HTTP API and the CLI.
package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/hapkiduki/uom-go/internal/application/dto"
	"github.com/hapkiduki/uom-go/internal/application/port"
	"github.com/hapkiduki/uom-go/internal/domain/entity"
	"github.com/hapkiduki/uom-go/internal/domain/repository"
	"github.com/hapkiduki/uom-go/internal/domain/valueobject"
	"github.com/hapkiduki/uom-go/pkg/errors"
)

// ErrInvalidRequest is matched by every RequestError.
var ErrInvalidRequest = errors.New("invalid request")

// RequestError reports request fields that failed validation.
type RequestError struct {
	Fields []dto.ValidationError
}

func (e *RequestError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrInvalidRequest) hold.
func (e *RequestError) Is(target error) bool {
	return target == ErrInvalidRequest
}

func validate(fields []dto.ValidationError) error {
	if len(fields) == 0 {
		return nil
	}
	return &RequestError{Fields: fields}
}

// ConversionService converts and evaluates quantities named by catalog
// unit IDs. It holds no mutable state and is safe for concurrent use.
type ConversionService struct {
	units   repository.UnitRepository
	eval    evaluator
	numeric string
	log     port.Logger
}

// NewConversionService creates a ConversionService.
//
// Parameters:
//   - units: the unit catalog
//   - numeric: float64, decimal or rational
//   - log: the service logger
//
// Returns:
//   - *ConversionService: the service
//   - error: an unknown numeric representation
func NewConversionService(units repository.UnitRepository, numeric string, log port.Logger) (*ConversionService, error) {
	eval, err := newEvaluator(numeric)
	if err != nil {
		return nil, err
	}
	return &ConversionService{
		units:   units,
		eval:    eval,
		numeric: numeric,
		log:     log.With("component", "conversion_service", "numeric", numeric),
	}, nil
}

// Numeric returns the representation requests are evaluated in.
func (s *ConversionService) Numeric() string {
	return s.numeric
}

// Convert expresses a magnitude in another unit of the same dimension
// and kind.
//
// Returns:
//   - *dto.ConvertResponse: the converted value
//   - error: a RequestError, ErrUnitNotFound, ErrDimensionMismatch or
//     ErrIncompatibleKind
func (s *ConversionService) Convert(ctx context.Context, req dto.ConvertRequest) (*dto.ConvertResponse, error) {
	if err := validate(req.Validate()); err != nil {
		return nil, err
	}
	log := s.log.WithContext(ctx)

	from, err := s.units.GetByID(ctx, req.From)
	if err != nil {
		return nil, err
	}
	to, err := s.units.GetByID(ctx, req.To)
	if err != nil {
		return nil, err
	}

	value, err := s.eval.convert(req.Value, from, to)
	if err != nil {
		log.Debug("conversion rejected", "from", from.ID, "to", to.ID, "error", err)
		return nil, err
	}
	log.Debug("conversion evaluated", "from", from.ID, "to", to.ID)

	return &dto.ConvertResponse{
		Value:     value,
		From:      from.ID,
		To:        to.ID,
		Dimension: to.Dimension.String(),
		Kind:      to.Kind.String(),
		Numeric:   s.numeric,
	}, nil
}

// Evaluate applies one arithmetic operation, enforcing the dimension and
// kind rules of the quantity engine.
//
// Returns:
//   - *dto.EvaluateResponse: the result
//   - error: a RequestError, ErrUnitNotFound, or any engine error
//     (ErrDimensionMismatch, ErrIncompatibleKind, ErrExponentOverflow,
//     ErrDivisionByZero)
func (s *ConversionService) Evaluate(ctx context.Context, req dto.EvaluateRequest) (*dto.EvaluateResponse, error) {
	if err := validate(req.Validate()); err != nil {
		return nil, err
	}
	log := s.log.WithContext(ctx)

	leftUnit, err := s.units.GetByID(ctx, req.Left.Unit)
	if err != nil {
		return nil, err
	}
	left := operand{value: req.Left.Value, unit: leftUnit}

	var right *operand
	if req.Op != dto.OpScale {
		rightUnit, err := s.units.GetByID(ctx, req.Right.Unit)
		if err != nil {
			return nil, err
		}
		right = &operand{value: req.Right.Value, unit: rightUnit}
	}

	var result *entity.Unit
	if req.Unit != "" {
		if result, err = s.units.GetByID(ctx, req.Unit); err != nil {
			return nil, err
		}
	}

	out, err := s.eval.evaluate(req.Op, left, right, req.Scalar, result)
	if err != nil {
		log.Debug("evaluation rejected", "op", req.Op, "left", leftUnit.ID, "error", err)
		return nil, err
	}
	log.Debug("evaluation done", "op", req.Op, "dimension", out.dim.String(), "kind", out.kind.String())

	return &dto.EvaluateResponse{
		Value:     out.value,
		Unit:      req.Unit,
		Dimension: out.dim.String(),
		Kind:      out.kind.String(),
		Numeric:   s.numeric,
	}, nil
}

// GetUnit returns one catalog unit.
func (s *ConversionService) GetUnit(ctx context.Context, id string) (*dto.UnitResponse, error) {
	u, err := s.units.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUnitResponse(u)
	return &resp, nil
}

// ListUnits returns a page of catalog units.
//
// Returns:
//   - *dto.PaginateResponse[dto.UnitResponse]: the page
//   - error: a RequestError for a bad kind, dimension or page bound
func (s *ConversionService) ListUnits(ctx context.Context, req dto.ListUnitsRequest) (*dto.PaginateResponse[dto.UnitResponse], error) {
	filter, err := unitFilter(req)
	if err != nil {
		return nil, err
	}

	units, err := s.units.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.units.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.UnitResponse, 0, len(units))
	for _, u := range units {
		items = append(items, dto.NewUnitResponse(u))
	}
	page := dto.NewPaginateResponse(items, total, req.Limit, req.Offset)
	return &page, nil
}

// CountUnits returns the size of the whole catalog.
func (s *ConversionService) CountUnits(ctx context.Context) (int64, error) {
	return s.units.Count(ctx, repository.UnitFilter{})
}

func unitFilter(req dto.ListUnitsRequest) (repository.UnitFilter, error) {
	var fields []dto.ValidationError
	filter := repository.UnitFilter{
		Prefix: req.Prefix,
		Limit:  req.Limit,
		Offset: req.Offset,
	}

	if req.Kind != "" {
		k, err := valueobject.ParseKind(req.Kind)
		if err != nil {
			fields = append(fields, dto.ValidationError{Field: "kind", Message: "must be ratio or affine", Value: req.Kind})
		} else {
			filter.Kind = &k
		}
	}
	if req.Dimension != "" {
		d, err := ParseDimension(req.Dimension)
		if err != nil {
			fields = append(fields, dto.ValidationError{Field: "dimension", Message: err.Error(), Value: req.Dimension})
		} else {
			filter.Dimension = &d
		}
	}
	if req.Limit < 0 {
		fields = append(fields, dto.ValidationError{Field: "limit", Message: "must not be negative", Value: req.Limit})
	}
	if req.Offset < 0 {
		fields = append(fields, dto.ValidationError{Field: "offset", Message: "must not be negative", Value: req.Offset})
	}
	return filter, validate(fields)
}

// ParseDimension reads seven comma-separated exponents in the order
// L,M,T,I,Θ,N,J, e.g. "-2,-1,3,0,1,0,0" for thermal resistance.
func ParseDimension(s string) (valueobject.Dimension, error) {
	parts := strings.Split(s, ",")
	if len(parts) != valueobject.NumBaseDimensions {
		return valueobject.Dimension{}, errors.Newf("expected %d exponents, got %d", valueobject.NumBaseDimensions, len(parts))
	}
	var e [valueobject.NumBaseDimensions]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return valueobject.Dimension{}, errors.Newf("exponent %d is not an integer", i+1)
		}
		e[i] = n
	}
	return valueobject.NewDimension(e[0], e[1], e[2], e[3], e[4], e[5], e[6])
}
