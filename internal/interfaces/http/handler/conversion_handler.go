// Package handler provides the HTTP handlers of the JSON API.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/hapkiduki/uom-go/internal/application/dto"
	"github.com/hapkiduki/uom-go/internal/application/port"
	"github.com/hapkiduki/uom-go/internal/application/service"
	"github.com/hapkiduki/uom-go/internal/domain/repository"
	"github.com/hapkiduki/uom-go/internal/domain/valueobject"
	"github.com/hapkiduki/uom-go/pkg/errors"
)

// Page bounds for GET /units.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 500
)

// ConversionService is the application service the handler drives.
type ConversionService interface {
	Convert(ctx context.Context, req dto.ConvertRequest) (*dto.ConvertResponse, error)
	Evaluate(ctx context.Context, req dto.EvaluateRequest) (*dto.EvaluateResponse, error)
	ListUnits(ctx context.Context, req dto.ListUnitsRequest) (*dto.PaginateResponse[dto.UnitResponse], error)
	GetUnit(ctx context.Context, id string) (*dto.UnitResponse, error)
}

// ConversionHandler serves conversions, evaluations and the unit catalog.
type ConversionHandler struct {
	svc ConversionService
	log port.Logger
}

// NewConversionHandler creates a ConversionHandler.
func NewConversionHandler(svc ConversionService, log port.Logger) *ConversionHandler {
	return &ConversionHandler{svc: svc, log: log}
}

// Routes returns the handler's routes, to be mounted under /api/v1.
//
//	POST /conversions
//	POST /evaluations
//	GET  /units
//	GET  /units/{id}
func (h *ConversionHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/conversions", h.Convert)
	r.Post("/evaluations", h.Evaluate)
	r.Get("/units", h.ListUnits)
	r.Get("/units/{id}", h.GetUnit)
	return r
}

// Convert handles POST /conversions.
func (h *ConversionHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req dto.ConvertRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.badBody(w, r, err)
		return
	}
	resp, err := h.svc.Convert(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	render.JSON(w, r, dto.NewSuccessResponse(resp))
}

// Evaluate handles POST /evaluations.
func (h *ConversionHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req dto.EvaluateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.badBody(w, r, err)
		return
	}
	resp, err := h.svc.Evaluate(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	render.JSON(w, r, dto.NewSuccessResponse(resp))
}

// ListUnits handles GET /units?kind=&dimension=&prefix=&limit=&offset=.
func (h *ConversionHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := dto.ListUnitsRequest{
		Kind:      q.Get("kind"),
		Dimension: q.Get("dimension"),
		Prefix:    q.Get("prefix"),
		Limit:     DefaultPageLimit,
	}

	var fields []dto.ValidationError
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > MaxPageLimit {
			fields = append(fields, dto.ValidationError{
				Field:   "limit",
				Message: "must be an integer between 1 and " + strconv.Itoa(MaxPageLimit),
				Value:   s,
			})
		}
		req.Limit = n
	}
	if s := q.Get("offset"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			fields = append(fields, dto.ValidationError{Field: "offset", Message: "must be a non-negative integer", Value: s})
		}
		req.Offset = n
	}
	if len(fields) > 0 {
		h.writeError(w, r, &service.RequestError{Fields: fields})
		return
	}

	page, err := h.svc.ListUnits(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	render.JSON(w, r, dto.NewSuccessResponse(page))
}

// GetUnit handles GET /units/{id}.
func (h *ConversionHandler) GetUnit(w http.ResponseWriter, r *http.Request) {
	unit, err := h.svc.GetUnit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	render.JSON(w, r, dto.NewSuccessResponse(unit))
}

func (h *ConversionHandler) badBody(w http.ResponseWriter, r *http.Request, err error) {
	h.writeError(w, r, &service.RequestError{Fields: []dto.ValidationError{{
		Field:   "body",
		Message: "must be a JSON object: " + err.Error(),
	}}})
}

// errorMapping pairs a sentinel with its HTTP status and error code.
type errorMapping struct {
	target error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{service.ErrInvalidRequest, http.StatusBadRequest, dto.CodeValidation},
	{repository.ErrUnitNotFound, http.StatusNotFound, dto.CodeUnitNotFound},
	{valueobject.ErrDimensionMismatch, http.StatusUnprocessableEntity, dto.CodeDimensionMismatch},
	{valueobject.ErrIncompatibleKind, http.StatusUnprocessableEntity, dto.CodeIncompatibleKind},
	{valueobject.ErrExponentOverflow, http.StatusUnprocessableEntity, dto.CodeExponentOverflow},
	{valueobject.ErrDivisionByZero, http.StatusUnprocessableEntity, dto.CodeDivisionByZero},
}

// StatusFor returns the HTTP status and error code for err.
func StatusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, dto.CodeInternal
}

func (h *ConversionHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := StatusFor(err)
	log := h.log.WithContext(r.Context())

	var resp dto.APIResponse[any]
	var reqErr *service.RequestError
	switch {
	case errors.As(err, &reqErr):
		resp = dto.NewValidationErrorResponse[any](reqErr.Fields)
	case status == http.StatusInternalServerError:
		log.Error("request failed", "path", r.URL.Path, "error", err)
		resp = dto.NewErrorResponse[any](code, "An unexpected error occurred")
	default:
		resp = dto.NewErrorResponse[any](code, err.Error())
		resp.Error.Hint = errors.FlattenHints(err)
	}
	log.Debug("request rejected", "path", r.URL.Path, "status", status, "code", code)

	render.Status(r, status)
	render.JSON(w, r, resp)
}
