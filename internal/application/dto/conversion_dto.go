package dto

import (
	"strings"

	"github.com/hapkiduki/uom-go/internal/domain/entity"
)

// Operations accepted by EvaluateRequest.Op.
const (
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpMultiply = "multiply"
	OpDivide   = "divide"
	OpScale    = "scale"
)

// ConvertRequest asks for a magnitude expressed in another unit.
type ConvertRequest struct {
	// Value is the magnitude as a decimal or fraction string (e.g. "36.6", "1/3")
	Value string `json:"value"`

	// From is the unit ID the value is expressed in
	From string `json:"from"`

	// To is the unit ID the result is expressed in
	To string `json:"to"`
}

// Validate checks the request fields.
//
// Returns:
//   - []ValidationError: one entry per invalid field, empty when valid
func (r ConvertRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = required(errs, "value", r.Value)
	errs = required(errs, "from", r.From)
	errs = required(errs, "to", r.To)
	return errs
}

// ConvertResponse is the converted magnitude.
type ConvertResponse struct {
	Value     string `json:"value"`
	From      string `json:"from"`
	To        string `json:"to"`
	Dimension string `json:"dimension"`
	Kind      string `json:"kind"`
	Numeric   string `json:"numeric"`
}

// QuantityInput is one operand of an evaluation.
type QuantityInput struct {
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

// EvaluateRequest applies one arithmetic operation to quantities.
//
// add, subtract, multiply and divide take Left and Right; scale takes
// Left and Scalar. The result is expressed in Unit, or as its base value
// when Unit is empty.
type EvaluateRequest struct {
	Op     string         `json:"op"`
	Left   QuantityInput  `json:"left"`
	Right  *QuantityInput `json:"right,omitempty"`
	Scalar string         `json:"scalar,omitempty"`
	Unit   string         `json:"unit,omitempty"`
}

// Validate checks the request fields.
func (r EvaluateRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = required(errs, "left.value", r.Left.Value)
	errs = required(errs, "left.unit", r.Left.Unit)

	switch r.Op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		if r.Right == nil {
			errs = append(errs, ValidationError{Field: "right", Message: "is required for " + r.Op})
			break
		}
		errs = required(errs, "right.value", r.Right.Value)
		errs = required(errs, "right.unit", r.Right.Unit)
	case OpScale:
		errs = required(errs, "scalar", r.Scalar)
	case "":
		errs = append(errs, ValidationError{Field: "op", Message: "is required"})
	default:
		errs = append(errs, ValidationError{
			Field:   "op",
			Message: "must be one of add, subtract, multiply, divide, scale",
			Value:   r.Op,
		})
	}
	return errs
}

// EvaluateResponse is the result of an evaluation.
type EvaluateResponse struct {
	// Value is the result in Unit, or the base value when Unit is empty
	Value string `json:"value"`

	Unit      string `json:"unit,omitempty"`
	Dimension string `json:"dimension"`
	Kind      string `json:"kind"`
	Numeric   string `json:"numeric"`
}

// ListUnitsRequest filters the unit catalog.
type ListUnitsRequest struct {
	// Kind is "ratio", "affine" or empty for both
	Kind string

	// Dimension is seven comma-separated exponents in the order
	// L,M,T,I,Θ,N,J (e.g. "-2,-1,3,0,1,0,0"), or empty for all
	Dimension string

	// Prefix restricts IDs to those starting with it (e.g. "power.")
	Prefix string

	Limit  int
	Offset int
}

// UnitResponse describes one catalog unit.
type UnitResponse struct {
	ID        string  `json:"id"`
	Dimension string  `json:"dimension"`
	Exponents [7]int8 `json:"exponents"`
	Kind      string  `json:"kind"`
	Scale     string  `json:"scale"`
	Offset    string  `json:"offset,omitempty"`
}

// NewUnitResponse maps a unit to its transfer form.
func NewUnitResponse(u *entity.Unit) UnitResponse {
	resp := UnitResponse{
		ID:        u.ID,
		Dimension: u.Dimension.String(),
		Exponents: u.Dimension,
		Kind:      u.Kind.String(),
		Scale:     u.Scale.String(),
	}
	if !u.Offset.IsZero() {
		resp.Offset = u.Offset.String()
	}
	return resp
}

func required(errs []ValidationError, field, value string) []ValidationError {
	if strings.TrimSpace(value) == "" {
		return append(errs, ValidationError{Field: field, Message: "is required"})
	}
	return errs
}
