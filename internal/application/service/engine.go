package service

import (
	"math/big"
	"strconv"
	"strings"

	"gopkg.in/inf.v0"

	"github.com/hapkiduki/uom-go/internal/application/dto"
	"github.com/hapkiduki/uom-go/internal/domain/entity"
	"github.com/hapkiduki/uom-go/internal/domain/quantity"
	"github.com/hapkiduki/uom-go/internal/domain/valueobject"
	"github.com/hapkiduki/uom-go/internal/infrastructure/config"
	"github.com/hapkiduki/uom-go/pkg/errors"
)

// operand is a parsed-later magnitude paired with its resolved unit.
type operand struct {
	value string
	unit  *entity.Unit
}

// evaluation is the outcome of an arithmetic request.
type evaluation struct {
	value string
	dim   valueobject.Dimension
	kind  valueobject.Kind
}

// evaluator runs requests in one numeric representation.
type evaluator interface {
	convert(value string, from, to *entity.Unit) (string, error)
	evaluate(op string, left operand, right *operand, scalar string, result *entity.Unit) (evaluation, error)
}

// engine is the evaluator for representation T, computed with A.
type engine[T any, A quantity.Arithmetic[T]] struct {
	format func(T) string
}

func newEvaluator(numeric string) (evaluator, error) {
	switch numeric {
	case config.NumericFloat64:
		return engine[float64, quantity.Float[float64]]{format: formatFloat}, nil
	case config.NumericDecimal:
		return engine[*inf.Dec, quantity.Decimal]{format: formatDecimal}, nil
	case config.NumericRational:
		return engine[*big.Rat, quantity.Rational]{format: formatRational}, nil
	default:
		return nil, errors.WithHint(
			errors.Newf("unknown numeric representation %q", numeric),
			"use float64, decimal or rational")
	}
}

// parse reads a decimal ("36.6", "1e-3") or fraction ("5/9") string.
func (engine[T, A]) parse(field, s string) (T, error) {
	var zero T
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return zero, &RequestError{Fields: []dto.ValidationError{{
			Field:   field,
			Message: "must be a decimal or fraction",
			Value:   s,
		}}}
	}
	var a A
	return a.FromRat(r), nil
}

func (e engine[T, A]) quantity(field string, in operand) (quantity.Quantity[T, A], error) {
	m, err := e.parse(field, in.value)
	if err != nil {
		return quantity.Quantity[T, A]{}, err
	}
	return quantity.New[A](m, in.unit), nil
}

func (e engine[T, A]) convert(value string, from, to *entity.Unit) (string, error) {
	m, err := e.parse("value", value)
	if err != nil {
		return "", err
	}
	out, err := quantity.Convert[A](m, from, to)
	if err != nil {
		return "", err
	}
	return e.format(out), nil
}

func (e engine[T, A]) evaluate(op string, left operand, right *operand, scalar string, result *entity.Unit) (evaluation, error) {
	l, err := e.quantity("left.value", left)
	if err != nil {
		return evaluation{}, err
	}

	var q quantity.Quantity[T, A]
	if op == dto.OpScale {
		k, err := e.parse("scalar", scalar)
		if err != nil {
			return evaluation{}, err
		}
		if q, err = l.MultiplyScalar(k); err != nil {
			return evaluation{}, err
		}
	} else {
		r, err := e.quantity("right.value", *right)
		if err != nil {
			return evaluation{}, err
		}
		switch op {
		case dto.OpAdd:
			q, err = l.Add(r)
		case dto.OpSubtract:
			q, err = l.Subtract(r)
		case dto.OpMultiply:
			q, err = l.Multiply(r)
		case dto.OpDivide:
			q, err = l.Divide(r)
		default:
			err = errors.AssertionFailedf("unhandled op %q", op)
		}
		if err != nil {
			return evaluation{}, err
		}
	}

	out := q.Base()
	if result != nil {
		v, err := q.ValueIn(result)
		if err != nil {
			return evaluation{}, err
		}
		out = v
	}
	return evaluation{value: e.format(out), dim: q.Dimension(), kind: q.Kind()}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatDecimal drops the trailing zeros a rounded quotient carries.
func formatDecimal(d *inf.Dec) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func formatRational(r *big.Rat) string {
	return r.RatString()
}
