// Package errors provides error handling for uom-go.
// It re-exports github.com/cockroachdb/errors so every layer wraps and
// inspects errors the same way.
//
// Provided features:
//   - Stack traces captured at creation and wrap sites
//   - Wrapping with context that keeps errors.Is working on sentinels
//   - Details and hints that are kept out of the main message
//
// Usage:
//
//	// Wrap a domain sentinel with operand context
//	return errors.Wrapf(valueobject.ErrDimensionMismatch, "add %s and %s", a, b)
//
//	// Check errors
//	if errors.Is(err, valueobject.ErrIncompatibleKind) {
//	    // handle kind violation
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing details and hints
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Mark makes err match reference under Is while keeping its own message.
var Mark = crdb.Mark

// AssertionFailedf reports a broken internal invariant.
var AssertionFailedf = crdb.AssertionFailedf
