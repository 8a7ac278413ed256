// Package errors provides structured error reporting for Facet.
//
// Widget code never surfaces errors to the end user: invalid state requests
// are silent no-ops and cancellations return normally. What remains are
// collaborator contract violations (an unresolvable transition, a malformed
// theme file) and recovered panics; those are reported here so the embedding
// shell can log or crash as it sees fit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindTransition indicates an animation service resolution failure.
	KindTransition
	// KindConfig indicates a theme or configuration loading failure.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransition:
		return "transition"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// FacetError represents a structured error in a Facet widget or service.
type FacetError struct {
	// Op is the operation that failed (e.g., "details.Show").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget is the component id of the widget involved, if any.
	Widget string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FacetError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FacetError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "events.Emitter.dispatch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by Facet.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *FacetError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
