// Package errors provides structured error handling for the droid framework.
//
// Errors raised by the core (lifecycle, view tree, app registry) are returned
// directly to the caller. Each carries an [ErrorKind] so callers can branch
// with [KindOf] or [Is] without depending on the concrete type.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidStateTransition indicates a lifecycle transition outside the adjacency table.
	KindInvalidStateTransition
	// KindActivityNotFound indicates an activity name missing from the registry.
	KindActivityNotFound
	// KindInvalidColorFormat indicates a color that does not match #RRGGBB.
	KindInvalidColorFormat
	// KindReentrant indicates an operation re-entered while it was still running.
	KindReentrant
	// KindConfig indicates a configuration loading or validation error.
	KindConfig
	// KindStorage indicates a file storage failure.
	KindStorage
	// KindNetwork indicates an HTTP or connectivity failure.
	KindNetwork
	// KindRender indicates a rendering backend error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidStateTransition:
		return "invalid_state_transition"
	case KindActivityNotFound:
		return "activity_not_found"
	case KindInvalidColorFormat:
		return "invalid_color_format"
	case KindReentrant:
		return "reentrant"
	case KindConfig:
		return "config"
	case KindStorage:
		return "storage"
	case KindNetwork:
		return "network"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// kinded is implemented by every typed error in this package.
type kinded interface {
	Kind() ErrorKind
}

// DroidError represents a structured error in the droid framework.
type DroidError struct {
	// Op is the operation that failed (e.g., "storage.WriteFile").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *DroidError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *DroidError) Unwrap() error {
	return e.Err
}

// TransitionError is returned when a lifecycle transition is not allowed
// from the current state. The state is left unchanged.
type TransitionError struct {
	// From is the state the activity was in.
	From string
	// Transition is the attempted transition (e.g., "resume").
	Transition string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid state transition: cannot %s from %s", e.Transition, e.From)
}

// Kind returns KindInvalidStateTransition.
func (e *TransitionError) Kind() ErrorKind { return KindInvalidStateTransition }

// ActivityNotFoundError is returned when starting an unregistered activity.
type ActivityNotFoundError struct {
	// Name is the requested activity name.
	Name string
	// Registered lists every name known to the registry at the time of the call.
	Registered []string
}

func (e *ActivityNotFoundError) Error() string {
	if len(e.Registered) == 0 {
		return fmt.Sprintf("activity %q not registered (no activities registered)", e.Name)
	}
	return fmt.Sprintf("activity %q not registered (registered: %s)", e.Name, strings.Join(e.Registered, ", "))
}

// Kind returns KindActivityNotFound.
func (e *ActivityNotFoundError) Kind() ErrorKind { return KindActivityNotFound }

// ColorFormatError is returned by color setters given a value that is not #RRGGBB.
type ColorFormatError struct {
	Value string
}

func (e *ColorFormatError) Error() string {
	return fmt.Sprintf("invalid color format %q: want #RRGGBB", e.Value)
}

// Kind returns KindInvalidColorFormat.
func (e *ColorFormatError) Kind() ErrorKind { return KindInvalidColorFormat }

// ReentrantError is returned when an operation is invoked again while a
// previous invocation of it is still on the stack.
type ReentrantError struct {
	// Op is the operation that was re-entered (e.g., "app.StartActivity").
	Op string
	// Running describes what was in progress.
	Running string
}

func (e *ReentrantError) Error() string {
	return fmt.Sprintf("%s: re-entered while %s is running", e.Op, e.Running)
}

// Kind returns KindReentrant.
func (e *ReentrantError) Kind() ErrorKind { return KindReentrant }

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "terminal.click").
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

// Kind returns KindPanic.
func (e *PanicError) Kind() ErrorKind { return KindPanic }

// KindOf reports the kind of the first classified error in err's chain.
// A *DroidError contributes its Kind field.
func KindOf(err error) ErrorKind {
	for err != nil {
		if de, ok := err.(*DroidError); ok && de.Kind != KindUnknown {
			return de.Kind
		}
		if k, ok := err.(kinded); ok {
			return k.Kind()
		}
		err = stderrors.Unwrap(err)
	}
	return KindUnknown
}

// Is reports whether err is classified as kind.
func Is(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// Wrap returns a *DroidError for op, or nil if err is nil.
func Wrap(op string, kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &DroidError{Op: op, Kind: kind, Err: err}
}

// ErrorHandler receives errors that cannot be returned to a caller, such as
// failures inside a backend run loop.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *DroidError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
