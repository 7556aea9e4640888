// Package errors provides error annotation with slog attributes and caller
// information. It re-exports the standard library helpers so callers only
// need one errors import.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

// AnnotatedError is an error carrying optional slog attributes and the
// source location where it was created or wrapped.
type AnnotatedError struct {
	msg         string
	source      string
	annotations []slog.Attr
	wrapped     error
}

// New creates an error with the caller's source location attached.
func New(text string) error {
	return &AnnotatedError{msg: text, source: caller()}
}

// NewSentinel creates an error without source information. Use it for
// package-level sentinel errors where the declaration site is not useful.
func NewSentinel(text string) error {
	return &AnnotatedError{msg: text}
}

// Wrap annotates err with a message, the caller's source location, and
// optional slog attributes. A nil err yields an error with just the message.
func Wrap(err error, msg string, annotations ...slog.Attr) error {
	return &AnnotatedError{
		msg:         msg,
		source:      caller(),
		annotations: annotations,
		wrapped:     err,
	}
}

// Error implements the error interface.
func (e *AnnotatedError) Error() string {
	if e.wrapped != nil {
		return e.msg + ": " + e.wrapped.Error()
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any.
func (e *AnnotatedError) Unwrap() error {
	return e.wrapped
}

// SlogError renders err as a grouped slog attribute containing the message,
// the innermost recorded source location, and all annotations found in the
// error chain. It tolerates nil and joined errors.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	var (
		source      string
		annotations []slog.Attr
	)
	collect(err, &source, &annotations)

	args := []any{slog.String("message", err.Error())}
	if source != "" {
		args = append(args, slog.String("source", source))
	}
	if len(annotations) > 0 {
		groupArgs := make([]any, len(annotations))
		for i, attr := range annotations {
			groupArgs[i] = attr
		}
		args = append(args, slog.Group("annotations", groupArgs...))
	}
	return slog.Group("error", args...)
}

// collect walks the error chain, including joined errors, gathering the
// first source location and every annotation.
func collect(err error, source *string, annotations *[]slog.Attr) {
	for err != nil {
		if annotated, ok := err.(*AnnotatedError); ok { //nolint:errorlint // chain is walked node by node
			if *source == "" {
				*source = annotated.source
			}
			*annotations = append(*annotations, annotated.annotations...)
			err = annotated.wrapped
			continue
		}

		switch unwrappable := err.(type) { //nolint:errorlint // chain walk needs the concrete shape
		case interface{ Unwrap() error }:
			err = unwrappable.Unwrap()
		case interface{ Unwrap() []error }:
			for _, joined := range unwrappable.Unwrap() {
				collect(joined, source, annotations)
			}
			return
		default:
			return
		}
	}
}

// caller returns the first stack frame outside this file as "file:line".
func caller() string {
	for i := 1; i < 16; i++ {
		_, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		if strings.HasSuffix(file, "annotatederror.go") {
			continue
		}
		return fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	return ""
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join wraps the given errors into a single error.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
