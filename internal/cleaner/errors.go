package cleaner

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which step of a clean failed
type ErrorKind string

const (
	// KindNotFound: the input workbook does not exist. Nothing is written.
	KindNotFound ErrorKind = "not_found"

	// KindLoad: the input exists but could not be parsed as a workbook. Nothing is written.
	KindLoad ErrorKind = "load"

	// KindSchema: the header row has no "text" column. Nothing is written.
	KindSchema ErrorKind = "schema"

	// KindSave: the output directory or workbook could not be written.
	KindSave ErrorKind = "save"
)

// Sentinels for errors.Is matching against an *Error of the same kind
var (
	ErrNotFound = errors.New("input file not found")
	ErrLoad     = errors.New("failed to load input file")
	ErrSchema   = errors.New("missing required column")
	ErrSave     = errors.New("failed to save cleaned file")
)

// Error is returned by Clean and carries the failing step and path
type Error struct {
	Kind ErrorKind
	Path string // Input path for not_found/load/schema, output path for save
	Err  error  // Underlying cause, may be nil
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.sentinel().Error()
	if e.Path != "" {
		msg = fmt.Sprintf("%s: '%s'", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	return target == e.sentinel()
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindNotFound:
		return ErrNotFound
	case KindLoad:
		return ErrLoad
	case KindSchema:
		return ErrSchema
	default:
		return ErrSave
	}
}

func newError(kind ErrorKind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// KindOf returns the kind of a clean error, or "" if err is not one
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}
