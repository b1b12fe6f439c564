// Package errors provides structured error handling for the strut toolkit.
//
// The layout engine itself never returns errors (a pass always completes,
// see pkg/layout); this package serves the surfaces around it: document
// loading, configuration, and the CLI.
package errors

import "fmt"

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a project configuration error.
	KindConfig
	// KindDocument indicates a UI document loading failure.
	KindDocument
	// KindParse indicates a value parsing failure (size specs, enums).
	KindParse
	// KindInternal indicates a toolkit bug surfaced to the caller.
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindDocument:
		return "document"
	case KindParse:
		return "parse"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// StrutError represents a structured error in the strut toolkit.
type StrutError struct {
	// Op is the operation that failed (e.g., "uidl.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *StrutError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *StrutError) Unwrap() error {
	return e.Err
}

// New creates a StrutError from a formatted message.
func New(op string, kind ErrorKind, format string, args ...any) *StrutError {
	return &StrutError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Wrap annotates an underlying error with operation and kind.
// Returns nil if err is nil.
func Wrap(op string, kind ErrorKind, err error) *StrutError {
	if err == nil {
		return nil
	}
	return &StrutError{Op: op, Kind: kind, Err: err}
}

// DocumentError reports a failure at a specific node of a UI document.
type DocumentError struct {
	// Path is the document file path, if known.
	Path string
	// Node is the slash-separated location inside the document tree.
	Node string
	// Err is the underlying error.
	Err error
}

func (e *DocumentError) Error() string {
	switch {
	case e.Path != "" && e.Node != "":
		return fmt.Sprintf("%s: node %s: %v", e.Path, e.Node, e.Err)
	case e.Node != "":
		return fmt.Sprintf("node %s: %v", e.Node, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}
