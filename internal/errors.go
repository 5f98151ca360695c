package internal

import "fmt"

// SourceError represents errors accessing an event source
type SourceError struct {
	Path string
	Op   string // "open", "read", "dial", "subscribe"
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// ParseError represents errors parsing events or messages
type ParseError struct {
	Source string // "event", "message"
	Key    string // event id or payload preview
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error [%s] %s: %v", e.Source, e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
