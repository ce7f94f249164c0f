package affix

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by ParseError, mirroring bad_file_format and
// other_error from spec.md §4.2/§7.
var (
	// ErrBadFileFormat indicates the file's declared SET encoding does
	// not match the encoding the caller asked for, a malformed header,
	// or an unexpected EOF inside a rule block.
	ErrBadFileFormat = errors.New("affix: bad file format")

	// ErrCorruptEntry indicates a malformed entry line or a flag byte
	// that does not match its enclosing block's flag.
	ErrCorruptEntry = errors.New("affix: corrupt entry")

	// ErrLimitExceeded indicates the file violated one of the calling
	// Config's bounds (too many affix entries, a strip string or
	// condition pattern longer than the configured maximum).
	ErrLimitExceeded = errors.New("affix: config limit exceeded")
)

// ParseError reports a failure while parsing an affix file, carrying
// enough context to reproduce the source's "Affix '<f>' is corrupt at
// line N" diagnostics. Grounded on the teacher's nfa.CompileError /
// nfa.BuildError pattern (an Err field plus Unwrap, not a bespoke error
// string format per failure site).
type ParseError struct {
	File string
	Line int
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying sentinel cause, so errors.Is(err,
// ErrBadFileFormat) / errors.Is(err, ErrCorruptEntry) work through a
// *ParseError.
func (e *ParseError) Unwrap() error { return e.Err }

// ConfigError represents an invalid Config field, grounded on the
// teacher's meta.ConfigError.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "affix: invalid config: " + e.Field + ": " + e.Message
}
