package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Match them with errors.Is; use errors.As with *Error for the
// file, import chain and rule that caused the failure.
var (
	ErrFileTooLarge        = errors.New("file too large")
	ErrFileNotFound        = errors.New("file not found")
	ErrThemeNotFound       = errors.New("theme not found")
	ErrMalformedStylesheet = errors.New("malformed stylesheet")
	ErrImportNotResolvable = errors.New("import not resolvable")
	ErrCyclicImport        = errors.New("cyclic import")
	ErrInvalidRule         = errors.New("invalid rule")
	ErrUnknownColorKey     = errors.New("unknown color key")
	ErrInvalidOperation    = errors.New("invalid operation")
)

// Error is a theme load/save failure.
type Error struct {
	Kind  error
	Path  string
	Chain []string
	// Rule is the offending rule text or selector token, if any.
	Rule string
	// Detail is extra human-readable context such as suggestions.
	Detail string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Path != "" {
		fmt.Fprintf(&b, "%s: ", e.Path)
	}
	b.WriteString(e.Kind.Error())
	if e.Rule != "" {
		fmt.Fprintf(&b, " %q", e.Rule)
	}
	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteString(")")
	}
	if len(e.Chain) > 0 {
		b.WriteString(" [import chain: ")
		b.WriteString(strings.Join(e.Chain, " -> "))
		b.WriteString("]")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
