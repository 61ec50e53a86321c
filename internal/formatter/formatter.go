// Package formatter serializes the document model back to JSON text.
package formatter

import (
	"encoding/json"
	"strings"

	"github.com/mcncl/jsonkit/internal/errors"
	"github.com/mcncl/jsonkit/internal/models"
	"github.com/mcncl/jsonkit/internal/parser"
)

// DefaultIndent is the indent width used when none is configured.
const DefaultIndent = 2

// Formatter pretty-prints or minifies JSON values
type Formatter struct {
	indent int
}

// NewFormatter creates a Formatter with the given indent width. Widths
// below 1 fall back to DefaultIndent.
func NewFormatter(indent int) *Formatter {
	if indent < 1 {
		indent = DefaultIndent
	}
	return &Formatter{indent: indent}
}

// Format pretty-prints a value with the configured indent. Object key
// order and number text are preserved.
func (f *Formatter) Format(value models.JSONValue) (string, error) {
	out, err := json.MarshalIndent(value, "", strings.Repeat(" ", f.indent))
	if err != nil {
		return "", errors.NewFormatError("failed to serialize JSON value", err)
	}
	return string(out), nil
}

// Minify emits a value without any insignificant whitespace.
func (f *Formatter) Minify(value models.JSONValue) (string, error) {
	out, err := json.Marshal(value)
	if err != nil {
		return "", errors.NewFormatError("failed to serialize JSON value", err)
	}
	return string(out), nil
}

// FormatText parses text under the given dialect and pretty-prints it.
func (f *Formatter) FormatText(text string, dialect models.Dialect) (string, error) {
	doc, err := parser.ParseStringDialect(text, dialect)
	if err != nil {
		return "", err
	}
	return f.Format(doc.Root)
}

// MinifyText parses text under the given dialect and minifies it.
func (f *Formatter) MinifyText(text string, dialect models.Dialect) (string, error) {
	doc, err := parser.ParseStringDialect(text, dialect)
	if err != nil {
		return "", err
	}
	return f.Minify(doc.Root)
}
