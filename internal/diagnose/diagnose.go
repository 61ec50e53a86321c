// Package diagnose extracts structured parse errors from JSON and JSON5
// text. The underlying parsers report byte offsets; this package converts
// them to 1-based line/column positions against the original text.
package diagnose

import (
	"encoding/json"
	stderrors "errors"
	"strings"

	"github.com/titanous/json5"

	"github.com/mcncl/jsonkit/internal/models"
)

// Diagnose checks text under the given dialect. It returns nil when the
// text is valid (blank text counts as valid) and a ParseErrorInfo
// otherwise. When no offset can be recovered from the parser, Line is 0.
func Diagnose(text string, dialect models.Dialect) *models.ParseErrorInfo {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	switch dialect {
	case models.DialectJSON5:
		return diagnoseJSON5(text)
	default:
		return diagnoseJSON(text)
	}
}

func diagnoseJSON(text string) *models.ParseErrorInfo {
	var value interface{}
	err := json.Unmarshal([]byte(text), &value)
	if err == nil {
		return nil
	}

	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		line, column := PositionAt(text, int(syntaxErr.Offset))
		return &models.ParseErrorInfo{Message: syntaxErr.Error(), Line: line, Column: column}
	}
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		line, column := PositionAt(text, int(typeErr.Offset))
		return &models.ParseErrorInfo{Message: typeErr.Error(), Line: line, Column: column}
	}

	// No offset available, position unknown
	return &models.ParseErrorInfo{Message: err.Error(), Line: 0, Column: 0}
}

func diagnoseJSON5(text string) *models.ParseErrorInfo {
	var value interface{}
	err := json5.Unmarshal([]byte(text), &value)
	if err == nil {
		return nil
	}

	var syntaxErr *json5.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		line, column := PositionAt(text, int(syntaxErr.Offset))
		return &models.ParseErrorInfo{Message: syntaxErr.Error(), Line: line, Column: column}
	}

	return &models.ParseErrorInfo{Message: err.Error(), Line: 0, Column: 0}
}

// PositionAt converts a byte offset into a 1-based line and column by
// scanning newlines in text up to the offset. Offsets outside the text
// are clamped.
func PositionAt(text string, offset int) (line, column int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	line = 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, offset - lineStart + 1
}
