// Package escape wraps and unwraps JSON documents embedded as string
// literals.
package escape

import (
	"encoding/json"
	"strings"

	"github.com/mcncl/jsonkit/internal/errors"
	"github.com/mcncl/jsonkit/internal/models"
	"github.com/mcncl/jsonkit/internal/parser"
)

// Escape wraps text as a JSON string literal, escaping quotes,
// backslashes and control characters.
func Escape(text string) string {
	out, err := json.Marshal(text)
	if err != nil {
		// Marshalling a string cannot fail; invalid UTF-8 is replaced.
		return `""`
	}
	return string(out)
}

// Unescape peels one layer of string escaping from text and parses the
// result as JSON. Only composite results are accepted: a value that
// unescapes to a scalar is rejected. That restriction is product policy
// rather than a JSON rule.
func Unescape(text string) (models.JSONValue, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewInputError("cannot unescape an empty document", errors.ErrEmptyInput)
	}

	var inner string
	if err := json.Unmarshal([]byte(text), &inner); err != nil {
		return nil, errors.NewUnescapeError("input is not a valid JSON string literal", err)
	}

	doc, err := parser.ParseString(inner)
	if err != nil {
		return nil, errors.NewUnescapeError("unescaped text is not valid JSON", err)
	}

	if !models.IsComposite(doc.Root) {
		return nil, errors.NewUnescapeError("unescaped value is not an object or array", errors.ErrScalarResult)
	}

	return doc.Root, nil
}
