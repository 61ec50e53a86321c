// Package keys recursively renames object keys to a target case style.
package keys

import (
	"fmt"

	"github.com/iancoleman/strcase"

	"github.com/mcncl/jsonkit/internal/errors"
	"github.com/mcncl/jsonkit/internal/formatter"
	"github.com/mcncl/jsonkit/internal/models"
	"github.com/mcncl/jsonkit/internal/parser"
)

// Style names a key casing convention.
type Style string

const (
	StyleCamel  Style = "camel"
	StylePascal Style = "pascal"
	StyleSnake  Style = "snake"
	StyleKebab  Style = "kebab"
)

// rename maps a key into the target style.
func rename(key string, style Style) (string, error) {
	switch style {
	case StyleCamel:
		return strcase.ToLowerCamel(key), nil
	case StylePascal:
		return strcase.ToCamel(key), nil
	case StyleSnake:
		return strcase.ToSnake(key), nil
	case StyleKebab:
		return strcase.ToKebab(key), nil
	default:
		return "", errors.NewTransformError(fmt.Sprintf("unknown key style %q", style), nil)
	}
}

// Transform returns a copy of value with every object key renamed to the
// given style. Renames that collide keep the last member, mirroring how
// duplicate keys behave in JSON itself. Array order and scalars are
// untouched.
func Transform(value models.JSONValue, style Style) (models.JSONValue, error) {
	switch v := value.(type) {
	case *models.Object:
		out := models.NewObject()
		for i := 0; i < v.Len(); i++ {
			member := v.At(i)
			key, err := rename(member.Key, style)
			if err != nil {
				return nil, err
			}
			child, err := Transform(member.Value, style)
			if err != nil {
				return nil, err
			}
			out.Set(key, child)
		}
		return out, nil
	case models.Array:
		out := make(models.Array, len(v))
		for i, elem := range v {
			child, err := Transform(elem, style)
			if err != nil {
				return nil, err
			}
			out[i] = child
		}
		return out, nil
	default:
		return v, nil
	}
}

// TransformText parses text under the given dialect, renames the keys and
// returns the pretty-printed result.
func TransformText(text string, dialect models.Dialect, style Style, indent int) (string, error) {
	doc, err := parser.ParseStringDialect(text, dialect)
	if err != nil {
		return "", err
	}
	value, err := Transform(doc.Root, style)
	if err != nil {
		return "", err
	}
	return formatter.NewFormatter(indent).Format(value)
}
