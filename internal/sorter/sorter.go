// Package sorter recursively reorders object keys in a JSON document.
package sorter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mcncl/jsonkit/internal/errors"
	"github.com/mcncl/jsonkit/internal/formatter"
	"github.com/mcncl/jsonkit/internal/models"
	"github.com/mcncl/jsonkit/internal/parser"
)

// Sort returns a copy of value with object keys at every nesting level
// reordered by case-sensitive code-point comparison. Array element order
// and scalars are untouched. Values are sorted before their parent is
// re-keyed, so the walk is a single pass.
func Sort(value models.JSONValue, order models.SortOrder) models.JSONValue {
	switch v := value.(type) {
	case *models.Object:
		keys := v.Keys()
		sort.Slice(keys, func(i, j int) bool {
			if order == models.Descending {
				return strings.Compare(keys[i], keys[j]) > 0
			}
			return strings.Compare(keys[i], keys[j]) < 0
		})
		sorted := models.NewObject()
		for _, key := range keys {
			child, _ := v.Get(key)
			sorted.Set(key, Sort(child, order))
		}
		return sorted
	case models.Array:
		sorted := make(models.Array, len(v))
		for i, elem := range v {
			sorted[i] = Sort(elem, order)
		}
		return sorted
	default:
		return v
	}
}

// SortText parses text under the given dialect, sorts the keys and
// returns the pretty-printed result.
func SortText(text string, dialect models.Dialect, order models.SortOrder, indent int) (string, error) {
	switch order {
	case models.Ascending, models.Descending:
	default:
		return "", errors.NewSortError(fmt.Sprintf("invalid sort order %q, expected \"asc\" or \"desc\"", order), nil)
	}
	doc, err := parser.ParseStringDialect(text, dialect)
	if err != nil {
		return "", err
	}
	return formatter.NewFormatter(indent).Format(Sort(doc.Root, order))
}
