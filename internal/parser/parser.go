package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	stderrors "errors"

	"github.com/titanous/json5"

	"github.com/mcncl/jsonkit/internal/errors"
	"github.com/mcncl/jsonkit/internal/models"
)

// Parse converts strict JSON from an io.Reader into a Document. Object key
// order is preserved, which is why this walks decoder tokens instead of
// unmarshalling into map[string]interface{}.
func Parse(reader io.Reader) (models.Document, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber() // Ensure numbers keep their source text

	rootValue, err := decodeValue(decoder)
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return models.Document{}, errors.NewParseError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		var syntaxError *json.SyntaxError
		if stderrors.As(err, &syntaxError) {
			return models.Document{}, errors.NewParseError(
				fmt.Sprintf("JSON syntax error at offset %d: %v", syntaxError.Offset, syntaxError),
				errors.ErrInvalidJSON,
			)
		}
		return models.Document{}, errors.NewParseError("failed to decode JSON", err)
	}

	// Anything after the first value besides whitespace means multiple
	// root values.
	if decoder.More() {
		return models.Document{}, errors.NewParseError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	}

	return models.Document{Root: rootValue}, nil
}

// decodeValue reads one complete JSON value from the decoder.
func decodeValue(decoder *json.Decoder) (models.JSONValue, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	switch t := token.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := models.NewObject()
			for decoder.More() {
				keyToken, err := decoder.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyToken.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key token %v", keyToken)
				}
				value, err := decodeValue(decoder)
				if err != nil {
					return nil, err
				}
				obj.Set(key, value)
			}
			// Consume the closing '}'
			if _, err := decoder.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := models.Array{}
			for decoder.More() {
				value, err := decodeValue(decoder)
				if err != nil {
					return nil, err
				}
				arr = append(arr, value)
			}
			if _, err := decoder.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	default:
		// string, json.Number, bool or nil
		return t, nil
	}
}

// ParseString parses strict JSON from a string
func ParseString(jsonString string) (models.Document, error) {
	if strings.TrimSpace(jsonString) == "" {
		return models.Document{}, errors.NewInputError("input string is empty or consists only of whitespace", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString))
}

// ParseStringDialect parses a string under the given dialect. JSON5 input
// is decoded with the JSON5 parser and normalized into the document
// model, so every document Diagnose accepts parses here too.
func ParseStringDialect(text string, dialect models.Dialect) (models.Document, error) {
	switch dialect {
	case "", models.DialectJSON:
		return ParseString(text)
	case models.DialectJSON5:
		if strings.TrimSpace(text) == "" {
			return models.Document{}, errors.NewInputError("input string is empty or consists only of whitespace", errors.ErrEmptyInput)
		}
		var raw interface{}
		if err := json5.Unmarshal([]byte(text), &raw); err != nil {
			return models.Document{}, errors.NewParseError(fmt.Sprintf("invalid JSON5: %v", err), errors.ErrInvalidJSON)
		}
		return models.Document{Root: fromJSON5(raw)}, nil
	default:
		return models.Document{}, errors.NewInputError(fmt.Sprintf("unsupported dialect %q", dialect), errors.ErrUnknownDialect)
	}
}

// fromJSON5 converts the JSON5 decoder's output into the document model.
// The decoder goes through Go maps, so source key order is not
// recoverable; keys are emitted in sorted order to keep the result
// deterministic. Hex, signed and leading-decimal number forms arrive as
// float64 and are re-emitted as plain JSON numbers; non-finite values
// (JSON5 NaN/Infinity) have no JSON representation and become null.
func fromJSON5(value interface{}) models.JSONValue {
	switch v := value.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		obj := models.NewObject()
		for _, key := range keys {
			obj.Set(key, fromJSON5(v[key]))
		}
		return obj
	case []interface{}:
		arr := make(models.Array, len(v))
		for i, elem := range v {
			arr[i] = fromJSON5(elem)
		}
		return arr
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return json.Number(strconv.FormatFloat(v, 'g', -1, 64))
	default:
		// string, bool or nil
		return v
	}
}

// ParseFile parses a document from a file path under the given dialect
func ParseFile(filePath string, dialect models.Dialect) (models.Document, error) {
	if strings.TrimSpace(filePath) == "" {
		return models.Document{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Document{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return models.Document{}, errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", filePath),
			err,
		)
	}
	if len(data) == 0 {
		return models.Document{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}
	return ParseStringDialect(string(data), dialect)
}
