package repair

import (
	"encoding/json"
	"testing"

	stderrors "errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mcncl/jsonkit/internal/errors"
)

func TestRepair_TrailingCommaAndUnquotedKey(t *testing.T) {
	out, err := Repair(`{a:1,}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, out)
}

func TestRepair_SingleQuotes(t *testing.T) {
	out, err := Repair(`{'name': 'Ada'}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ada"}`, out)
}

func TestRepair_MissingClosingBrace(t *testing.T) {
	out, err := Repair(`{"a": {"b": 1}`)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), "repaired output must be valid JSON, got %q", out)
}

func TestRepair_Comments(t *testing.T) {
	out, err := Repair(`{
		// a comment
		"a": 1 /* block */
	}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, out)
}

func TestRepair_EmptyInput(t *testing.T) {
	testCases := []string{"", "   ", "\n\t"}
	for _, input := range testCases {
		_, err := Repair(input)
		require.Error(t, err, "input %q", input)
		assert.True(t, stderrors.Is(err, apperrors.ErrEmptyInput), "want ErrEmptyInput for %q, got %v", input, err)
	}
}

func TestRepair_OutputIsAlwaysValid(t *testing.T) {
	inputs := []string{
		`{a:1,}`,
		`[1, 2, 3,]`,
		`{"n": NaN}`,
		`{"name": "Grace`,
	}
	for _, input := range inputs {
		out, err := Repair(input)
		if err != nil {
			continue // rejection is acceptable, invalid output is not
		}
		assert.True(t, json.Valid([]byte(out)), "input %q produced invalid output %q", input, out)
	}
}
