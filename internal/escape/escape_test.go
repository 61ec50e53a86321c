package escape

import (
	"encoding/json"
	"testing"

	stderrors "errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mcncl/jsonkit/internal/errors"
	"github.com/mcncl/jsonkit/internal/models"
)

func TestEscape_QuotesAndBackslashes(t *testing.T) {
	out := Escape(`{"a": "b\\c"}`)
	assert.Equal(t, `"{\"a\": \"b\\\\c\"}"`, out)
}

func TestEscape_ControlCharacters(t *testing.T) {
	out := Escape("line1\nline2\ttabbed")
	assert.Equal(t, `"line1\nline2\ttabbed"`, out)
}

func TestUnescape_RoundTripObject(t *testing.T) {
	original := `{"b": 1, "a": [true, null, "x"]}`
	value, err := Unescape(Escape(original))
	require.NoError(t, err)

	obj, ok := value.(*models.Object)
	require.True(t, ok)
	// Key order survives the round trip
	assert.Equal(t, []string{"b", "a"}, obj.Keys())

	reserialized, err := json.Marshal(value)
	require.NoError(t, err)
	assert.JSONEq(t, original, string(reserialized))
}

func TestUnescape_RoundTripArray(t *testing.T) {
	original := `[1, {"k": "v"}, false]`
	value, err := Unescape(Escape(original))
	require.NoError(t, err)

	_, ok := value.(models.Array)
	assert.True(t, ok)
}

func TestUnescape_RejectsScalarResult(t *testing.T) {
	testCases := []struct {
		name string
		text string
	}{
		{"String", Escape(`"just a string"`)},
		{"Number", Escape(`42`)},
		{"Bool", Escape(`true`)},
		{"Null", Escape(`null`)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Unescape(tc.text)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, apperrors.ErrScalarResult), "got %v", err)
		})
	}
}

func TestUnescape_RejectsNonStringInput(t *testing.T) {
	_, err := Unescape(`{"a": 1}`)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorTypeUnescape, appErr.Type)
}

func TestUnescape_RejectsInvalidInnerJSON(t *testing.T) {
	_, err := Unescape(`"{broken"`)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorTypeUnescape, appErr.Type)
}

func TestUnescape_EmptyInput(t *testing.T) {
	_, err := Unescape("  ")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, apperrors.ErrEmptyInput))
}
