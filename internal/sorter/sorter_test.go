package sorter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsonkit/internal/errors"
	"github.com/mcncl/jsonkit/internal/models"
	"github.com/mcncl/jsonkit/internal/parser"
)

func TestSortText_AscendingSimpleObject(t *testing.T) {
	out, err := SortText(`{"b":1,"a":2}`, models.DialectJSON, models.Ascending, 2)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 2,\n  \"b\": 1\n}", out)
}

func TestSortText_DescendingSimpleObject(t *testing.T) {
	out, err := SortText(`{"b":1,"a":2}`, models.DialectJSON, models.Descending, 2)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": 2\n}", out)
}

func TestSort_NestedObjectsSortedAtEveryLevel(t *testing.T) {
	doc, err := parser.ParseString(`{"z": {"d": 1, "c": 2}, "a": [{"y": 1, "x": 2}]}`)
	require.NoError(t, err)

	sorted := Sort(doc.Root, models.Ascending)
	root, ok := sorted.(*models.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "z"}, root.Keys())

	inner, _ := root.Get("z")
	innerObj, ok := inner.(*models.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"c", "d"}, innerObj.Keys())

	list, _ := root.Get("a")
	arr, ok := list.(models.Array)
	require.True(t, ok)
	elem, ok := arr[0].(*models.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, elem.Keys())
}

func TestSort_ArrayOrderPreserved(t *testing.T) {
	doc, err := parser.ParseString(`[3, 1, 2]`)
	require.NoError(t, err)

	sorted := Sort(doc.Root, models.Ascending)
	arr, ok := sorted.(models.Array)
	require.True(t, ok)
	assert.Equal(t, models.Array{json.Number("3"), json.Number("1"), json.Number("2")}, arr)
}

func TestSort_CaseSensitiveCodePointOrder(t *testing.T) {
	doc, err := parser.ParseString(`{"b": 1, "A": 2, "a": 3, "B": 4}`)
	require.NoError(t, err)

	sorted := Sort(doc.Root, models.Ascending)
	root, ok := sorted.(*models.Object)
	require.True(t, ok)
	// Uppercase sorts before lowercase in code-point order
	assert.Equal(t, []string{"A", "B", "a", "b"}, root.Keys())
}

func TestSort_ScalarsPassThrough(t *testing.T) {
	assert.Equal(t, "text", Sort("text", models.Ascending))
	assert.Equal(t, json.Number("1.5"), Sort(json.Number("1.5"), models.Descending))
	assert.Nil(t, Sort(nil, models.Ascending))
}

func TestSort_AscThenDescIsValuePreserving(t *testing.T) {
	input := `{"b": {"z": 1, "y": [2, {"q": 3, "p": 4}]}, "a": true}`
	asc, err := SortText(input, models.DialectJSON, models.Ascending, 2)
	require.NoError(t, err)
	desc, err := SortText(asc, models.DialectJSON, models.Descending, 2)
	require.NoError(t, err)

	// Same key set and values regardless of ordering
	assert.JSONEq(t, input, asc)
	assert.JSONEq(t, input, desc)

	descDoc, err := parser.ParseString(desc)
	require.NoError(t, err)
	root, ok := descDoc.Root.(*models.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, root.Keys())
}

func TestSortText_JSON5Input(t *testing.T) {
	out, err := SortText(`{b: 1, a: 2,}`, models.DialectJSON5, models.Ascending, 2)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 2,\n  \"b\": 1\n}", out)
}

func TestSortText_InvalidInput(t *testing.T) {
	_, err := SortText(`{"a":`, models.DialectJSON, models.Ascending, 2)
	assert.Error(t, err)
}

func TestSortText_InvalidOrder(t *testing.T) {
	_, err := SortText(`{"a": 1}`, models.DialectJSON, models.SortOrder("sideways"), 2)
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeSort, appErr.Type)
	assert.Contains(t, appErr.Message, "sideways")
}
