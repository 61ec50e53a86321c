package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_SetPreservesInsertionOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("zebra", json.Number("1"))
	obj.Set("apple", json.Number("2"))
	obj.Set("mango", json.Number("3"))

	assert.Equal(t, []string{"zebra", "apple", "mango"}, obj.Keys())
}

func TestObject_SetReplacesInPlace(t *testing.T) {
	obj := NewObject()
	obj.Set("a", "first")
	obj.Set("b", "second")
	obj.Set("a", "replaced")

	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	val, ok := obj.Get("a")
	require.True(t, ok)
	assert.Equal(t, "replaced", val)
}

func TestObject_GetMissingKey(t *testing.T) {
	obj := NewObject()
	_, ok := obj.Get("missing")
	assert.False(t, ok)
}

func TestObject_MarshalJSONKeepsOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("b", json.Number("1"))
	obj.Set("a", json.Number("2"))

	out, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":2}`, string(out))
}

func TestObject_MarshalJSONNested(t *testing.T) {
	inner := NewObject()
	inner.Set("y", "v")
	obj := NewObject()
	obj.Set("x", inner)
	obj.Set("list", Array{json.Number("1"), nil, true})

	out, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"x":{"y":"v"},"list":[1,null,true]}`, string(out))
}

func TestIsComposite(t *testing.T) {
	testCases := []struct {
		name  string
		value JSONValue
		want  bool
	}{
		{"Object", NewObject(), true},
		{"Array", Array{}, true},
		{"String", "text", false},
		{"Number", json.Number("1"), false},
		{"Bool", true, false},
		{"Null", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsComposite(tc.value))
		})
	}
}
