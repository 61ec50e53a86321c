package models

import (
	"bytes"
	"encoding/json"
)

// JSONValue is a generic type to represent any JSON value.
// This can be a string, json.Number, boolean, nil, *Object, or Array.
type JSONValue interface{}

// Member is a single key/value pair inside an Object.
type Member struct {
	Key   string
	Value JSONValue
}

// Object represents a JSON object with insertion-ordered keys.
// Key order is significant for round-tripping editor content, so a plain
// map cannot be used here.
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject creates an empty ordered object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Set adds or replaces the value for key. A replaced key keeps its
// original position.
func (o *Object) Set(key string, value JSONValue) {
	if idx, ok := o.index[key]; ok {
		o.members[idx].Value = value
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: value})
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (JSONValue, bool) {
	idx, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[idx].Value, true
}

// Len returns the number of members.
func (o *Object) Len() int {
	return len(o.members)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// At returns the i-th member in insertion order.
func (o *Object) At(i int) Member {
	return o.members[i]
}

// MarshalJSON emits the object's members in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o.members {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Array represents a JSON array, which is a slice of JSONValues.
type Array []JSONValue

// IsComposite reports whether v is an object or an array.
func IsComposite(v JSONValue) bool {
	switch v.(type) {
	case *Object, Array:
		return true
	}
	return false
}

// Document holds a parsed JSON value.
type Document struct {
	Root JSONValue
}

// Dialect selects the accepted input syntax.
type Dialect string

const (
	DialectJSON  Dialect = "json"
	DialectJSON5 Dialect = "json5"
)

// SortOrder controls key ordering for the recursive key sort.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// ParseErrorInfo is the normalized shape of a parse failure. Line and
// Column are 1-based; Line == 0 means no localized position is available.
type ParseErrorInfo struct {
	Message string
	Line    int
	Column  int
}
