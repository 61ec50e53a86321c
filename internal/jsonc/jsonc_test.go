package jsonc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripComments_LineComment(t *testing.T) {
	input := "{\n  \"a\": 1 // trailing note\n}"
	out := StripComments(input)
	assert.Equal(t, "{\n  \"a\": 1 \n}", out)
	assert.True(t, json.Valid([]byte(out)))
}

func TestStripComments_BlockComment(t *testing.T) {
	input := `{"a": /* note */ 1}`
	out := StripComments(input)
	assert.Equal(t, `{"a":  1}`, out)
	assert.True(t, json.Valid([]byte(out)))
}

func TestStripComments_MultilineBlockKeepsLineCount(t *testing.T) {
	input := "{\n  /* one\n     two\n     three */\n  \"a\": 1\n}"
	out := StripComments(input)
	assert.Equal(t, countLines(input), countLines(out))
	assert.True(t, json.Valid([]byte(out)))
}

func TestStripComments_MarkersInsideStringsUntouched(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"LineMarker", `{"a": "// not a comment"}`},
		{"BlockMarker", `{"url": "http://example.com/*path*/"}`},
		{"EscapedQuoteBeforeMarker", `{"a": "quote \" then // still a string"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := StripComments(tc.input)
			assert.Equal(t, tc.input, out)
			assert.True(t, json.Valid([]byte(out)))
		})
	}
}

func TestStripComments_Idempotent(t *testing.T) {
	inputs := []string{
		"{\n  // first\n  \"a\": \"// kept\", /* gone */\n  \"b\": 2\n}",
		`{"a": 1}`,
		"// only a comment\n",
		"",
	}

	for _, input := range inputs {
		once := StripComments(input)
		twice := StripComments(once)
		assert.Equal(t, once, twice, "input %q", input)
	}
}

func TestStripComments_UnterminatedBlockComment(t *testing.T) {
	out := StripComments(`{"a": 1} /* never closed`)
	assert.Equal(t, `{"a": 1} `, out)
}

func TestStripComments_LoneSlashKept(t *testing.T) {
	// A single slash is not a comment marker; leave it for the parser to
	// reject.
	assert.Equal(t, `{"a": 1 / 2}`, StripComments(`{"a": 1 / 2}`))
}

func BenchmarkStripComments(b *testing.B) {
	input := "{\n  // header\n  \"a\": \"// kept\",\n  /* block\n     spanning lines */\n  \"b\": [1, 2, 3]\n}"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		StripComments(input)
	}
}

func countLines(s string) int {
	n := 1
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}
