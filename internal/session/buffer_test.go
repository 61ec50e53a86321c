package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBuffer_ReplaceAllAndText(t *testing.T) {
	buf := NewMemoryBuffer("initial")
	require.NoError(t, buf.ReplaceAll("changed"))
	assert.Equal(t, "changed", buf.Text())
}

func TestMemoryBuffer_UndoRevertsOneStep(t *testing.T) {
	buf := NewMemoryBuffer("v1")
	require.NoError(t, buf.ReplaceAll("v2"))
	require.NoError(t, buf.ReplaceAll("v3"))

	assert.True(t, buf.Undo())
	assert.Equal(t, "v2", buf.Text())
	assert.True(t, buf.Undo())
	assert.Equal(t, "v1", buf.Text())
	assert.False(t, buf.Undo(), "nothing left to undo")
	assert.Equal(t, "v1", buf.Text())
}

func TestMemoryBuffer_OnChangeNotified(t *testing.T) {
	buf := NewMemoryBuffer("")
	var seen []string
	buf.OnChange(func(text string) { seen = append(seen, text) })

	require.NoError(t, buf.ReplaceAll("a"))
	require.NoError(t, buf.ReplaceAll("b"))
	buf.Undo()

	assert.Equal(t, []string{"a", "b", "a"}, seen)
}

func TestMemoryBuffer_RevealLine(t *testing.T) {
	buf := NewMemoryBuffer("one\ntwo\nthree")

	require.NoError(t, buf.RevealLine(2))
	assert.Equal(t, 2, buf.RevealedLine())

	assert.Error(t, buf.RevealLine(0))
	assert.Error(t, buf.RevealLine(4))
	assert.Equal(t, 2, buf.RevealedLine(), "failed reveal must not move the view")
}
