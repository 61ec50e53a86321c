package session

import (
	"fmt"
	"strings"
	"sync"

	"github.com/mcncl/jsonkit/internal/errors"
)

// Buffer is the boundary contract with the text-editing component. The
// real widget lives outside this module; MemoryBuffer stands in for it in
// the CLI and in tests.
type Buffer interface {
	// Text returns the current buffer content.
	Text() string
	// ReplaceAll swaps the entire content as one atomic, undoable edit.
	ReplaceAll(text string) error
	// RevealLine scrolls the given 1-based line into view.
	RevealLine(line int) error
	// OnChange registers a callback invoked with the latest text after
	// every content change.
	OnChange(callback func(text string))
}

// MemoryBuffer is an in-memory Buffer with a linear undo history. Each
// ReplaceAll is a single undo step.
type MemoryBuffer struct {
	mu        sync.Mutex
	text      string
	undo      []string
	revealed  int
	callbacks []func(string)
}

// NewMemoryBuffer creates a buffer with the given initial content. The
// initial content is not an undo step.
func NewMemoryBuffer(text string) *MemoryBuffer {
	return &MemoryBuffer{text: text}
}

// Text returns the current content.
func (b *MemoryBuffer) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

// ReplaceAll replaces the whole content and records one undo step.
func (b *MemoryBuffer) ReplaceAll(text string) error {
	b.mu.Lock()
	b.undo = append(b.undo, b.text)
	b.text = text
	callbacks := make([]func(string), len(b.callbacks))
	copy(callbacks, b.callbacks)
	b.mu.Unlock()

	for _, callback := range callbacks {
		callback(text)
	}
	return nil
}

// Undo reverts the most recent ReplaceAll. It reports whether there was
// anything to undo.
func (b *MemoryBuffer) Undo() bool {
	b.mu.Lock()
	if len(b.undo) == 0 {
		b.mu.Unlock()
		return false
	}
	b.text = b.undo[len(b.undo)-1]
	b.undo = b.undo[:len(b.undo)-1]
	text := b.text
	callbacks := make([]func(string), len(b.callbacks))
	copy(callbacks, b.callbacks)
	b.mu.Unlock()

	for _, callback := range callbacks {
		callback(text)
	}
	return true
}

// RevealLine records the requested line after bounds-checking it against
// the current content.
func (b *MemoryBuffer) RevealLine(line int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	lineCount := strings.Count(b.text, "\n") + 1
	if line < 1 || line > lineCount {
		return errors.NewInputError(fmt.Sprintf("line %d is out of range 1..%d", line, lineCount), nil)
	}
	b.revealed = line
	return nil
}

// RevealedLine returns the last line passed to RevealLine, or 0.
func (b *MemoryBuffer) RevealedLine() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.revealed
}

// OnChange registers a content-change callback.
func (b *MemoryBuffer) OnChange(callback func(string)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.callbacks = append(b.callbacks, callback)
}
