// Package diffview renders a unified diff between two JSON documents.
// Both sides are normalized to the same pretty-printed form first so the
// diff reflects structural changes rather than whitespace.
package diffview

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/mcncl/jsonkit/internal/errors"
	"github.com/mcncl/jsonkit/internal/formatter"
	"github.com/mcncl/jsonkit/internal/models"
	"github.com/mcncl/jsonkit/internal/parser"
	"github.com/mcncl/jsonkit/internal/sorter"
)

// Options controls diff normalization and labeling.
type Options struct {
	Dialect models.Dialect
	Indent  int
	// Sorted sorts keys on both sides before diffing, so key reordering
	// alone produces no hunks.
	Sorted    bool
	FromLabel string
	ToLabel   string
	Context   int
}

// Unified parses both texts, normalizes them and returns a unified diff.
// The result is empty when the normalized documents are identical.
func Unified(fromText, toText string, opts Options) (string, error) {
	fromNorm, err := normalize(fromText, opts)
	if err != nil {
		return "", errors.NewDiffError("failed to parse left-hand document", err)
	}
	toNorm, err := normalize(toText, opts)
	if err != nil {
		return "", errors.NewDiffError("failed to parse right-hand document", err)
	}

	if fromNorm == toNorm {
		return "", nil
	}

	context := opts.Context
	if context <= 0 {
		context = 3
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(fromNorm),
		B:        difflib.SplitLines(toNorm),
		FromFile: labelOr(opts.FromLabel, "a"),
		ToFile:   labelOr(opts.ToLabel, "b"),
		Context:  context,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", errors.NewDiffError("failed to compute diff", err)
	}
	return text, nil
}

func normalize(text string, opts Options) (string, error) {
	doc, err := parser.ParseStringDialect(text, opts.Dialect)
	if err != nil {
		return "", err
	}
	value := doc.Root
	if opts.Sorted {
		value = sorter.Sort(value, models.Ascending)
	}
	out, err := formatter.NewFormatter(opts.Indent).Format(value)
	if err != nil {
		return "", err
	}
	return out + "\n", nil
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
