// Package workspace validates many JSON files at once. Patterns are
// expanded with doublestar globs and files are checked concurrently with
// a bounded worker count.
package workspace

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/mcncl/jsonkit/internal/diagnose"
	"github.com/mcncl/jsonkit/internal/errors"
	"github.com/mcncl/jsonkit/internal/log"
	"github.com/mcncl/jsonkit/internal/models"
)

// DefaultParallelism bounds concurrent file reads when the caller does
// not choose a limit.
const DefaultParallelism = 8

// Result is the validation outcome for a single file. Err is nil when
// the file parsed cleanly.
type Result struct {
	Path string
	Err  *models.ParseErrorInfo
}

// Expand resolves glob patterns (and plain paths) into a sorted,
// de-duplicated file list.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, errors.NewInputError(fmt.Sprintf("invalid glob pattern '%s'", pattern), err)
		}
		if len(matches) == 0 {
			// A literal path with no glob match is reported as missing
			if _, statErr := os.Stat(pattern); statErr != nil {
				return nil, errors.NewInputError(fmt.Sprintf("no files match '%s'", pattern), errors.ErrFileNotFound)
			}
			matches = []string{pattern}
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			files = append(files, match)
		}
	}

	sort.Strings(files)
	return files, nil
}

// Validate expands patterns and diagnoses every matched file under the
// given dialect. Results come back in path order, one per file. I/O
// failures abort the batch; parse failures do not.
func Validate(ctx context.Context, patterns []string, dialect models.Dialect, parallelism int) ([]Result, error) {
	files, err := Expand(patterns)
	if err != nil {
		return nil, err
	}
	if parallelism < 1 {
		parallelism = DefaultParallelism
	}

	results := make([]Result, len(files))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(parallelism)

	for i, path := range files {
		i, path := i, path
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return errors.NewInputError(fmt.Sprintf("failed to read file '%s'", path), err)
			}
			info := diagnose.Diagnose(string(data), dialect)
			if info != nil {
				log.Debugf("%s: parse error at line %d: %s", path, info.Line, info.Message)
			}
			results[i] = Result{Path: path, Err: info}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
