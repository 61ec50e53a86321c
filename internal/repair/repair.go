// Package repair turns malformed JSON-like text into valid JSON using the
// jsonrepair heuristics (unquoted keys, trailing commas, single quotes,
// comments, missing brackets, NaN/Infinity).
package repair

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/mcncl/jsonkit/internal/errors"
)

// Repair attempts to fix text into valid JSON. It fails with an input
// error for blank text and a repair error when the heuristics cannot
// produce a valid document.
func Repair(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.NewInputError("cannot repair an empty document", errors.ErrEmptyInput)
	}

	repaired, err := jsonrepair.JSONRepair(text)
	if err != nil {
		return "", errors.NewRepairError("text is too malformed for heuristic repair", err)
	}

	// The heuristics are best-effort; never hand back something that does
	// not parse.
	if !json.Valid([]byte(repaired)) {
		return "", errors.NewRepairError("repair did not produce valid JSON", errors.ErrInvalidJSON)
	}

	return repaired, nil
}
