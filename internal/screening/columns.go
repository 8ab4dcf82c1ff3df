// internal/screening/columns.go
//
// Column validation for the input CSV and the working copy. The tool is
// strict here on purpose: screening against a file with the wrong shape
// would silently produce a useless working copy.

package screening

import (
	"fmt"
	"strings"
)

// RequiredColumns are the columns every input CSV must carry.
var RequiredColumns = []string{"Document Type", "Article Title", "Abstract"}

// Decision columns added to the working copy.
const (
	IncludeColumn = "include"
	ReasonColumn  = "reason"
)

// MissingColumnsError reports which required columns were absent and what
// was actually found, so the user can fix the file instead of guessing.
type MissingColumnsError struct {
	Missing []string
	Found   []string
	// WorkingCopy is true when the failure was in an existing working copy
	// rather than the raw input.
	WorkingCopy bool
}

func (e *MissingColumnsError) Error() string {
	msg := fmt.Sprintf("missing required column(s): %s\nfound: %s",
		strings.Join(e.Missing, ", "), strings.Join(e.Found, ", "))
	if e.WorkingCopy {
		msg += "\nthe working copy is incomplete; use --from-scratch to rebuild it"
	}
	return msg
}

// ValidateColumns checks that fields contains every required column.
// When needDecisionCols is set (validating an existing working copy) the
// include/reason columns must be present as well.
func ValidateColumns(fields []string, needDecisionCols bool) error {
	have := make(map[string]bool, len(fields))
	for _, f := range fields {
		have[f] = true
	}
	var missing []string
	for _, c := range RequiredColumns {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Missing: missing, Found: fields}
	}
	if needDecisionCols {
		for _, c := range []string{IncludeColumn, ReasonColumn} {
			if !have[c] {
				missing = append(missing, c)
			}
		}
		if len(missing) > 0 {
			return &MissingColumnsError{Missing: missing, Found: fields, WorkingCopy: true}
		}
	}
	return nil
}
