package texnaming

import (
	"fmt"
	"strconv"
	"strings"
)

const previewLimit = 8

// ValidationResult is the outcome of checking a suffix sequence against a
// grid. A failure is data, not an error: batch callers decide whether to skip
// the asset.
type ValidationResult struct {
	OK bool
	// MatchesByRow holds the input tokens in their original case on success.
	MatchesByRow []string
	Error        string
	// FailedRowIndex is nil for a count mismatch and the offending row
	// otherwise.
	FailedRowIndex *int
	SuffixList     []string
}

// Validate checks tokens position by position against grid. Comparison is
// case-insensitive and the first failing row wins.
func Validate(tokens []string, grid Grid) ValidationResult {
	list := append([]string(nil), tokens...)
	if len(tokens) != len(grid) {
		return ValidationResult{
			Error:      fmt.Sprintf("suffix count does not match rule rows: expected=%d, actual=%d", len(grid), len(tokens)),
			SuffixList: list,
		}
	}
	for i, tok := range tokens {
		allowed := lowerUnique(grid[i])
		if !contains(allowed, strings.ToLower(tok)) {
			row := i
			return ValidationResult{
				Error:          fmt.Sprintf("suffix %q at row %d is not allowed; allowed: [%s]", tok, i, preview(allowed)),
				FailedRowIndex: &row,
				SuffixList:     list,
			}
		}
	}
	return ValidationResult{
		OK:           true,
		MatchesByRow: append([]string(nil), tokens...),
		SuffixList:   list,
	}
}

// Issue projects a failed result into the common issue model. It returns
// false for a successful result.
func (r ValidationResult) Issue() (Issue, bool) {
	if r.OK {
		return Issue{}, false
	}
	if r.FailedRowIndex == nil {
		return issueAt("/", CodeLengthMismatch, "%s", r.Error), true
	}
	return issueAt("/"+strconv.Itoa(*r.FailedRowIndex), CodeSuffixMismatch, "%s", r.Error), true
}

func lowerUnique(row []string) []string {
	out := make([]string, 0, len(row))
	for _, s := range row {
		l := strings.ToLower(s)
		if !contains(out, l) {
			out = append(out, l)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func preview(allowed []string) string {
	if len(allowed) <= previewLimit {
		return strings.Join(allowed, ", ")
	}
	return strings.Join(allowed[:previewLimit], ", ") + "..."
}
