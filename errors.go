package texnaming

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeInvalidLength = "invalid_length"
	CodeDuplicateKey  = "duplicate_key"
	CodeParseError    = "parse_error"
	CodeTruncated     = "truncated"
	CodeNotFound      = "not_found"
	// Suffix grid validation outcomes.
	CodeLengthMismatch = "length_mismatch"
	CodeSuffixMismatch = "suffix_mismatch"
)

// Error classes. Use errors.Is on any error returned by this package.
var (
	// ErrSchema marks malformed document shapes: wrong types, missing keys.
	ErrSchema = errors.New("texnaming: schema error")
	// ErrDomain marks values outside an enumerated domain or malformed sizes.
	ErrDomain = errors.New("texnaming: domain error")
	// ErrNotFound marks lookups of unknown suffix keys.
	ErrNotFound = errors.New("texnaming: not found")
	// ErrInvalidArgument marks invalid arguments to record operations.
	ErrInvalidArgument = errors.New("texnaming: invalid argument")
)

// Issue represents a single load or validation problem.
type Issue struct {
	Path    string // JSON Pointer (for example: /col/max_in_game).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

// Class returns the error class the issue belongs to.
func (i Issue) Class() error {
	switch i.Code {
	case CodeInvalidEnum, CodeInvalidFormat:
		return ErrDomain
	case CodeNotFound:
		return ErrNotFound
	case CodeLengthMismatch, CodeSuffixMismatch:
		return nil
	default:
		return ErrSchema
	}
}

func (i Issue) Error() string {
	if i.Path == "" || i.Path == "/" {
		return fmt.Sprintf("%s: %s", i.Code, i.Message)
	}
	return fmt.Sprintf("%s at %s: %s", i.Code, i.Path, i.Message)
}

// Is reports whether target is the issue's class.
func (i Issue) Is(target error) bool {
	c := i.Class()
	return c != nil && c == target
}

// Unwrap returns the underlying cause.
func (i Issue) Unwrap() error { return i.Cause }

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].Error())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Is reports whether any issue belongs to the target class.
func (iss Issues) Is(target error) bool {
	for _, it := range iss {
		if it.Is(target) {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally. A lone
// Issue is returned as a one-element slice.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	var one Issue
	if errors.As(err, &one) {
		return Issues{one}, true
	}
	return nil, false
}

// issueAt creates an Issue at the given path.
func issueAt(path, code, format string, args ...any) Issue {
	if path == "" {
		path = "/"
	}
	return Issue{Path: path, Code: code, Message: fmt.Sprintf(format, args...)}
}
