package engine

import (
	"path/filepath"
	"strings"
)

// Issue codes produced by the engine. They mirror the public codes of the root
// package so callers can forward them unchanged.
const (
	CodeDuplicateKey = "duplicate_key"
	CodeParseError   = "parse_error"
	CodeTruncated    = "truncated"
)

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string {
	if e.Path == "" || e.Path == "/" {
		return e.Message
	}
	return e.Message + " at " + e.Path
}

// Options controls decoding limits.
type Options struct {
	// MaxDepth limits object/array nesting. Zero means unlimited.
	MaxDepth int
	// MaxBytes rejects inputs larger than this size. Zero means unlimited.
	MaxBytes int64
	// MaxIssues caps collected duplicate-key issues. Zero means unlimited.
	MaxIssues int
}

// Format is the on-disk document syntax.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatFromPath picks a Format from the file extension; anything that is not
// .yaml/.yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode dispatches to DecodeJSON or DecodeYAML.
func Decode(data []byte, f Format, opt Options) (any, []SimpleIssue, error) {
	if f == FormatYAML {
		return DecodeYAML(data, opt)
	}
	return DecodeJSON(data, opt)
}

// Encode dispatches to EncodeJSON or EncodeYAML.
func Encode(v any, f Format) ([]byte, error) {
	if f == FormatYAML {
		return EncodeYAML(v)
	}
	return EncodeJSON(v)
}

// issueCollector gathers duplicate-key issues up to a limit.
type issueCollector struct {
	max    int
	issues []SimpleIssue
	full   bool
}

func (c *issueCollector) add(i SimpleIssue) {
	if c.full {
		return
	}
	c.issues = append(c.issues, i)
	if c.max > 0 && len(c.issues) >= c.max {
		c.issues = append(c.issues, SimpleIssue{Code: CodeTruncated, Path: "/", Message: "max issues reached"})
		c.full = true
	}
}

// AppendPointer appends an escaped reference token to a JSON Pointer.
func AppendPointer(base, token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	token = strings.ReplaceAll(token, "/", "~1")
	if base == "/" {
		return "/" + token
	}
	return base + "/" + token
}
