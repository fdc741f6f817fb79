package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

// DecodeJSON decodes a JSON document into an ordered tree: *Object, []any,
// string, json.Number, bool or nil. Duplicate object keys are reported as
// issues and resolved last-wins; syntax errors (checked against the whole
// document first) and limit violations are returned as errors.
func DecodeJSON(data []byte, opt Options) (any, []SimpleIssue, error) {
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, nil, IssueError{SimpleIssue{Code: CodeParseError, Path: "/", Message: "input exceeds " + strconv.FormatInt(opt.MaxBytes, 10) + " bytes"}}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, IssueError{SimpleIssue{Code: CodeParseError, Path: "/", Message: "empty document"}}
	}
	// The token decoder does not check separators.
	if !j.Valid(data) {
		return nil, nil, IssueError{SimpleIssue{Code: CodeParseError, Path: "/", Message: "malformed JSON document"}}
	}
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	d := &jsonDecoder{dec: dec, opt: opt, issues: &issueCollector{max: opt.MaxIssues}}

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, IssueError{SimpleIssue{Code: CodeParseError, Path: "/", Message: "empty document"}}
		}
		return nil, nil, parseError("/", err)
	}
	v, err := d.value(tok, "/", 0)
	if err != nil {
		return nil, d.issues.issues, err
	}
	if extra, err := dec.Token(); err == nil {
		return nil, d.issues.issues, IssueError{SimpleIssue{Code: CodeParseError, Path: "/", Message: fmt.Sprintf("unexpected trailing data %v", extra)}}
	} else if !errors.Is(err, io.EOF) {
		return nil, d.issues.issues, parseError("/", err)
	}
	return v, d.issues.issues, nil
}

type jsonDecoder struct {
	dec    *j.Decoder
	opt    Options
	issues *issueCollector
}

func (d *jsonDecoder) value(tok j.Token, path string, depth int) (any, error) {
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			return d.object(path, depth+1)
		case '[':
			return d.array(path, depth+1)
		default:
			return nil, IssueError{SimpleIssue{Code: CodeParseError, Path: path, Message: "unexpected delimiter " + v.String()}}
		}
	case string, j.Number, bool, nil:
		return v, nil
	case float64:
		return j.Number(strconv.FormatFloat(v, 'g', -1, 64)), nil
	default:
		return nil, IssueError{SimpleIssue{Code: CodeParseError, Path: path, Message: fmt.Sprintf("unexpected token %T", tok)}}
	}
}

func (d *jsonDecoder) checkDepth(path string, depth int) error {
	if d.opt.MaxDepth > 0 && depth > d.opt.MaxDepth {
		return IssueError{SimpleIssue{Code: CodeParseError, Path: path, Message: "max depth exceeded"}}
	}
	return nil
}

func (d *jsonDecoder) object(path string, depth int) (*Object, error) {
	if err := d.checkDepth(path, depth); err != nil {
		return nil, err
	}
	obj := NewObject()
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, parseError(path, err)
		}
		if delim, ok := tok.(j.Delim); ok && delim == '}' {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, IssueError{SimpleIssue{Code: CodeParseError, Path: path, Message: "object key must be a string"}}
		}
		child := AppendPointer(path, key)
		if obj.Has(key) {
			d.issues.add(SimpleIssue{Code: CodeDuplicateKey, Path: child, Message: "key '" + key + "' duplicated"})
		}
		vt, err := d.dec.Token()
		if err != nil {
			return nil, parseError(child, err)
		}
		v, err := d.value(vt, child, depth)
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}
}

func (d *jsonDecoder) array(path string, depth int) ([]any, error) {
	if err := d.checkDepth(path, depth); err != nil {
		return nil, err
	}
	out := []any{}
	for i := 0; ; i++ {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, parseError(path, err)
		}
		if delim, ok := tok.(j.Delim); ok && delim == ']' {
			return out, nil
		}
		v, err := d.value(tok, AppendPointer(path, strconv.Itoa(i)), depth)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

func parseError(path string, err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return IssueError{SimpleIssue{Code: CodeParseError, Path: path, Message: err.Error()}}
}
