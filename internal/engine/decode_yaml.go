package engine

import (
	"strconv"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes a single YAML document into the same ordered tree that
// DecodeJSON produces. Integers and floats become json.Number so downstream
// code handles both syntaxes identically.
func DecodeYAML(data []byte, opt Options) (any, []SimpleIssue, error) {
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, nil, IssueError{SimpleIssue{Code: CodeParseError, Path: "/", Message: "input exceeds " + strconv.FormatInt(opt.MaxBytes, 10) + " bytes"}}
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, IssueError{SimpleIssue{Code: CodeParseError, Path: "/", Message: err.Error()}}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil, IssueError{SimpleIssue{Code: CodeParseError, Path: "/", Message: "empty document"}}
	}
	d := &yamlDecoder{opt: opt, issues: &issueCollector{max: opt.MaxIssues}}
	v, err := d.value(doc.Content[0], "/", 0)
	if err != nil {
		return nil, d.issues.issues, err
	}
	return v, d.issues.issues, nil
}

type yamlDecoder struct {
	opt    Options
	issues *issueCollector
}

func (d *yamlDecoder) value(n *yaml.Node, path string, depth int) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, IssueError{SimpleIssue{Code: CodeParseError, Path: path, Message: "unresolved alias"}}
		}
		return d.value(n.Alias, path, depth)
	case yaml.MappingNode:
		if err := d.checkDepth(path, depth+1); err != nil {
			return nil, err
		}
		obj := NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			kn, vn := n.Content[i], n.Content[i+1]
			if kn.Kind != yaml.ScalarNode {
				return nil, IssueError{SimpleIssue{Code: CodeParseError, Path: path, Message: "mapping key must be a scalar"}}
			}
			key := kn.Value
			child := AppendPointer(path, key)
			if obj.Has(key) {
				d.issues.add(SimpleIssue{Code: CodeDuplicateKey, Path: child, Message: "key '" + key + "' duplicated"})
			}
			v, err := d.value(vn, child, depth+1)
			if err != nil {
				return nil, err
			}
			obj.Set(key, v)
		}
		return obj, nil
	case yaml.SequenceNode:
		if err := d.checkDepth(path, depth+1); err != nil {
			return nil, err
		}
		out := make([]any, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := d.value(c, AppendPointer(path, strconv.Itoa(i)), depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.ScalarNode:
		return d.scalar(n, path)
	default:
		return nil, IssueError{SimpleIssue{Code: CodeParseError, Path: path, Message: "unsupported yaml node"}}
	}
}

func (d *yamlDecoder) scalar(n *yaml.Node, path string) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, IssueError{SimpleIssue{Code: CodeParseError, Path: path, Message: err.Error()}}
		}
		return b, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, IssueError{SimpleIssue{Code: CodeParseError, Path: path, Message: err.Error()}}
		}
		return j.Number(strconv.FormatInt(i, 10)), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, IssueError{SimpleIssue{Code: CodeParseError, Path: path, Message: err.Error()}}
		}
		return j.Number(strconv.FormatFloat(f, 'g', -1, 64)), nil
	default:
		return n.Value, nil
	}
}

func (d *yamlDecoder) checkDepth(path string, depth int) error {
	if d.opt.MaxDepth > 0 && depth > d.opt.MaxDepth {
		return IssueError{SimpleIssue{Code: CodeParseError, Path: path, Message: "max depth exceeded"}}
	}
	return nil
}
