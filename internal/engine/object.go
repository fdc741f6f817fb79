package engine

import (
	"bytes"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Object is a JSON object that remembers key insertion order. Overwriting an
// existing key keeps its original position.
type Object struct {
	keys   []string
	fields map[string]any
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{fields: map[string]any{}}
}

// Set stores v under k.
func (o *Object) Set(k string, v any) {
	if o.fields == nil {
		o.fields = map[string]any{}
	}
	if _, ok := o.fields[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.fields[k] = v
}

// Get returns the value stored under k.
func (o *Object) Get(k string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.fields[k]
	return v, ok
}

// Has reports whether k is present.
func (o *Object) Has(k string) bool {
	_, ok := o.Get(k)
	return ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Map returns a shallow, unordered copy of the fields.
func (o *Object) Map() map[string]any {
	out := make(map[string]any, o.Len())
	if o == nil {
		return out
	}
	for k, v := range o.fields {
		out[k] = v
	}
	return out
}

// MarshalJSON emits the fields in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := j.MarshalWithOption(k, j.DisableHTMLEscape())
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := j.MarshalWithOption(o.fields[k], j.DisableHTMLEscape())
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML emits a mapping node in insertion order.
func (o *Object) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range o.Keys() {
		var kn, vn yaml.Node
		if err := kn.Encode(k); err != nil {
			return nil, err
		}
		if err := vn.Encode(o.fields[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &kn, &vn)
	}
	return node, nil
}
