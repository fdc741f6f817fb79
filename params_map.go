package texnaming

import (
	"fmt"
	"sort"

	eng "github.com/reoring/texnaming/internal/engine"
)

// ParamsMap maps a suffix token (for example "col" or "msk") to its texture
// parameters.
type ParamsMap map[string]TextureConfigParams

// Keys returns the tokens in sorted order.
func (m ParamsMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns a copy of the record stored under token.
func (m ParamsMap) Lookup(token string) (TextureConfigParams, bool) {
	p, ok := m[token]
	if !ok {
		return TextureConfigParams{}, false
	}
	return p.Clone(), true
}

// DecodeParamsMap decodes a parameter map document.
func DecodeParamsMap(data []byte, f DocumentFormat, opt *LoadOptions) (ParamsMap, error) {
	v, err := decodeDocument(data, f, opt.normalize())
	if err != nil {
		return nil, err
	}
	return paramsMapFromValue(v, "/")
}

// LoadParamsMap reads a parameter map from a JSON or YAML file.
func LoadParamsMap(path string, opt *LoadOptions) (ParamsMap, error) {
	v, err := readDocument(path, opt.normalize())
	if err != nil {
		return nil, fmt.Errorf("load texture parameters from %q: %w", path, err)
	}
	m, err := paramsMapFromValue(v, "/")
	if err != nil {
		return nil, fmt.Errorf("load texture parameters from %q: %w", path, err)
	}
	return m, nil
}

func paramsMapFromValue(v any, path string) (ParamsMap, error) {
	root, ok := v.(*eng.Object)
	if !ok {
		return nil, Issues{issueAt(path, CodeInvalidType, "root must be an object mapping keys to texture parameter objects, got %s", describe(v))}
	}
	out := make(ParamsMap, root.Len())
	var iss Issues
	for _, key := range root.Keys() {
		raw, _ := root.Get(key)
		child := eng.AppendPointer(path, key)
		obj, ok := raw.(*eng.Object)
		if !ok {
			iss = AppendIssues(iss, issueAt(child, CodeInvalidType, "value for key '%s' must be an object, got %s", key, describe(raw)))
			continue
		}
		p, err := paramsFromMap(obj.Map(), child)
		if err != nil {
			if more, ok := AsIssues(err); ok {
				iss = AppendIssues(iss, more...)
				continue
			}
			return nil, err
		}
		out[key] = p
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// EncodeParamsMap renders m with tokens in sorted order.
func EncodeParamsMap(m ParamsMap, f DocumentFormat, opt *SaveOptions) ([]byte, error) {
	root, err := paramsMapToObject(m, opt.normalize().Minimal)
	if err != nil {
		return nil, err
	}
	return eng.Encode(root, f)
}

// SaveParamsMap writes m to path, creating parent directories. The format
// follows the file extension unless SaveOptions.Format is set.
func SaveParamsMap(path string, m ParamsMap, opt *SaveOptions) error {
	o := opt.normalize()
	root, err := paramsMapToObject(m, o.Minimal)
	if err != nil {
		return fmt.Errorf("save texture parameters to %q: %w", path, err)
	}
	if err := writeDocument(path, root, o.format(path)); err != nil {
		return fmt.Errorf("save texture parameters to %q: %w", path, err)
	}
	return nil
}

func paramsMapToObject(m ParamsMap, minimal bool) (*eng.Object, error) {
	root := eng.NewObject()
	for _, key := range m.Keys() {
		obj, err := paramsToObject(m[key], minimal)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		root.Set(key, obj)
	}
	return root, nil
}
