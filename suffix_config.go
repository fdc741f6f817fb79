package texnaming

import (
	"fmt"
	"sort"
	"strconv"

	eng "github.com/reoring/texnaming/internal/engine"
)

// AddressPair is a 2D (U, V) address assignment.
type AddressPair [2]AddressMode

// AddressTriple is a 3D (U, V, W) address assignment.
type AddressTriple [3]AddressMode

// Built-in category names usable in suffix_index.
const (
	CategoryTextureType = "texture_type"
	CategoryAddress2D   = "address_suffix_2d"
	CategoryAddress3D   = "address_suffix_3d"
)

// Document keys of a suffix configuration.
const (
	keyTextureType  = "texture_type"
	keyAddressMixed = "address_suffix"
	keyAddress2D    = "address_suffix_2d"
	keyAddress3D    = "address_suffix_3d"
	keySuffixIndex  = "suffix_index"
	keyCategories   = "categories"
)

// categoryKind identifies the table backing a grid row.
type categoryKind int

const (
	categoryTextureType categoryKind = iota
	categoryAddress2D
	categoryAddress3D
	categoryCustom
)

// categoryRef is a suffix_index entry resolved to its backing table when the
// configuration is built.
type categoryRef struct {
	kind categoryKind
	name string
}

// orderedTable is a string-keyed table that keeps declaration order.
type orderedTable[V any] struct {
	keys []string
	vals map[string]V
}

func (t *orderedTable[V]) set(k string, v V) {
	if t.vals == nil {
		t.vals = map[string]V{}
	}
	if _, ok := t.vals[k]; !ok {
		t.keys = append(t.keys, k)
	}
	t.vals[k] = v
}

func (t orderedTable[V]) get(k string) (V, bool) {
	v, ok := t.vals[k]
	return v, ok
}

func (t orderedTable[V]) len() int { return len(t.keys) }

// SuffixConfig is an immutable snapshot of the suffix rules: recognized
// texture types, suffix to address-mode tables, optional custom categories,
// and the suffix_index that fixes the validation row order.
type SuffixConfig struct {
	textureType []string
	address2D   orderedTable[AddressPair]
	address3D   orderedTable[AddressTriple]
	custom      orderedTable[[]string]
	suffixIndex []string
	rows        []categoryRef
}

// NewSuffixConfig builds a configuration from Go values. Table keys are
// registered in sorted order.
func NewSuffixConfig(textureType []string, address2D map[string]AddressPair, address3D map[string]AddressTriple, suffixIndex []string) (*SuffixConfig, error) {
	c := &SuffixConfig{
		textureType: append([]string(nil), textureType...),
		suffixIndex: append([]string(nil), suffixIndex...),
	}
	var iss Issues
	for _, k := range sortedKeys(address2D) {
		v := address2D[k]
		if !v[0].IsValid() || !v[1].IsValid() {
			iss = AppendIssues(iss, issueAt(eng.AppendPointer("/"+keyAddress2D, k), CodeInvalidEnum, "undefined address mode in %v", v))
			continue
		}
		c.address2D.set(k, v)
	}
	for _, k := range sortedKeys(address3D) {
		v := address3D[k]
		if !v[0].IsValid() || !v[1].IsValid() || !v[2].IsValid() {
			iss = AppendIssues(iss, issueAt(eng.AppendPointer("/"+keyAddress3D, k), CodeInvalidEnum, "undefined address mode in %v", v))
			continue
		}
		c.address3D.set(k, v)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return c, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// finish checks the cross-section invariants and resolves suffix_index.
func (c *SuffixConfig) finish() error {
	var iss Issues
	if c.address2D.len() == 0 && c.address3D.len() == 0 {
		iss = AppendIssues(iss, issueAt("/", CodeRequired, "no address suffix mapping found (2D/3D)"))
	}
	c.rows = make([]categoryRef, 0, len(c.suffixIndex))
	for i, name := range c.suffixIndex {
		ref, ok := c.resolveCategory(name)
		if !ok {
			iss = AppendIssues(iss, issueAt("/"+keySuffixIndex+"/"+strconv.Itoa(i), CodeNotFound, "unknown category %q", name))
			continue
		}
		c.rows = append(c.rows, ref)
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (c *SuffixConfig) resolveCategory(name string) (categoryRef, bool) {
	switch name {
	case CategoryTextureType:
		return categoryRef{kind: categoryTextureType, name: name}, true
	case CategoryAddress2D:
		return categoryRef{kind: categoryAddress2D, name: name}, true
	case CategoryAddress3D:
		return categoryRef{kind: categoryAddress3D, name: name}, true
	}
	if _, ok := c.custom.get(name); ok {
		return categoryRef{kind: categoryCustom, name: name}, true
	}
	return categoryRef{}, false
}

// tokens returns the legal tokens of a resolved category in declaration order.
func (c *SuffixConfig) tokens(ref categoryRef) []string {
	switch ref.kind {
	case categoryTextureType:
		return append([]string(nil), c.textureType...)
	case categoryAddress2D:
		return append([]string(nil), c.address2D.keys...)
	case categoryAddress3D:
		return append([]string(nil), c.address3D.keys...)
	default:
		v, _ := c.custom.get(ref.name)
		return append([]string(nil), v...)
	}
}

// TextureType returns the recognized texture-type tags.
func (c *SuffixConfig) TextureType() []string { return append([]string(nil), c.textureType...) }

// SuffixIndex returns the category names in validation row order.
func (c *SuffixConfig) SuffixIndex() []string { return append([]string(nil), c.suffixIndex...) }

// Address2DKeys returns the 2D suffix tokens in declaration order.
func (c *SuffixConfig) Address2DKeys() []string { return append([]string(nil), c.address2D.keys...) }

// Address3DKeys returns the 3D suffix tokens in declaration order.
func (c *SuffixConfig) Address3DKeys() []string { return append([]string(nil), c.address3D.keys...) }

// CategoryTokens returns the legal tokens of a named category.
func (c *SuffixConfig) CategoryTokens(name string) ([]string, bool) {
	ref, ok := c.resolveCategory(name)
	if !ok {
		return nil, false
	}
	return c.tokens(ref), true
}

// Has2D reports whether key is a 2D suffix.
func (c *SuffixConfig) Has2D(key string) bool {
	_, ok := c.address2D.get(key)
	return ok
}

// Has3D reports whether key is a 3D suffix.
func (c *SuffixConfig) Has3D(key string) bool {
	_, ok := c.address3D.get(key)
	return ok
}

// UV returns the 2D pair for key, or the U/V of its 3D triple.
func (c *SuffixConfig) UV(key string) (AddressPair, error) {
	if p, ok := c.address2D.get(key); ok {
		return p, nil
	}
	if t, ok := c.address3D.get(key); ok {
		return AddressPair{t[0], t[1]}, nil
	}
	return AddressPair{}, fmt.Errorf("%w: suffix %q", ErrNotFound, key)
}

// UVW returns the 3D triple for key, or its 2D pair extended with W = V.
func (c *SuffixConfig) UVW(key string) (AddressTriple, error) {
	if t, ok := c.address3D.get(key); ok {
		return t, nil
	}
	if p, ok := c.address2D.get(key); ok {
		return AddressTriple{p[0], p[1], p[1]}, nil
	}
	return AddressTriple{}, fmt.Errorf("%w: suffix %q", ErrNotFound, key)
}

// SuffixConfigFromMap builds a configuration from a decoded document. Nested
// Go maps are walked in sorted key order.
func SuffixConfigFromMap(m map[string]any) (*SuffixConfig, error) {
	return suffixConfigFromObject(objectFromMap(m))
}

// objectFromMap converts Go maps into ordered objects with sorted keys.
func objectFromMap(m map[string]any) *eng.Object {
	obj := eng.NewObject()
	for _, k := range sortedKeys(m) {
		obj.Set(k, normalizeGoValue(m[k]))
	}
	return obj
}

func normalizeGoValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return objectFromMap(t)
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeGoValue(e)
		}
		return out
	default:
		return v
	}
}

func suffixConfigFromObject(root *eng.Object) (*SuffixConfig, error) {
	c := &SuffixConfig{}
	var iss Issues

	tt, err := stringList(root, keyTextureType, true)
	if err != nil {
		iss = AppendIssues(iss, *err)
	}
	c.textureType = tt

	// Legacy mixed section first; explicit sections may override its keys.
	if tbl, err := optionalObject(root, keyAddressMixed); err != nil {
		iss = AppendIssues(iss, *err)
	} else if tbl != nil {
		for _, k := range tbl.Keys() {
			raw, _ := tbl.Get(k)
			path := eng.AppendPointer("/"+keyAddressMixed, k)
			list, ok := raw.([]any)
			if !ok {
				iss = AppendIssues(iss, issueAt(path, CodeInvalidType, "%s[%s] must be an array, got %s", keyAddressMixed, k, describe(raw)))
				continue
			}
			switch len(list) {
			case 2:
				if p, err := parsePair(list, path); err != nil {
					iss = AppendIssues(iss, *err)
				} else {
					c.address2D.set(k, p)
				}
			case 3:
				if t, err := parseTriple(list, path); err != nil {
					iss = AppendIssues(iss, *err)
				} else {
					c.address3D.set(k, t)
				}
			default:
				iss = AppendIssues(iss, issueAt(path, CodeInvalidLength, "%s[%s] length must be 2 or 3, got %d", keyAddressMixed, k, len(list)))
			}
		}
	}

	if tbl, err := optionalObject(root, keyAddress2D); err != nil {
		iss = AppendIssues(iss, *err)
	} else if tbl != nil {
		for _, k := range tbl.Keys() {
			raw, _ := tbl.Get(k)
			path := eng.AppendPointer("/"+keyAddress2D, k)
			list, lerr := addressList(raw, 2, path)
			if lerr != nil {
				iss = AppendIssues(iss, *lerr)
				continue
			}
			if p, err := parsePair(list, path); err != nil {
				iss = AppendIssues(iss, *err)
			} else {
				c.address2D.set(k, p)
			}
		}
	}

	if tbl, err := optionalObject(root, keyAddress3D); err != nil {
		iss = AppendIssues(iss, *err)
	} else if tbl != nil {
		for _, k := range tbl.Keys() {
			raw, _ := tbl.Get(k)
			path := eng.AppendPointer("/"+keyAddress3D, k)
			list, lerr := addressList(raw, 3, path)
			if lerr != nil {
				iss = AppendIssues(iss, *lerr)
				continue
			}
			if t, err := parseTriple(list, path); err != nil {
				iss = AppendIssues(iss, *err)
			} else {
				c.address3D.set(k, t)
			}
		}
	}

	if tbl, err := optionalObject(root, keyCategories); err != nil {
		iss = AppendIssues(iss, *err)
	} else if tbl != nil {
		for _, name := range tbl.Keys() {
			path := eng.AppendPointer("/"+keyCategories, name)
			if _, builtin := c.resolveCategory(name); builtin {
				iss = AppendIssues(iss, issueAt(path, CodeDuplicateKey, "category %q shadows a built-in category", name))
				continue
			}
			tokens, err := stringListAt(tbl, name, path, true)
			if err != nil {
				iss = AppendIssues(iss, *err)
				continue
			}
			c.custom.set(name, tokens)
		}
	}

	si, serr := stringList(root, keySuffixIndex, true)
	if serr != nil {
		iss = AppendIssues(iss, *serr)
	}
	c.suffixIndex = si

	if len(iss) > 0 {
		return nil, iss
	}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return c, nil
}

// stringList reads obj[key] as an array of strings.
func stringList(obj *eng.Object, key string, required bool) ([]string, *Issue) {
	return stringListAt(obj, key, "/"+key, required)
}

// stringListAt is stringList with issues reported under path.
func stringListAt(obj *eng.Object, key, path string, required bool) ([]string, *Issue) {
	raw, ok := obj.Get(key)
	if !ok || raw == nil {
		if !required {
			return nil, nil
		}
		it := issueAt(path, CodeRequired, "'%s' must be a list of strings", key)
		return nil, &it
	}
	list, ok := raw.([]any)
	if !ok {
		it := issueAt(path, CodeInvalidType, "'%s' must be a list of strings, got %s", key, describe(raw))
		return nil, &it
	}
	out := make([]string, 0, len(list))
	for i, e := range list {
		s, ok := e.(string)
		if !ok {
			it := issueAt(eng.AppendPointer(path, strconv.Itoa(i)), CodeInvalidType, "'%s' must be a list of strings, got %s", key, describe(e))
			return nil, &it
		}
		out = append(out, s)
	}
	return out, nil
}

func optionalObject(obj *eng.Object, key string) (*eng.Object, *Issue) {
	raw, ok := obj.Get(key)
	if !ok || raw == nil {
		return nil, nil
	}
	tbl, ok := raw.(*eng.Object)
	if !ok {
		it := issueAt("/"+key, CodeInvalidType, "'%s' must be an object, got %s", key, describe(raw))
		return nil, &it
	}
	return tbl, nil
}

func addressList(raw any, n int, path string) ([]any, *Issue) {
	list, ok := raw.([]any)
	if !ok {
		it := issueAt(path, CodeInvalidType, "%dD address must be a length-%d array, got %s", n, n, describe(raw))
		return nil, &it
	}
	if len(list) != n {
		it := issueAt(path, CodeInvalidLength, "%dD address must be a length-%d array, got length %d", n, n, len(list))
		return nil, &it
	}
	return list, nil
}

func parsePair(list []any, path string) (AddressPair, *Issue) {
	var p AddressPair
	for i := range p {
		m, err := addressElement(list[i], path+"/"+strconv.Itoa(i))
		if err != nil {
			return AddressPair{}, err
		}
		p[i] = m
	}
	return p, nil
}

func parseTriple(list []any, path string) (AddressTriple, *Issue) {
	var t AddressTriple
	for i := range t {
		m, err := addressElement(list[i], path+"/"+strconv.Itoa(i))
		if err != nil {
			return AddressTriple{}, err
		}
		t[i] = m
	}
	return t, nil
}

func addressElement(v any, path string) (AddressMode, *Issue) {
	switch t := v.(type) {
	case AddressMode:
		if t.IsValid() {
			return t, nil
		}
		it := issueAt(path, CodeInvalidEnum, "unknown AddressMode int: %d", int(t))
		return 0, &it
	case string:
		m, err := ParseAddressModeFold(t)
		if err != nil {
			it := issueAt(path, CodeInvalidEnum, "%s", enumMessage(err))
			return 0, &it
		}
		return m, nil
	default:
		it := issueAt(path, CodeInvalidType, "address element must be a string, got %s", describe(v))
		return 0, &it
	}
}

// ToMap renders the configuration with explicit 2D/3D sections; the legacy
// mixed section is never written.
func (c *SuffixConfig) ToMap() map[string]any {
	return c.toObject().Map()
}

func (c *SuffixConfig) toObject() *eng.Object {
	out := eng.NewObject()
	out.Set(keyTextureType, c.TextureType())
	if c.address2D.len() > 0 {
		tbl := eng.NewObject()
		for _, k := range c.address2D.keys {
			p := c.address2D.vals[k]
			tbl.Set(k, []string{p[0].String(), p[1].String()})
		}
		out.Set(keyAddress2D, tbl)
	}
	if c.address3D.len() > 0 {
		tbl := eng.NewObject()
		for _, k := range c.address3D.keys {
			t := c.address3D.vals[k]
			tbl.Set(k, []string{t[0].String(), t[1].String(), t[2].String()})
		}
		out.Set(keyAddress3D, tbl)
	}
	if c.custom.len() > 0 {
		tbl := eng.NewObject()
		for _, k := range c.custom.keys {
			tbl.Set(k, append([]string(nil), c.custom.vals[k]...))
		}
		out.Set(keyCategories, tbl)
	}
	out.Set(keySuffixIndex, c.SuffixIndex())
	return out
}

// DecodeSuffixConfig decodes a suffix configuration document.
func DecodeSuffixConfig(data []byte, f DocumentFormat, opt *LoadOptions) (*SuffixConfig, error) {
	v, err := decodeDocument(data, f, opt.normalize())
	if err != nil {
		return nil, err
	}
	return suffixConfigFromValue(v)
}

func suffixConfigFromValue(v any) (*SuffixConfig, error) {
	root, ok := v.(*eng.Object)
	if !ok {
		return nil, Issues{issueAt("/", CodeInvalidType, "root must be an object, got %s", describe(v))}
	}
	return suffixConfigFromObject(root)
}

// LoadSuffixConfig reads a suffix configuration from a JSON or YAML file.
func LoadSuffixConfig(path string, opt *LoadOptions) (*SuffixConfig, error) {
	v, err := readDocument(path, opt.normalize())
	if err == nil {
		var c *SuffixConfig
		if c, err = suffixConfigFromValue(v); err == nil {
			return c, nil
		}
	}
	return nil, fmt.Errorf("failed to load suffix config from %q: %w", path, err)
}

// EncodeSuffixConfig renders c in the given format.
func EncodeSuffixConfig(c *SuffixConfig, f DocumentFormat) ([]byte, error) {
	return eng.Encode(c.toObject(), f)
}

// SaveSuffixConfig writes c to path, creating parent directories.
func SaveSuffixConfig(path string, c *SuffixConfig, opt *SaveOptions) error {
	o := opt.normalize()
	if err := writeDocument(path, c.toObject(), o.format(path)); err != nil {
		return fmt.Errorf("save suffix config to %q: %w", path, err)
	}
	return nil
}
