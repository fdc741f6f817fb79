package texnaming

import (
	"math"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/texnaming/internal/engine"
)

// Wire keys of a parameter record.
const (
	keyAddressU    = "address_u"
	keyAddressV    = "address_v"
	keyAddressZ    = "address_z"
	keyMaxInGame   = "max_in_game"
	keyEnforcePow2 = "enforce_pow2"
	keyCompression = "compression"
	keySRGB        = "srgb"
	keyMipGen      = "mip_gen"
	keyTexGroup    = "texture_group"
	keySave        = "save"
	keySilent      = "silent"
)

// ParamsToMap flattens p into a JSON-compatible map. Enums become canonical
// names and max_in_game a plain integer. With minimal set, absent optional
// fields are omitted; otherwise they are present as nil. mip_gen and
// texture_group always carry a value. enforce_pow2 is only emitted alongside
// max_in_game.
func ParamsToMap(p TextureConfigParams, minimal bool) (map[string]any, error) {
	obj, err := paramsToObject(p, minimal)
	if err != nil {
		return nil, err
	}
	return obj.Map(), nil
}

func paramsToObject(p TextureConfigParams, minimal bool) (*eng.Object, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	obj := eng.NewObject()
	put := func(k string, v any, present bool) {
		if present {
			obj.Set(k, v)
		} else if !minimal {
			obj.Set(k, nil)
		}
	}
	put(keyAddressU, enumName(p.AddressU), p.AddressU != nil)
	put(keyAddressV, enumName(p.AddressV), p.AddressV != nil)
	put(keyAddressZ, enumName(p.AddressZ), p.AddressZ != nil)
	if p.MaxInGame != nil {
		put(keyMaxInGame, NormalizeSize(*p.MaxInGame, ClampNone), true)
		put(keyEnforcePow2, p.EnforcePow2, true)
	} else {
		put(keyMaxInGame, nil, false)
		put(keyEnforcePow2, nil, false)
	}
	put(keyCompression, enumName(p.Compression), p.Compression != nil)
	put(keySRGB, enumName(p.SRGB), p.SRGB != nil)
	obj.Set(keyMipGen, p.MipGen.String())
	obj.Set(keyTexGroup, p.TextureGroup.String())
	obj.Set(keySave, p.Save)
	obj.Set(keySilent, p.Silent)
	return obj, nil
}

func enumName[E interface{ String() string }](e *E) any {
	if e == nil {
		return nil
	}
	return (*e).String()
}

// ParamsFromMap builds a record from its flattened form. Enum fields accept a
// canonical name or, for compatibility, the member's integer value.
// max_in_game accepts an integer, "AUTO", "P<digits>" or a digit string.
// Unknown keys are ignored; missing booleans default to save=true,
// silent=false, enforce_pow2=false; a missing or null mip_gen or
// texture_group takes its zero default. Any malformed field fails the whole
// record.
func ParamsFromMap(m map[string]any) (TextureConfigParams, error) {
	return paramsFromMap(m, "")
}

func paramsFromMap(m map[string]any, base string) (TextureConfigParams, error) {
	var iss Issues
	fail := func(it *Issue) {
		if it != nil {
			iss = AppendIssues(iss, *it)
		}
	}
	path := func(k string) string {
		if base == "" {
			return "/" + k
		}
		return eng.AppendPointer(base, k)
	}

	p := DefaultParams()
	var it *Issue
	p.AddressU, it = parseEnumField(m, keyAddressU, path(keyAddressU), ParseAddressMode, AddressModeFromValue)
	fail(it)
	p.AddressV, it = parseEnumField(m, keyAddressV, path(keyAddressV), ParseAddressMode, AddressModeFromValue)
	fail(it)
	p.AddressZ, it = parseEnumField(m, keyAddressZ, path(keyAddressZ), ParseAddressMode, AddressModeFromValue)
	fail(it)
	p.Compression, it = parseEnumField(m, keyCompression, path(keyCompression), ParseCompressionKind, CompressionKindFromValue)
	fail(it)
	p.SRGB, it = parseEnumField(m, keySRGB, path(keySRGB), ParseSRGBMode, SRGBModeFromValue)
	fail(it)
	if mg, it := parseEnumField(m, keyMipGen, path(keyMipGen), ParseMipGenKind, MipGenKindFromValue); it != nil {
		fail(it)
	} else if mg != nil {
		p.MipGen = *mg
	}
	if tg, it := parseEnumField(m, keyTexGroup, path(keyTexGroup), ParseTextureGroupKind, TextureGroupKindFromValue); it != nil {
		fail(it)
	} else if tg != nil {
		p.TextureGroup = *tg
	}
	p.MaxInGame, it = parseSizeField(m[keyMaxInGame], path(keyMaxInGame))
	fail(it)
	p.EnforcePow2, it = parseBoolField(m, keyEnforcePow2, path(keyEnforcePow2), false)
	fail(it)
	p.Save, it = parseBoolField(m, keySave, path(keySave), true)
	fail(it)
	p.Silent, it = parseBoolField(m, keySilent, path(keySilent), false)
	fail(it)

	if len(iss) > 0 {
		return TextureConfigParams{}, iss
	}
	return p, nil
}

// parseEnumField is the tolerant boundary for enum-valued fields: a name
// string or an integral number.
func parseEnumField[E enumMember](m map[string]any, key, path string, byName func(string) (E, error), byValue func(int) (E, error)) (*E, *Issue) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil, nil
	}
	var (
		v   E
		err error
	)
	if s, isStr := raw.(string); isStr {
		v, err = byName(s)
	} else if n, isInt := intValue(raw); isInt {
		v, err = byValue(n)
	} else {
		it := issueAt(path, CodeInvalidType, "must be an enum name string, got %s", describe(raw))
		return nil, &it
	}
	if err != nil {
		it := issueAt(path, CodeInvalidEnum, "%s", enumMessage(err))
		return nil, &it
	}
	return &v, nil
}

// parseSizeField is the tolerant boundary for max_in_game. Every accepted
// shape normalizes to a non-negative pixel count.
func parseSizeField(raw any, path string) (*int, *Issue) {
	if raw == nil {
		return nil, nil
	}
	if n, ok := intValue(raw); ok {
		n = NormalizeSize(n, ClampNone)
		return &n, nil
	}
	if s, ok := raw.(string); ok {
		if n, ok := parseSizeString(s); ok {
			return &n, nil
		}
		it := issueAt(path, CodeInvalidFormat, "max_in_game must be int (0=auto) or 'AUTO'/'P####', got %q", s)
		return nil, &it
	}
	it := issueAt(path, CodeInvalidType, "max_in_game must be int (0=auto) or 'AUTO'/'P####', got %s", describe(raw))
	return nil, &it
}

// ParseSize parses the legacy size spellings: "AUTO" (0), "P2048", "512".
func ParseSize(s string) (int, error) {
	n, ok := parseSizeString(s)
	if !ok {
		return 0, issueAt("/", CodeInvalidFormat, "size must be 'AUTO', 'P####' or digits, got %q", s)
	}
	return n, nil
}

func parseSizeString(s string) (int, bool) {
	s = strings.TrimSpace(s)
	up := strings.ToUpper(s)
	if up == "AUTO" {
		return 0, true
	}
	if strings.HasPrefix(up, "P") && isDigits(s[1:]) {
		n, err := strconv.Atoi(s[1:])
		return NormalizeSize(n, ClampNone), err == nil
	}
	if isDigits(s) {
		n, err := strconv.Atoi(s)
		return NormalizeSize(n, ClampNone), err == nil
	}
	return 0, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parseBoolField(m map[string]any, key, path string, def bool) (bool, *Issue) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return def, nil
	}
	b, ok := raw.(bool)
	if !ok {
		it := issueAt(path, CodeInvalidType, "must be a boolean, got %s", describe(raw))
		return def, &it
	}
	return b, nil
}

// intValue accepts decoded JSON numbers and Go integers. Fractional values
// are rejected.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case j.Number:
		i, err := strconv.ParseInt(string(n), 10, 0)
		if err != nil {
			return 0, false
		}
		return int(i), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case int32:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case j.Number, int, int64, int32, float64:
		return "number"
	case []any:
		return "array"
	case *eng.Object, map[string]any:
		return "object"
	default:
		return "unsupported value"
	}
}

func enumMessage(err error) string {
	if it, ok := err.(Issue); ok {
		return it.Message
	}
	return err.Error()
}

// MarshalJSON encodes the minimal flattened form.
func (p TextureConfigParams) MarshalJSON() ([]byte, error) {
	obj, err := paramsToObject(p, true)
	if err != nil {
		return nil, err
	}
	return obj.MarshalJSON()
}

// UnmarshalJSON decodes the flattened form, accepting the legacy shapes.
func (p *TextureConfigParams) UnmarshalJSON(data []byte) error {
	v, dups, err := eng.DecodeJSON(data, eng.Options{})
	if err != nil {
		return fromEngineError(err)
	}
	if len(dups) > 0 {
		return fromEngineIssues(dups)
	}
	obj, ok := v.(*eng.Object)
	if !ok {
		return issueAt("/", CodeInvalidType, "texture parameters must be an object, got %s", describe(v))
	}
	out, err := paramsFromMap(obj.Map(), "")
	if err != nil {
		return err
	}
	*p = out
	return nil
}
