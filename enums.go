package texnaming

import (
	"fmt"
	"strings"
)

// AddressMode is the texture wrapping mode of one axis.
type AddressMode int

const (
	AddressWrap   AddressMode = 0
	AddressClamp  AddressMode = 1
	AddressMirror AddressMode = 2
)

var addressModes = []AddressMode{AddressWrap, AddressClamp, AddressMirror}

// String returns the canonical wire name.
func (m AddressMode) String() string {
	switch m {
	case AddressWrap:
		return "WRAP"
	case AddressClamp:
		return "CLAMP"
	case AddressMirror:
		return "MIRROR"
	default:
		return fmt.Sprintf("AddressMode(%d)", int(m))
	}
}

// IsValid reports whether m is a defined member.
func (m AddressMode) IsValid() bool { return m >= AddressWrap && m <= AddressMirror }

// Ptr returns a pointer to a copy of m, for optional record fields.
func (m AddressMode) Ptr() *AddressMode { return &m }

// ParseAddressMode resolves a canonical name. Surrounding whitespace is ignored.
func ParseAddressMode(name string) (AddressMode, error) {
	return parseByName("AddressMode", addressModes, name, false)
}

// ParseAddressModeFold resolves a name case-insensitively, as suffix tables do.
func ParseAddressModeFold(name string) (AddressMode, error) {
	return parseByName("AddressMode", addressModes, name, true)
}

// AddressModeFromValue resolves the integer compatibility encoding.
func AddressModeFromValue(v int) (AddressMode, error) {
	return parseByValue("AddressMode", addressModes, v)
}

func (m AddressMode) MarshalText() ([]byte, error) { return marshalEnum("AddressMode", m) }

func (m *AddressMode) UnmarshalText(b []byte) error {
	v, err := ParseAddressMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// CompressionKind selects the texture compression setting.
type CompressionKind int

const (
	CompressionDefault           CompressionKind = 0
	CompressionNormalMap         CompressionKind = 1
	CompressionMasks             CompressionKind = 2
	CompressionGrayscale         CompressionKind = 3
	CompressionHDR               CompressionKind = 4
	CompressionAlpha             CompressionKind = 5
	CompressionEditorIcon        CompressionKind = 6
	CompressionDistanceFieldFont CompressionKind = 7
	CompressionBC7               CompressionKind = 8
)

var compressionKinds = []CompressionKind{
	CompressionDefault, CompressionNormalMap, CompressionMasks, CompressionGrayscale, CompressionHDR,
	CompressionAlpha, CompressionEditorIcon, CompressionDistanceFieldFont, CompressionBC7,
}

func (c CompressionKind) String() string {
	switch c {
	case CompressionDefault:
		return "DEFAULT"
	case CompressionNormalMap:
		return "NORMAL_MAP"
	case CompressionMasks:
		return "MASKS"
	case CompressionGrayscale:
		return "GRAYSCALE"
	case CompressionHDR:
		return "HDR"
	case CompressionAlpha:
		return "ALPHA"
	case CompressionEditorIcon:
		return "EDITOR_ICON"
	case CompressionDistanceFieldFont:
		return "DISTANCE_FIELD_FONT"
	case CompressionBC7:
		return "BC7"
	default:
		return fmt.Sprintf("CompressionKind(%d)", int(c))
	}
}

func (c CompressionKind) IsValid() bool { return c >= CompressionDefault && c <= CompressionBC7 }

func (c CompressionKind) Ptr() *CompressionKind { return &c }

// ParseCompressionKind resolves a canonical name.
func ParseCompressionKind(name string) (CompressionKind, error) {
	return parseByName("CompressionKind", compressionKinds, name, false)
}

// CompressionKindFromValue resolves the integer compatibility encoding.
func CompressionKindFromValue(v int) (CompressionKind, error) {
	return parseByValue("CompressionKind", compressionKinds, v)
}

func (c CompressionKind) MarshalText() ([]byte, error) { return marshalEnum("CompressionKind", c) }

func (c *CompressionKind) UnmarshalText(b []byte) error {
	v, err := ParseCompressionKind(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// SRGBMode controls color-space handling. SRGBAuto defers the decision to
// apply time, where it is inferred from the compression kind.
type SRGBMode int

const (
	SRGBOff  SRGBMode = 0
	SRGBOn   SRGBMode = 1
	SRGBAuto SRGBMode = -1
)

var srgbModes = []SRGBMode{SRGBOn, SRGBOff, SRGBAuto}

func (s SRGBMode) String() string {
	switch s {
	case SRGBOn:
		return "ON"
	case SRGBOff:
		return "OFF"
	case SRGBAuto:
		return "AUTO"
	default:
		return fmt.Sprintf("SRGBMode(%d)", int(s))
	}
}

func (s SRGBMode) IsValid() bool { return s >= SRGBAuto && s <= SRGBOn }

func (s SRGBMode) Ptr() *SRGBMode { return &s }

// ParseSRGBMode resolves a canonical name.
func ParseSRGBMode(name string) (SRGBMode, error) {
	return parseByName("SRGBMode", srgbModes, name, false)
}

// SRGBModeFromValue resolves the integer compatibility encoding.
func SRGBModeFromValue(v int) (SRGBMode, error) {
	return parseByValue("SRGBMode", srgbModes, v)
}

func (s SRGBMode) MarshalText() ([]byte, error) { return marshalEnum("SRGBMode", s) }

func (s *SRGBMode) UnmarshalText(b []byte) error {
	v, err := ParseSRGBMode(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MipGenKind selects how mip levels are generated.
type MipGenKind int

const (
	MipGenFromTextureGroup MipGenKind = iota
	MipGenNoMipmaps
	MipGenSimpleAverage
	MipGenSharpen0
	MipGenSharpen1
	MipGenSharpen2
	MipGenSharpen3
	MipGenSharpen4
	MipGenSharpen5
	MipGenSharpen6
	MipGenSharpen7
	MipGenSharpen8
)

var mipGenNames = [...]string{
	"FROM_TEXTURE_GROUP", "NO_MIPMAPS", "SIMPLE_AVERAGE",
	"SHARPEN0", "SHARPEN1", "SHARPEN2", "SHARPEN3", "SHARPEN4",
	"SHARPEN5", "SHARPEN6", "SHARPEN7", "SHARPEN8",
}

var mipGenKinds = membersOf[MipGenKind](len(mipGenNames))

func (k MipGenKind) String() string {
	if k.IsValid() {
		return mipGenNames[k]
	}
	return fmt.Sprintf("MipGenKind(%d)", int(k))
}

func (k MipGenKind) IsValid() bool { return k >= MipGenFromTextureGroup && k <= MipGenSharpen8 }

// ParseMipGenKind resolves a canonical name.
func ParseMipGenKind(name string) (MipGenKind, error) {
	return parseByName("MipGenKind", mipGenKinds, name, false)
}

// MipGenKindFromValue resolves the integer compatibility encoding.
func MipGenKindFromValue(v int) (MipGenKind, error) {
	return parseByValue("MipGenKind", mipGenKinds, v)
}

func (k MipGenKind) MarshalText() ([]byte, error) { return marshalEnum("MipGenKind", k) }

func (k *MipGenKind) UnmarshalText(b []byte) error {
	v, err := ParseMipGenKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// TextureGroupKind is the LOD texture group an asset belongs to.
type TextureGroupKind int

const (
	TextureGroupWorld TextureGroupKind = iota
	TextureGroupWorldNormalMap
	TextureGroupWorldSpecular
	TextureGroupCharacter
	TextureGroupCharacterNormalMap
	TextureGroupCharacterSpecular
	TextureGroupUI
	TextureGroupLightmap
	TextureGroupShadowmap
	TextureGroupSkybox
	TextureGroupVehicle
	TextureGroupCinematic
	TextureGroupEffects
	TextureGroupMedia
)

var textureGroupNames = [...]string{
	"WORLD", "WORLD_NORMAL_MAP", "WORLD_SPECULAR",
	"CHARACTER", "CHARACTER_NORMAL_MAP", "CHARACTER_SPECULAR",
	"UI", "LIGHTMAP", "SHADOWMAP", "SKYBOX", "VEHICLE",
	"CINEMATIC", "EFFECTS", "MEDIA",
}

var textureGroupKinds = membersOf[TextureGroupKind](len(textureGroupNames))

func (g TextureGroupKind) String() string {
	if g.IsValid() {
		return textureGroupNames[g]
	}
	return fmt.Sprintf("TextureGroupKind(%d)", int(g))
}

func (g TextureGroupKind) IsValid() bool { return g >= TextureGroupWorld && g <= TextureGroupMedia }

// ParseTextureGroupKind resolves a canonical name.
func ParseTextureGroupKind(name string) (TextureGroupKind, error) {
	return parseByName("TextureGroupKind", textureGroupKinds, name, false)
}

// TextureGroupKindFromValue resolves the integer compatibility encoding.
func TextureGroupKindFromValue(v int) (TextureGroupKind, error) {
	return parseByValue("TextureGroupKind", textureGroupKinds, v)
}

func (g TextureGroupKind) MarshalText() ([]byte, error) { return marshalEnum("TextureGroupKind", g) }

func (g *TextureGroupKind) UnmarshalText(b []byte) error {
	v, err := ParseTextureGroupKind(string(b))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// SizePreset names the canonical power-of-two size caps. It is an input
// convenience only: records always store a plain pixel count.
type SizePreset int

const (
	SizeAuto SizePreset = 0
	Size256  SizePreset = 256
	Size512  SizePreset = 512
	Size1024 SizePreset = 1024
	Size2048 SizePreset = 2048
	Size4096 SizePreset = 4096
)

var sizePresets = []SizePreset{SizeAuto, Size256, Size512, Size1024, Size2048, Size4096}

func (p SizePreset) String() string {
	switch p {
	case SizeAuto:
		return "AUTO"
	case Size256, Size512, Size1024, Size2048, Size4096:
		return fmt.Sprintf("P%d", int(p))
	default:
		return fmt.Sprintf("SizePreset(%d)", int(p))
	}
}

func (p SizePreset) IsValid() bool {
	for _, m := range sizePresets {
		if m == p {
			return true
		}
	}
	return false
}

// Pixels returns the preset's pixel count; AUTO is 0 (no cap).
func (p SizePreset) Pixels() int { return int(p) }

// ParseSizePreset resolves a preset name such as "AUTO" or "P2048".
func ParseSizePreset(name string) (SizePreset, error) {
	return parseByName("SizePreset", sizePresets, name, false)
}

// SizePresetFromValue resolves a pixel count to its preset.
func SizePresetFromValue(v int) (SizePreset, error) {
	return parseByValue("SizePreset", sizePresets, v)
}

type enumMember interface {
	~int
	fmt.Stringer
	IsValid() bool
}

// membersOf lists the dense members 0..n-1 of an iota enum.
func membersOf[E ~int](n int) []E {
	out := make([]E, n)
	for i := range out {
		out[i] = E(i)
	}
	return out
}

func parseByName[E enumMember](typeName string, members []E, name string, fold bool) (E, error) {
	s := strings.TrimSpace(name)
	for _, m := range members {
		if m.String() == s || (fold && strings.EqualFold(m.String(), s)) {
			return m, nil
		}
	}
	var zero E
	return zero, Issue{Code: CodeInvalidEnum, Path: "/", Message: fmt.Sprintf("unknown %s name: %q", typeName, s)}
}

func parseByValue[E enumMember](typeName string, members []E, v int) (E, error) {
	for _, m := range members {
		if int(m) == v {
			return m, nil
		}
	}
	var zero E
	return zero, Issue{Code: CodeInvalidEnum, Path: "/", Message: fmt.Sprintf("unknown %s int: %d", typeName, v)}
}

func marshalEnum[E enumMember](typeName string, m E) ([]byte, error) {
	if !m.IsValid() {
		return nil, Issue{Code: CodeInvalidEnum, Path: "/", Message: fmt.Sprintf("unknown %s int: %d", typeName, int(m))}
	}
	return []byte(m.String()), nil
}
