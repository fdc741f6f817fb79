// Package apply is the boundary between resolved texture parameters and the
// assets they configure.
package apply

import (
	"context"
	"math/bits"

	"github.com/reoring/texnaming"
)

// Report is the outcome of configuring one asset. Field failures are
// collected rather than aborting the remaining fields.
type Report struct {
	OK      bool     `json:"ok" yaml:"ok"`
	Applied []string `json:"applied" yaml:"applied"`
	Errors  []string `json:"errors" yaml:"errors"`
}

// Configurator applies a parameter record to the asset at assetPath. A
// returned error means the asset could not be configured at all; partial
// failures are reported in Report.Errors.
type Configurator interface {
	Apply(ctx context.Context, assetPath string, p texnaming.TextureConfigParams) (Report, error)
}

// ConfiguratorFunc adapts a function to Configurator.
type ConfiguratorFunc func(ctx context.Context, assetPath string, p texnaming.TextureConfigParams) (Report, error)

func (f ConfiguratorFunc) Apply(ctx context.Context, assetPath string, p texnaming.TextureConfigParams) (Report, error) {
	return f(ctx, assetPath, p)
}

// Field names reported in Report.Applied.
const (
	FieldAddress     = "address"
	FieldMaxInGame   = "max_in_game"
	FieldCompression = "compression"
	FieldSRGB        = "srgb"
	FieldTexGroup    = "texture_group"
	FieldMipGen      = "mip_gen"
)

// Settings are the effective values written to an asset. Nil fields are left
// untouched.
type Settings struct {
	AddressX       *texnaming.AddressMode
	AddressY       *texnaming.AddressMode
	AddressZ       *texnaming.AddressMode
	MaxTextureSize *int
	Compression    *texnaming.CompressionKind
	SRGB           *bool
	TextureGroup   texnaming.TextureGroupKind
	MipGen         texnaming.MipGenKind
}

// Effective computes the settings p produces at apply time. Address modes are
// only written when both U and V are set. A size cap is rounded down to a
// power of two when requested and then clamped with the apply policy. sRGB
// AUTO is resolved against the record's compression, or DEFAULT when unset.
// The texture group and mip generation are always written.
func Effective(p texnaming.TextureConfigParams) (Settings, []string) {
	var (
		s       Settings
		applied []string
	)
	if p.AddressU != nil && p.AddressV != nil {
		s.AddressX = p.AddressU.Ptr()
		s.AddressY = p.AddressV.Ptr()
		if p.AddressZ != nil {
			s.AddressZ = p.AddressZ.Ptr()
		}
		applied = append(applied, FieldAddress)
	}
	if p.MaxInGame != nil {
		size := *p.MaxInGame
		if p.EnforcePow2 && size > 0 {
			size = FloorPow2(size)
		}
		size = texnaming.NormalizeSize(size, texnaming.ClampApply)
		s.MaxTextureSize = &size
		applied = append(applied, FieldMaxInGame)
	}
	if p.Compression != nil {
		s.Compression = p.Compression.Ptr()
		applied = append(applied, FieldCompression)
	}
	if p.SRGB != nil {
		c := texnaming.CompressionDefault
		if p.Compression != nil {
			c = *p.Compression
		}
		v := ResolveSRGB(*p.SRGB, c)
		s.SRGB = &v
		applied = append(applied, FieldSRGB)
	}
	s.TextureGroup = p.TextureGroup
	s.MipGen = p.MipGen
	applied = append(applied, FieldTexGroup, FieldMipGen)
	return s, applied
}

// FloorPow2 returns the largest power of two not above n, or 0 for n <= 0.
func FloorPow2(n int) int {
	if n <= 0 {
		return 0
	}
	return 1 << (bits.Len(uint(n)) - 1)
}
