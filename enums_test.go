package texnaming_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/texnaming"
)

func TestEnumIntegerValues(t *testing.T) {
	assert.Equal(t, 0, int(texnaming.AddressWrap))
	assert.Equal(t, 1, int(texnaming.AddressClamp))
	assert.Equal(t, 2, int(texnaming.AddressMirror))
	assert.Equal(t, 8, int(texnaming.CompressionBC7))
	assert.Equal(t, -1, int(texnaming.SRGBAuto))
	assert.Equal(t, 2048, texnaming.Size2048.Pixels())
}

func TestParseAddressMode(t *testing.T) {
	m, err := texnaming.ParseAddressMode(" CLAMP ")
	require.NoError(t, err)
	assert.Equal(t, texnaming.AddressClamp, m)

	_, err = texnaming.ParseAddressMode("clamp")
	require.Error(t, err)
	assert.True(t, errors.Is(err, texnaming.ErrDomain))
	assert.Contains(t, err.Error(), `unknown AddressMode name: "clamp"`)

	m, err = texnaming.ParseAddressModeFold(" mirror")
	require.NoError(t, err)
	assert.Equal(t, texnaming.AddressMirror, m)
}

func TestEnumFromValue(t *testing.T) {
	c, err := texnaming.CompressionKindFromValue(1)
	require.NoError(t, err)
	assert.Equal(t, texnaming.CompressionNormalMap, c)

	s, err := texnaming.SRGBModeFromValue(-1)
	require.NoError(t, err)
	assert.Equal(t, texnaming.SRGBAuto, s)

	_, err = texnaming.AddressModeFromValue(7)
	require.ErrorIs(t, err, texnaming.ErrDomain)
	assert.Contains(t, err.Error(), "unknown AddressMode int: 7")
}

func TestEnumNamesRoundTrip(t *testing.T) {
	for v := 0; v <= 8; v++ {
		c, err := texnaming.CompressionKindFromValue(v)
		require.NoError(t, err)
		back, err := texnaming.ParseCompressionKind(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, back)
	}
	assert.Equal(t, "DISTANCE_FIELD_FONT", texnaming.CompressionDistanceFieldFont.String())
	assert.Equal(t, "CompressionKind(9)", texnaming.CompressionKind(9).String())
}

func TestSizePreset(t *testing.T) {
	p, err := texnaming.ParseSizePreset("P1024")
	require.NoError(t, err)
	assert.Equal(t, texnaming.Size1024, p)
	assert.Equal(t, "AUTO", texnaming.SizeAuto.String())

	_, err = texnaming.SizePresetFromValue(300)
	require.Error(t, err)
	assert.False(t, texnaming.SizePreset(300).IsValid())
}

func TestEnumTextMarshaling(t *testing.T) {
	b, err := texnaming.SRGBOn.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "ON", string(b))

	var s texnaming.SRGBMode
	require.NoError(t, s.UnmarshalText([]byte("AUTO")))
	assert.Equal(t, texnaming.SRGBAuto, s)

	_, err = texnaming.AddressMode(5).MarshalText()
	require.Error(t, err)

	var m texnaming.AddressMode
	require.Error(t, m.UnmarshalText([]byte("wrap")))
}

func TestMipGenAndTextureGroupKinds(t *testing.T) {
	assert.Equal(t, 0, int(texnaming.MipGenFromTextureGroup))
	assert.Equal(t, 11, int(texnaming.MipGenSharpen8))
	assert.Equal(t, 0, int(texnaming.TextureGroupWorld))
	assert.Equal(t, 13, int(texnaming.TextureGroupMedia))

	for v := 0; v <= 11; v++ {
		k, err := texnaming.MipGenKindFromValue(v)
		require.NoError(t, err)
		back, err := texnaming.ParseMipGenKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, back)
	}
	for v := 0; v <= 13; v++ {
		g, err := texnaming.TextureGroupKindFromValue(v)
		require.NoError(t, err)
		back, err := texnaming.ParseTextureGroupKind(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, back)
	}

	assert.Equal(t, "SIMPLE_AVERAGE", texnaming.MipGenSimpleAverage.String())
	assert.Equal(t, "CHARACTER_SPECULAR", texnaming.TextureGroupCharacterSpecular.String())
	assert.Equal(t, "MipGenKind(12)", texnaming.MipGenKind(12).String())
	assert.False(t, texnaming.TextureGroupKind(-1).IsValid())

	_, err := texnaming.ParseTextureGroupKind("world")
	require.ErrorIs(t, err, texnaming.ErrDomain)

	var g texnaming.TextureGroupKind
	require.NoError(t, g.UnmarshalText([]byte("SKYBOX")))
	assert.Equal(t, texnaming.TextureGroupSkybox, g)
	b, err := texnaming.MipGenNoMipmaps.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "NO_MIPMAPS", string(b))
}
