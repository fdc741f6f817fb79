package texnaming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/texnaming"
)

func TestResolveAddress(t *testing.T) {
	cfg := decodeRules(t, suffixSettingsJSON)

	assert.Equal(t, texnaming.AddressPair{texnaming.AddressMirror, texnaming.AddressWrap}, texnaming.ResolveAddress([]string{"col", "mw"}, cfg))
	assert.Equal(t, texnaming.AddressPair{texnaming.AddressClamp, texnaming.AddressClamp}, texnaming.ResolveAddress([]string{"cub", "ww"}, cfg), "token order, not category order")
	assert.Equal(t, texnaming.AddressPair{texnaming.AddressWrap, texnaming.AddressWrap}, texnaming.ResolveAddress([]string{"col"}, cfg))
	assert.Equal(t, texnaming.AddressPair{texnaming.AddressWrap, texnaming.AddressWrap}, texnaming.ResolveAddress(nil, nil))
}

func TestResolveParams(t *testing.T) {
	m, err := texnaming.DecodeParamsMap([]byte(textureSettingsJSON), texnaming.FormatJSON, nil)
	require.NoError(t, err)

	p := texnaming.ResolveParams([]string{"ww", "nml", "col"}, m)
	assert.Equal(t, texnaming.CompressionNormalMap, *p.Compression)

	p = texnaming.ResolveParams([]string{"zz"}, m)
	assert.True(t, p.Equal(texnaming.DefaultParams()))
}

func TestBuildFinalParams(t *testing.T) {
	cfg := decodeRules(t, suffixSettingsJSON)
	m, err := texnaming.DecodeParamsMap([]byte(textureSettingsJSON), texnaming.FormatJSON, nil)
	require.NoError(t, err)

	final := texnaming.BuildFinalParams([]string{"col", "cc"}, m, cfg)
	assert.Equal(t, texnaming.AddressMirror, *final.AddressU)
	assert.Equal(t, texnaming.AddressMirror, *final.AddressV)
	assert.Equal(t, 2048, *final.MaxInGame)
	assert.Nil(t, final.AddressZ)

	col, _ := m.Lookup("col")
	assert.Equal(t, texnaming.AddressWrap, *col.AddressU, "loaded map must not change")

	def := texnaming.BuildFinalParams([]string{"zz"}, m, cfg)
	assert.Equal(t, texnaming.AddressWrap, *def.AddressU)
	assert.Equal(t, texnaming.AddressWrap, *def.AddressV)
	assert.True(t, def.Save)
}
