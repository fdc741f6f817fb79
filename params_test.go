package texnaming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/texnaming"
)

func TestDefaultParams(t *testing.T) {
	p := texnaming.DefaultParams()
	assert.True(t, p.Save)
	assert.False(t, p.Silent)
	assert.False(t, p.EnforcePow2)
	assert.Nil(t, p.AddressU)
	assert.Nil(t, p.MaxInGame)
	assert.NoError(t, p.Validate())
}

func TestNormalizeSize(t *testing.T) {
	cases := []struct {
		n      int
		policy texnaming.ClampPolicy
		want   int
	}{
		{-5, texnaming.ClampNone, 0},
		{0, texnaming.ClampAuthoring, 0},
		{0, texnaming.ClampApply, 0},
		{1, texnaming.ClampAuthoring, 16},
		{15, texnaming.ClampApply, 16},
		{16, texnaming.ClampAuthoring, 16},
		{2048, texnaming.ClampAuthoring, 2048},
		{5000, texnaming.ClampAuthoring, 4096},
		{5000, texnaming.ClampApply, 5000},
		{99999, texnaming.ClampApply, 16384},
		{99999, texnaming.ClampNone, 99999},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, texnaming.NormalizeSize(tc.n, tc.policy), "%d/%s", tc.n, tc.policy)
	}
}

func TestNormalizeSizeIdempotent(t *testing.T) {
	for _, policy := range []texnaming.ClampPolicy{texnaming.ClampNone, texnaming.ClampAuthoring, texnaming.ClampApply} {
		for _, n := range []int{-10, 0, 1, 15, 16, 100, 4096, 4097, 16384, 20000} {
			once := texnaming.NormalizeSize(n, policy)
			assert.Equal(t, once, texnaming.NormalizeSize(once, policy))
			assert.GreaterOrEqual(t, once, 0)
			if once != 0 && policy != texnaming.ClampNone {
				assert.GreaterOrEqual(t, once, 16)
				assert.LessOrEqual(t, once, policy.Max())
			}
		}
	}
}

func TestOverwriteAddressUV(t *testing.T) {
	base := texnaming.DefaultParams()
	base.AddressZ = texnaming.AddressMirror.Ptr()

	out, err := texnaming.OverwriteAddressUV(base, texnaming.AddressClamp, texnaming.AddressWrap)
	require.NoError(t, err)
	assert.Equal(t, texnaming.AddressClamp, *out.AddressU)
	assert.Equal(t, texnaming.AddressWrap, *out.AddressV)
	assert.Equal(t, texnaming.AddressMirror, *out.AddressZ)
	assert.Nil(t, base.AddressU, "input must not change")

	_, err = texnaming.OverwriteAddressUV(base, texnaming.AddressMode(9), texnaming.AddressWrap)
	require.ErrorIs(t, err, texnaming.ErrInvalidArgument)
}

func TestOverwriteMaxInGame(t *testing.T) {
	base := texnaming.DefaultParams()
	base.EnforcePow2 = true

	out, err := texnaming.OverwriteMaxInGame(base, 8000)
	require.NoError(t, err)
	assert.Equal(t, 4096, *out.MaxInGame)
	assert.True(t, out.EnforcePow2)
	assert.Nil(t, base.MaxInGame)

	out, err = texnaming.OverwriteMaxInGame(base, 8000, texnaming.WithClampPolicy(texnaming.ClampApply), texnaming.WithEnforcePow2(false))
	require.NoError(t, err)
	assert.Equal(t, 8000, *out.MaxInGame)
	assert.False(t, out.EnforcePow2)

	out, err = texnaming.OverwriteMaxInGame(base, -3)
	require.NoError(t, err)
	assert.Equal(t, 0, *out.MaxInGame)

	_, err = texnaming.OverwriteMaxInGame(base, 10, texnaming.WithClampPolicy(texnaming.ClampPolicy(7)))
	require.ErrorIs(t, err, texnaming.ErrInvalidArgument)
}

func TestCloneDoesNotAlias(t *testing.T) {
	p := texnaming.DefaultParams()
	p.MaxInGame = texnaming.IntPtr(512)
	p.SRGB = texnaming.SRGBOff.Ptr()

	c := p.Clone()
	require.True(t, c.Equal(p))
	*c.MaxInGame = 1024
	*c.SRGB = texnaming.SRGBOn
	assert.Equal(t, 512, *p.MaxInGame)
	assert.Equal(t, texnaming.SRGBOff, *p.SRGB)
	assert.False(t, c.Equal(p))
}

func TestValidateRejectsUndefinedValues(t *testing.T) {
	p := texnaming.DefaultParams()
	bad := texnaming.AddressMode(4)
	p.AddressV = &bad
	p.MaxInGame = texnaming.IntPtr(-1)

	err := p.Validate()
	require.Error(t, err)
	iss, ok := texnaming.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 2)
	assert.Equal(t, "/address_v", iss[0].Path)
	assert.Equal(t, "/max_in_game", iss[1].Path)
}
