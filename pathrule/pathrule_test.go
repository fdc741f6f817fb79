package pathrule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/texnaming/pathrule"
)

var known = []string{"cc", "cw", "cm", "wc", "ww", "wm", "mc", "mw", "mm", "col", "msk", "nml", "mat", "cub", "flw"}

func TestCollectSuffixes(t *testing.T) {
	cases := []struct {
		path string
		want []string
	}{
		{"/home/dev/proj/textures/CharA/FaceDiff_cc_msk_nml.png", []string{"cc", "msk", "nml"}},
		{"/home/dev/assets/P0_P1_Tree_mat_col_nml.tga", []string{"mat", "col", "nml"}},
		{"/srv/game/tiles/Tileset_v2_cub_cc_flw.exr", []string{"cub", "cc", "flw"}},
		{"/home/dev/work/tex/Rock_nml_msk.png", []string{"nml", "msk"}},
		{"/home/dev/tex/Skybox_ww_wm.jpg", []string{"ww", "wm"}},
		{"/home/dev/tex/Props/Vase_cc_01.png", nil},
		{"/home/dev/assets/Torch_msk_preview.jpg", nil},
		{"/home/dev/proj/tex/Stairs_nml_col_dummy.png", nil},
		{"/home/dev/textures/CharacterHair_cc_BAD_msk.tga", []string{"msk"}},
		{"/srv/game/tex/Tileset_lod1_mw_cc.exr", []string{"mw", "cc"}},
		{`C:\tex\Rock__nml_msk.png`, []string{"nml", "msk"}},
		{"/Game/T_Rock_col_ww.T_Rock_col_ww", []string{"col", "ww"}},
		{"/tex/Rock_NML.png", nil},
		{"/tex/.hidden", nil},
		{"", nil},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, pathrule.CollectSuffixes(tc.path, known))
		})
	}
}

func TestCollectSuffixesEmptyKnown(t *testing.T) {
	assert.Nil(t, pathrule.CollectSuffixes("/tex/Rock_nml.png", nil))
}

func TestIsPathAllowed(t *testing.T) {
	allowed := []string{"/Game/VFX", "/Game/Characters"}

	for _, p := range []string{
		"/Game/VFX/Smoke/T_Smoke.T_Smoke",
		"/Game/Characters/Hero/T_Hero.T_Hero",
		"/Game/VFX/T_Fire.T_Fire",
		"/Game/VFX/Smoke/",
		"/Game/VFX/Smoke/T_Smoke",
		`\Game\VFX\Smoke\T_Smoke.T_Smoke`,
	} {
		assert.True(t, pathrule.IsPathAllowed(p, allowed), p)
	}

	for _, p := range []string{
		"/Game/Env/Trees/T_Tree.T_Tree",
		"/Game/VFXFoo/FX/T_X.T_X",
		"/Game/VF/T_X.T_X",
		"",
		"T_Smoke.T_Smoke",
		"/Game",
	} {
		assert.False(t, pathrule.IsPathAllowed(p, allowed), p)
	}
}

func TestIsPathAllowedTrailingSlashInAllowList(t *testing.T) {
	allowed := []string{"/Game/VFX/", "/Game/Characters/"}
	assert.True(t, pathrule.IsPathAllowed("/Game/VFX/Smoke/T_Smoke.T_Smoke", allowed))
	assert.True(t, pathrule.IsPathAllowed("/Game/VFX/T_Something.T_Something", []string{"/Game/VFX"}))
	assert.False(t, pathrule.IsPathAllowed("/Game/VFX/T_Something", nil))
}

func TestWithin(t *testing.T) {
	assert.True(t, pathrule.Within("/a/b", "/a"))
	assert.True(t, pathrule.Within("/a", "/a"))
	assert.True(t, pathrule.Within("/a", "/"))
	assert.False(t, pathrule.Within("/ab", "/a"))
}
