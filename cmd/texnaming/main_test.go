package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/texnaming/i18n"
)

const project = `{
  "run_dir": ["/Game/Textures"],
  "texture_type": ["col", "nml"],
  "address_suffix": {"ww": ["WRAP", "WRAP"], "cc": ["CLAMP", "CLAMP"]},
  "suffix_index": ["texture_type", "address_suffix_2d"],
  "texture_config": {"col": {"max_in_game": 1024, "srgb": "ON"}}
}`

func writeProject(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.json")
	require.NoError(t, os.WriteFile(path, []byte(project), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Cleanup(func() { i18n.SetLanguage("en") })
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestUsage(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "Usage")

	code, _, _ = runCLI(t, "bogus")
	assert.Equal(t, exitUsage, code)
}

func TestValidate(t *testing.T) {
	cfg := writeProject(t)

	code, stdout, _ := runCLI(t, "validate", "-config", cfg, "-log-level", "error", "/Game/Textures/T_A_col_ww.T_A_col_ww")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "OK   /Game/Textures/T_A_col_ww.T_A_col_ww [col, ww]")
	assert.Contains(t, stdout, "1 of 1 textures applied, 0 failed")

	code, stdout, _ = runCLI(t, "validate", "-config", cfg, "-log-level", "error",
		"/Game/Textures/T_A_col.T_A_col", "/Game/Textures/T_A_ww_col.T_A_ww_col")
	assert.Equal(t, exitFail, code)
	assert.Contains(t, stdout, "expected=2, actual=1")
	assert.Contains(t, stdout, "suffix 'ww' at row 0 is not allowed")
}

func TestValidateJapanese(t *testing.T) {
	cfg := writeProject(t)
	code, stdout, _ := runCLI(t, "validate", "-config", cfg, "-lang", "ja", "-log-level", "error", "/Game/Other/T_A_col_ww.T_A_col_ww")
	assert.Equal(t, exitFail, code)
	assert.Contains(t, stdout, "実行対象ディレクトリ外です")
}

func TestValidateRequiresConfig(t *testing.T) {
	code, _, _ := runCLI(t, "validate", "/Game/Textures/T_A_col_ww")
	assert.Equal(t, exitUsage, code)
}

func TestLoadIssuesAreLocalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.json")
	bad := `{"texture_type": ["col"], "address_suffix_2d": {"ww": ["WRAP", "WRAP"]}, "suffix_index": ["texture_type"], "texture_config": {"col": {"srgb": "MAYBE"}}}`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

	code, _, stderr := runCLI(t, "validate", "-config", path, "-log-level", "disabled", "/Game/T_A_col")
	assert.Equal(t, exitFail, code)
	assert.Contains(t, stderr, "unknown enum value /texture_config/col/srgb:")

	code, _, stderr = runCLI(t, "validate", "-config", path, "-lang", "ja", "-log-level", "disabled", "/Game/T_A_col")
	assert.Equal(t, exitFail, code)
	assert.Contains(t, stderr, "未知の列挙値です /texture_config/col/srgb:")
}

func TestApplyWritesManifest(t *testing.T) {
	cfg := writeProject(t)
	manifest := filepath.Join(t.TempDir(), "out", "manifest.json")

	code, _, _ := runCLI(t, "apply", "-config", cfg, "-manifest", manifest, "-log-level", "error",
		"/Game/Textures/T_A_col_cc.T_A_col_cc")
	require.Equal(t, exitOK, code)

	data, err := os.ReadFile(manifest)
	require.NoError(t, err)
	assert.JSONEq(t, `{"/Game/Textures/T_A_col_cc.T_A_col_cc":{"address_x":"CLAMP","address_y":"CLAMP","max_texture_size":1024,"srgb":true,"texture_group":"WORLD","mip_gen":"FROM_TEXTURE_GROUP","applied":["address","max_in_game","srgb","texture_group","mip_gen"]}}`, string(data))
}

func TestApplyRequiresPaths(t *testing.T) {
	cfg := writeProject(t)
	manifest := filepath.Join(t.TempDir(), "manifest.json")
	code, _, stderr := runCLI(t, "apply", "-config", cfg, "-manifest", manifest, "-log-level", "error")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "no paths given")
	_, err := os.Stat(manifest)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGrid(t *testing.T) {
	cfg := writeProject(t)
	code, stdout, _ := runCLI(t, "grid", "-config", cfg)
	require.Equal(t, exitOK, code)
	assert.JSONEq(t, `[{"row":0,"category":"texture_type","tokens":["col","nml"]},{"row":1,"category":"address_suffix_2d","tokens":["ww","cc"]}]`, stdout)
}

func TestFmtRewritesLegacySections(t *testing.T) {
	cfg := writeProject(t)
	out := filepath.Join(t.TempDir(), "project.yaml")
	code, _, _ := runCLI(t, "fmt", "-config", cfg, "-o", out)
	require.Equal(t, exitOK, code)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "address_suffix_2d:")
	assert.NotContains(t, string(data), "address_suffix:")
	assert.Contains(t, string(data), "max_in_game: 1024")

	code, stdout, _ := runCLI(t, "fmt", "-config", out)
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, `"address_suffix_2d"`)
}

func TestSeparateFiles(t *testing.T) {
	dir := t.TempDir()
	suffix := filepath.Join(dir, "suffix.yaml")
	textures := filepath.Join(dir, "textures.json")
	require.NoError(t, os.WriteFile(suffix, []byte("texture_type: [col]\naddress_suffix_2d:\n  ww: [wrap, wrap]\nsuffix_index: [texture_type, address_suffix_2d]\n"), 0o644))
	require.NoError(t, os.WriteFile(textures, []byte(`{"col": {"compression": "BC7"}}`), 0o644))

	code, stdout, _ := runCLI(t, "validate", "-suffix", suffix, "-textures", textures, "-log-level", "error", "Rock_col_ww.png")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "[col, ww]")
}

func TestExpandPathsWalksDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "A_col_ww.png"), nil, 0o644))

	paths, err := expandPaths([]string{dir, "/Game/X_col_ww"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.ToSlash(filepath.Join(dir, "sub", "A_col_ww.png")), "/Game/X_col_ww"}, paths)
}
