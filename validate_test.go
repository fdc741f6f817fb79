package texnaming_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/texnaming"
)

func TestBuildGridFollowsSuffixIndex(t *testing.T) {
	cfg := decodeRules(t, suffixSettingsJSON)
	grid := texnaming.BuildGrid(cfg)
	assert.Equal(t, texnaming.Grid{{"col", "nml", "msk"}, {"ww", "cc", "mw"}}, grid)
	assert.Equal(t, 2, grid.Rows())
	assert.Equal(t, []string{"col", "nml", "msk", "ww", "cc", "mw"}, grid.Tokens())
	assert.Len(t, grid.TokenSet(), 6)

	grid[0][0] = "mutated"
	assert.Equal(t, "col", texnaming.BuildGrid(cfg)[0][0])
	assert.Empty(t, texnaming.BuildGrid(nil))
}

func TestGridTokensDeduplicates(t *testing.T) {
	g := texnaming.Grid{{"a", "b"}, {"b", "c"}}
	assert.Equal(t, []string{"a", "b", "c"}, g.Tokens())
}

func TestValidateScenario(t *testing.T) {
	grid := texnaming.Grid{{"col", "nml"}, {"ww", "cc"}}

	res := texnaming.Validate([]string{"col", "ww"}, grid)
	assert.True(t, res.OK)
	assert.Equal(t, []string{"col", "ww"}, res.MatchesByRow)
	assert.Nil(t, res.FailedRowIndex)
	assert.Empty(t, res.Error)

	res = texnaming.Validate([]string{"COL", "Cc"}, grid)
	assert.True(t, res.OK)
	assert.Equal(t, []string{"COL", "Cc"}, res.MatchesByRow)

	res = texnaming.Validate([]string{"col"}, grid)
	assert.False(t, res.OK)
	assert.Nil(t, res.FailedRowIndex)
	assert.Equal(t, "suffix count does not match rule rows: expected=2, actual=1", res.Error)
	assert.Equal(t, []string{"col"}, res.SuffixList)

	res = texnaming.Validate([]string{"col", "ww", "cc"}, grid)
	assert.False(t, res.OK)
	assert.Nil(t, res.FailedRowIndex)

	res = texnaming.Validate([]string{"col", "xx"}, grid)
	assert.False(t, res.OK)
	require.NotNil(t, res.FailedRowIndex)
	assert.Equal(t, 1, *res.FailedRowIndex)
	assert.Contains(t, res.Error, `"xx"`)
	assert.Contains(t, res.Error, "[ww, cc]")
	assert.Nil(t, res.MatchesByRow)
}

func TestValidateFirstFailureWins(t *testing.T) {
	grid := texnaming.Grid{{"a"}, {"b"}, {"c"}}
	res := texnaming.Validate([]string{"a", "x", "y"}, grid)
	require.NotNil(t, res.FailedRowIndex)
	assert.Equal(t, 1, *res.FailedRowIndex)
}

func TestValidateEmpty(t *testing.T) {
	res := texnaming.Validate(nil, texnaming.Grid{})
	assert.True(t, res.OK)
	assert.Empty(t, res.MatchesByRow)

	res = texnaming.Validate([]string{"x"}, texnaming.Grid{{}})
	require.NotNil(t, res.FailedRowIndex)
	assert.Contains(t, res.Error, "[]")
}

func TestValidatePreviewTruncates(t *testing.T) {
	row := []string{"A1", "a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9"}
	res := texnaming.Validate([]string{"zz"}, texnaming.Grid{row})
	require.False(t, res.OK)
	assert.Contains(t, res.Error, "[a1, a2, a3, a4, a5, a6, a7, a8...]")

	res = texnaming.Validate([]string{"zz"}, texnaming.Grid{row[:9]})
	assert.True(t, strings.HasSuffix(res.Error, "[a1, a2, a3, a4, a5, a6, a7, a8]"))
}

func TestValidationResultIssue(t *testing.T) {
	grid := texnaming.Grid{{"col"}, {"ww"}}

	_, ok := texnaming.Validate([]string{"col", "ww"}, grid).Issue()
	assert.False(t, ok)

	it, ok := texnaming.Validate([]string{"col"}, grid).Issue()
	require.True(t, ok)
	assert.Equal(t, texnaming.CodeLengthMismatch, it.Code)
	assert.Equal(t, "/", it.Path)

	it, ok = texnaming.Validate([]string{"col", "cc"}, grid).Issue()
	require.True(t, ok)
	assert.Equal(t, texnaming.CodeSuffixMismatch, it.Code)
	assert.Equal(t, "/1", it.Path)
	assert.Nil(t, it.Class())
}

func TestValidateDoesNotAliasInput(t *testing.T) {
	tokens := []string{"col", "ww"}
	res := texnaming.Validate(tokens, texnaming.Grid{{"col"}, {"ww"}})
	tokens[0] = "changed"
	assert.Equal(t, "col", res.MatchesByRow[0])
	assert.Equal(t, "col", res.SuffixList[0])
}
