// Package texnaming validates texture filenames against a positional suffix
// naming convention and resolves the import settings a name implies.
//
// The package provides:
//
// - A suffix grid: one row of legal tokens per category, in suffix_index order
// - A fail-fast validator matching extracted tokens against the grid
// - Typed texture parameters (address modes, compression, size caps, sRGB)
// - JSON/YAML loading and saving with backward-compatible legacy shapes
// - Resolution of the final parameters for one texture (first match wins)
//
// Typical usage:
//
//	rules, err := texnaming.LoadSuffixConfig("SuffixSettings.json", nil)
//	params, err := texnaming.LoadParamsMap("TextureSettings.json", nil)
//	grid := texnaming.BuildGrid(rules)
//
//	tokens := pathrule.CollectSuffixes(texturePath, grid.Tokens())
//	if res := texnaming.Validate(tokens, grid); res.OK {
//		final := texnaming.BuildFinalParams(tokens, params, rules)
//	}
//
// Load errors are Issues and classify via errors.Is against ErrSchema,
// ErrDomain and ErrNotFound. Validation failures are data, not errors.
package texnaming
