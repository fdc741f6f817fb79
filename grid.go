package texnaming

// Grid is the ordered suffix grid: row i lists the legal tokens for
// position i of a filename's suffix sequence.
type Grid [][]string

// BuildGrid returns one row per suffix_index entry of cfg, in order. Each row
// holds the category's tokens in declaration order.
func BuildGrid(cfg *SuffixConfig) Grid {
	if cfg == nil {
		return Grid{}
	}
	g := make(Grid, 0, len(cfg.rows))
	for _, ref := range cfg.rows {
		g = append(g, cfg.tokens(ref))
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Tokens returns the union of all rows, first occurrence first. It is the
// known-token set handed to suffix extraction.
func (g Grid) Tokens() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, row := range g {
		for _, t := range row {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}

// TokenSet returns Tokens as a set.
func (g Grid) TokenSet() map[string]struct{} {
	set := map[string]struct{}{}
	for _, row := range g {
		for _, t := range row {
			set[t] = struct{}{}
		}
	}
	return set
}
