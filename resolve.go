package texnaming

// ResolveAddress returns the address pair of the first token registered in
// cfg, in token order. A 3D token contributes its U/V. Without a match the
// result is (WRAP, WRAP).
func ResolveAddress(tokens []string, cfg *SuffixConfig) AddressPair {
	if cfg != nil {
		for _, t := range tokens {
			if p, ok := cfg.address2D.get(t); ok {
				return p
			}
			if tr, ok := cfg.address3D.get(t); ok {
				return AddressPair{tr[0], tr[1]}
			}
		}
	}
	return AddressPair{AddressWrap, AddressWrap}
}

// ResolveParams returns a copy of the first record keyed by a token, in token
// order, or DefaultParams when none matches.
func ResolveParams(tokens []string, m ParamsMap) TextureConfigParams {
	for _, t := range tokens {
		if p, ok := m.Lookup(t); ok {
			return p
		}
	}
	return DefaultParams()
}

// BuildFinalParams resolves the base record and overwrites its U/V address
// modes with the resolved pair. The loaded map is never modified. The W axis
// is left as configured.
func BuildFinalParams(tokens []string, m ParamsMap, cfg *SuffixConfig) TextureConfigParams {
	base := ResolveParams(tokens, m)
	addr := ResolveAddress(tokens, cfg)
	if out, err := OverwriteAddressUV(base, addr[0], addr[1]); err == nil {
		return out
	}
	return base
}
