package texnaming

import "fmt"

// TextureConfigParams is the import configuration applied to one texture.
// Nil optional fields mean "leave the engine setting alone".
type TextureConfigParams struct {
	AddressU *AddressMode
	AddressV *AddressMode
	AddressZ *AddressMode

	// MaxInGame is the in-game size cap in pixels; 0 means no cap.
	MaxInGame   *int
	EnforcePow2 bool

	Compression *CompressionKind
	SRGB        *SRGBMode

	// MipGen and TextureGroup are always applied; their zero values are the
	// engine defaults FROM_TEXTURE_GROUP and WORLD.
	MipGen       MipGenKind
	TextureGroup TextureGroupKind

	// Save persists the asset after applying; Silent suppresses per-asset logs.
	Save   bool
	Silent bool
}

// DefaultParams returns the record used when no suffix matches.
func DefaultParams() TextureConfigParams {
	return TextureConfigParams{Save: true}
}

// Validate checks that every set enum field holds a defined member and the
// size cap is non-negative.
func (p TextureConfigParams) Validate() error {
	var iss Issues
	checkEnum := func(field string, ok bool, v int) {
		if !ok {
			iss = AppendIssues(iss, issueAt("/"+field, CodeInvalidEnum, "undefined value %d", v))
		}
	}
	if p.AddressU != nil {
		checkEnum("address_u", p.AddressU.IsValid(), int(*p.AddressU))
	}
	if p.AddressV != nil {
		checkEnum("address_v", p.AddressV.IsValid(), int(*p.AddressV))
	}
	if p.AddressZ != nil {
		checkEnum("address_z", p.AddressZ.IsValid(), int(*p.AddressZ))
	}
	if p.Compression != nil {
		checkEnum("compression", p.Compression.IsValid(), int(*p.Compression))
	}
	if p.SRGB != nil {
		checkEnum("srgb", p.SRGB.IsValid(), int(*p.SRGB))
	}
	checkEnum("mip_gen", p.MipGen.IsValid(), int(p.MipGen))
	checkEnum("texture_group", p.TextureGroup.IsValid(), int(p.TextureGroup))
	if p.MaxInGame != nil && *p.MaxInGame < 0 {
		iss = AppendIssues(iss, issueAt("/max_in_game", CodeInvalidFormat, "must be non-negative, got %d", *p.MaxInGame))
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// ClampPolicy selects the range a non-zero size cap is clamped into.
type ClampPolicy int

const (
	// ClampNone only floors negatives to 0.
	ClampNone ClampPolicy = iota
	// ClampAuthoring clamps into [16, 4096], the range used when editing configs.
	ClampAuthoring
	// ClampApply clamps into [16, 16384], the range the engine accepts at apply time.
	ClampApply
)

const minClampedSize = 16

// Max returns the upper bound of the policy, or 0 when unbounded.
func (c ClampPolicy) Max() int {
	switch c {
	case ClampAuthoring:
		return 4096
	case ClampApply:
		return 16384
	default:
		return 0
	}
}

func (c ClampPolicy) String() string {
	switch c {
	case ClampNone:
		return "none"
	case ClampAuthoring:
		return "authoring"
	case ClampApply:
		return "apply"
	default:
		return fmt.Sprintf("ClampPolicy(%d)", int(c))
	}
}

// NormalizeSize floors n at 0 and, unless the policy is ClampNone, clamps a
// non-zero result into the policy range. 0 always means "no cap".
func NormalizeSize(n int, policy ClampPolicy) int {
	if n < 0 {
		n = 0
	}
	hi := policy.Max()
	if hi == 0 || n == 0 {
		return n
	}
	if n < minClampedSize {
		return minClampedSize
	}
	if n > hi {
		return hi
	}
	return n
}

// OverwriteAddressUV returns p with AddressU/AddressV replaced. AddressZ is
// never touched. Invalid modes fail with ErrInvalidArgument and p is returned
// unchanged.
func OverwriteAddressUV(p TextureConfigParams, u, v AddressMode) (TextureConfigParams, error) {
	if !u.IsValid() || !v.IsValid() {
		return p, fmt.Errorf("%w: address modes must be defined, got %s/%s", ErrInvalidArgument, u, v)
	}
	p.AddressU = u.Ptr()
	p.AddressV = v.Ptr()
	return p, nil
}

type maxSizeOptions struct {
	enforcePow2 *bool
	policy      ClampPolicy
}

// MaxSizeOption configures OverwriteMaxInGame.
type MaxSizeOption func(*maxSizeOptions)

// WithEnforcePow2 also overwrites the power-of-two flag.
func WithEnforcePow2(v bool) MaxSizeOption {
	return func(o *maxSizeOptions) { o.enforcePow2 = &v }
}

// WithClampPolicy overrides the default ClampAuthoring policy.
func WithClampPolicy(c ClampPolicy) MaxSizeOption {
	return func(o *maxSizeOptions) { o.policy = c }
}

// OverwriteMaxInGame returns p with MaxInGame set to the normalized size.
// EnforcePow2 is kept unless WithEnforcePow2 is given.
func OverwriteMaxInGame(p TextureConfigParams, size int, opts ...MaxSizeOption) (TextureConfigParams, error) {
	o := maxSizeOptions{policy: ClampAuthoring}
	for _, fn := range opts {
		fn(&o)
	}
	if o.policy < ClampNone || o.policy > ClampApply {
		return p, fmt.Errorf("%w: unknown clamp policy %s", ErrInvalidArgument, o.policy)
	}
	n := NormalizeSize(size, o.policy)
	p.MaxInGame = &n
	if o.enforcePow2 != nil {
		p.EnforcePow2 = *o.enforcePow2
	}
	return p, nil
}

// Clone returns a deep copy so optional fields never alias between records.
func (p TextureConfigParams) Clone() TextureConfigParams {
	out := p
	out.AddressU = clonePtr(p.AddressU)
	out.AddressV = clonePtr(p.AddressV)
	out.AddressZ = clonePtr(p.AddressZ)
	out.MaxInGame = clonePtr(p.MaxInGame)
	out.Compression = clonePtr(p.Compression)
	out.SRGB = clonePtr(p.SRGB)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Equal reports whether two records carry the same settings.
func (p TextureConfigParams) Equal(o TextureConfigParams) bool {
	return ptrEqual(p.AddressU, o.AddressU) &&
		ptrEqual(p.AddressV, o.AddressV) &&
		ptrEqual(p.AddressZ, o.AddressZ) &&
		ptrEqual(p.MaxInGame, o.MaxInGame) &&
		ptrEqual(p.Compression, o.Compression) &&
		ptrEqual(p.SRGB, o.SRGB) &&
		p.MipGen == o.MipGen &&
		p.TextureGroup == o.TextureGroup &&
		p.EnforcePow2 == o.EnforcePow2 &&
		p.Save == o.Save &&
		p.Silent == o.Silent
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// IntPtr is a helper for literal MaxInGame values.
func IntPtr(n int) *int { return &n }
