package apply

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/reoring/texnaming"
	eng "github.com/reoring/texnaming/internal/engine"
)

// Entry is the manifest record of one configured asset.
type Entry struct {
	Asset    string
	Settings Settings
	Applied  []string
	// Save mirrors the record's Save flag. Unsaved entries are reported but
	// not written by Flush.
	Save bool
}

// Manifest is a Configurator that records the effective settings of every
// asset and writes them to a JSON or YAML file on Flush. Re-applying an asset
// replaces its entry in place.
type Manifest struct {
	mu      sync.Mutex
	order   []string
	entries map[string]Entry
	log     zerolog.Logger
}

// ManifestOption configures a Manifest.
type ManifestOption func(*Manifest)

// WithLogger sets the logger used for per-asset messages.
func WithLogger(l zerolog.Logger) ManifestOption {
	return func(m *Manifest) { m.log = l }
}

// NewManifest returns an empty manifest.
func NewManifest(opts ...ManifestOption) *Manifest {
	m := &Manifest{entries: map[string]Entry{}, log: zerolog.Nop()}
	for _, fn := range opts {
		fn(m)
	}
	return m
}

// Apply records the effective settings of p for assetPath.
func (m *Manifest) Apply(ctx context.Context, assetPath string, p texnaming.TextureConfigParams) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	if assetPath == "" {
		return Report{}, fmt.Errorf("%w: empty asset path", texnaming.ErrInvalidArgument)
	}
	if err := p.Validate(); err != nil {
		rep := Report{Applied: []string{}, Errors: []string{}}
		iss, _ := texnaming.AsIssues(err)
		for _, it := range iss {
			rep.Errors = append(rep.Errors, it.Error())
		}
		m.log.Warn().Str("asset", assetPath).Strs("errors", rep.Errors).Msg("texture settings rejected")
		return rep, nil
	}

	s, applied := Effective(p)
	if applied == nil {
		applied = []string{}
	}
	e := Entry{Asset: assetPath, Settings: s, Applied: applied, Save: p.Save}

	m.mu.Lock()
	if _, ok := m.entries[assetPath]; !ok {
		m.order = append(m.order, assetPath)
	}
	m.entries[assetPath] = e
	m.mu.Unlock()

	if !p.Silent {
		m.log.Info().Str("asset", assetPath).Strs("applied", applied).Bool("save", p.Save).Msg("texture settings applied")
	}
	return Report{OK: true, Applied: append([]string(nil), applied...), Errors: []string{}}, nil
}

// Entries returns the recorded entries in first-applied order.
func (m *Manifest) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, m.entries[k])
	}
	return out
}

// Lookup returns the entry recorded for assetPath.
func (m *Manifest) Lookup(assetPath string) (Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[assetPath]
	return e, ok
}

// Encode renders the saved entries keyed by asset path.
func (m *Manifest) Encode(f texnaming.DocumentFormat) ([]byte, error) {
	root := eng.NewObject()
	for _, e := range m.Entries() {
		if !e.Save {
			continue
		}
		root.Set(e.Asset, entryObject(e))
	}
	return eng.Encode(root, f)
}

// Flush writes the saved entries to path. The format follows the extension.
func (m *Manifest) Flush(path string) error {
	data, err := m.Encode(eng.FormatFromPath(path))
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest %q: %w", path, err)
	}
	m.log.Debug().Str("path", path).Msg("manifest flushed")
	return nil
}

func entryObject(e Entry) *eng.Object {
	obj := eng.NewObject()
	s := e.Settings
	if s.AddressX != nil {
		obj.Set("address_x", s.AddressX.String())
		obj.Set("address_y", s.AddressY.String())
	}
	if s.AddressZ != nil {
		obj.Set("address_z", s.AddressZ.String())
	}
	if s.MaxTextureSize != nil {
		obj.Set("max_texture_size", *s.MaxTextureSize)
	}
	if s.Compression != nil {
		obj.Set("compression", s.Compression.String())
	}
	if s.SRGB != nil {
		obj.Set("srgb", *s.SRGB)
	}
	obj.Set("texture_group", s.TextureGroup.String())
	obj.Set("mip_gen", s.MipGen.String())
	obj.Set("applied", append([]string{}, e.Applied...))
	return obj
}
