// Package importer runs the naming pipeline over a batch of texture paths:
// directory allow-list, suffix extraction, grid validation, parameter
// resolution and application.
package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/reoring/texnaming"
	"github.com/reoring/texnaming/apply"
	"github.com/reoring/texnaming/pathrule"
)

// Stage names the pipeline step an asset stopped at.
type Stage string

const (
	StageDirectory Stage = "directory"
	StageValidate  Stage = "validate"
	StageApply     Stage = "apply"
	StageDone      Stage = "done"
)

// ErrDirectoryNotAllowed is recorded for assets outside the run directories.
var ErrDirectoryNotAllowed = errors.New("importer: directory not allowed")

// Result is the outcome of one asset.
type Result struct {
	Path       string
	Stage      Stage
	Suffixes   []string
	Validation texnaming.ValidationResult
	Params     *texnaming.TextureConfigParams
	Report     *apply.Report
	Err        error
}

// OK reports whether the asset passed every stage and was applied cleanly.
func (r Result) OK() bool {
	return r.Stage == StageDone && r.Err == nil && r.Report != nil && r.Report.OK
}

// Importer holds a loaded configuration snapshot and the configurator it
// feeds.
type Importer struct {
	cfg    *texnaming.Config
	grid   texnaming.Grid
	known  []string
	target apply.Configurator
	log    zerolog.Logger
	dryRun bool
}

// Option configures an Importer.
type Option func(*Importer)

// WithLogger sets the logger for per-asset progress.
func WithLogger(l zerolog.Logger) Option {
	return func(im *Importer) { im.log = l }
}

// WithDryRun stops each asset after resolution without calling the
// configurator.
func WithDryRun(v bool) Option {
	return func(im *Importer) { im.dryRun = v }
}

// New returns an importer for cfg. The suffix grid is built once.
func New(cfg *texnaming.Config, target apply.Configurator, opts ...Option) (*Importer, error) {
	if cfg == nil || cfg.Suffix == nil {
		return nil, fmt.Errorf("%w: config with suffix rules is required", texnaming.ErrInvalidArgument)
	}
	if target == nil {
		return nil, fmt.Errorf("%w: configurator is required", texnaming.ErrInvalidArgument)
	}
	grid := cfg.Grid()
	im := &Importer{
		cfg:    cfg,
		grid:   grid,
		known:  grid.Tokens(),
		target: target,
		log:    zerolog.Nop(),
	}
	for _, fn := range opts {
		fn(im)
	}
	return im, nil
}

// Grid returns the suffix grid the importer validates against.
func (im *Importer) Grid() texnaming.Grid { return im.grid }

// Run processes paths in order. A failing asset is recorded and the batch
// continues; cancellation stops the batch between assets and returns the
// results gathered so far together with the context error.
func (im *Importer) Run(ctx context.Context, paths []string) ([]Result, error) {
	out := make([]Result, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		out = append(out, im.Process(ctx, p))
	}
	return out, nil
}

// Process runs the pipeline for a single asset path.
func (im *Importer) Process(ctx context.Context, path string) Result {
	log := im.log.With().Str("asset", path).Logger()
	res := Result{Path: path}

	if len(im.cfg.RunDirs) > 0 && !pathrule.IsPathAllowed(path, im.cfg.RunDirs) {
		res.Stage = StageDirectory
		res.Err = fmt.Errorf("%w: %s", ErrDirectoryNotAllowed, path)
		log.Debug().Msg("skipped: outside run directories")
		return res
	}

	res.Suffixes = pathrule.CollectSuffixes(path, im.known)
	res.Validation = texnaming.Validate(res.Suffixes, im.grid)
	if !res.Validation.OK {
		res.Stage = StageValidate
		if it, ok := res.Validation.Issue(); ok {
			res.Err = it
		}
		log.Warn().Strs("suffixes", res.Suffixes).Msg(res.Validation.Error)
		return res
	}

	params := texnaming.BuildFinalParams(res.Suffixes, im.cfg.Textures, im.cfg.Suffix)
	res.Params = &params
	if im.dryRun {
		res.Stage = StageDone
		res.Report = &apply.Report{OK: true, Applied: []string{}, Errors: []string{}}
		log.Info().Strs("suffixes", res.Suffixes).Msg("resolved (dry run)")
		return res
	}

	rep, err := im.target.Apply(ctx, path, params)
	if err != nil {
		res.Stage = StageApply
		res.Err = err
		log.Error().Err(err).Msg("apply failed")
		return res
	}
	res.Report = &rep
	res.Stage = StageDone
	if !rep.OK {
		log.Warn().Strs("errors", rep.Errors).Msg("applied with errors")
	}
	return res
}

// Summary counts outcomes of a batch.
type Summary struct {
	Total   int
	Applied int
	Failed  int
}

// Summarize counts results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.OK() {
			s.Applied++
		} else {
			s.Failed++
		}
	}
	return s
}
