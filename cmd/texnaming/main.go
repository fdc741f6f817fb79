package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/reoring/texnaming"
	"github.com/reoring/texnaming/apply"
	"github.com/reoring/texnaming/i18n"
	"github.com/reoring/texnaming/importer"
	"github.com/reoring/texnaming/internal/logging"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return exitUsage
	}
	switch args[0] {
	case "validate":
		return validateCmd(ctx, args[1:], stdout, stderr)
	case "apply":
		return applyCmd(ctx, args[1:], stdout, stderr)
	case "grid":
		return gridCmd(args[1:], stdout, stderr)
	case "fmt":
		return fmtCmd(args[1:], stdout, stderr)
	default:
		usage(stderr)
		return exitUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "texnaming CLI\n\nUsage:\n  texnaming validate [flags] PATH...\n  texnaming apply [flags] -manifest out.json PATH...\n  texnaming grid [flags]\n  texnaming fmt [flags] [-o out.yaml]\n\nConfiguration:\n  -config project.json            unified file (run_dir, suffix rules, texture_config)\n  -textures t.json -suffix s.json separate files\n\nDirectories given as PATH are walked for files.")
}

// common holds the flags shared by every subcommand.
type common struct {
	config    string
	textures  string
	suffix    string
	runDirs   string
	logLevel  string
	logFormat string
	lang      string
	allowDups bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.config, "config", "", "unified config file (JSON or YAML)")
	fs.StringVar(&c.textures, "textures", "", "texture parameter file (used with -suffix)")
	fs.StringVar(&c.suffix, "suffix", "", "suffix rule file (used with -textures)")
	fs.StringVar(&c.runDirs, "run-dir", "", "comma-separated directory allow-list (overrides run_dir)")
	fs.StringVar(&c.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&c.logFormat, "log-format", "text", "log format: json or text")
	fs.StringVar(&c.lang, "lang", "en", "message language: en or ja")
	fs.BoolVar(&c.allowDups, "allow-duplicate-keys", false, "keep the last value of repeated keys instead of failing")
}

func (c *common) logger(stderr io.Writer) (zerolog.Logger, error) {
	return logging.Setup(logging.Config{Level: c.logLevel, Format: c.logFormat, Output: stderr})
}

func (c *common) load(log zerolog.Logger) (*texnaming.Config, error) {
	opt := &texnaming.LoadOptions{AllowDuplicateKeys: c.allowDups, Logger: &log}
	var cfg *texnaming.Config
	switch {
	case c.config != "" && (c.textures != "" || c.suffix != ""):
		return nil, fmt.Errorf("%w: -config cannot be combined with -textures/-suffix", texnaming.ErrInvalidArgument)
	case c.config != "":
		loaded, err := texnaming.LoadConfig(c.config, opt)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case c.textures != "" && c.suffix != "":
		rules, err := texnaming.LoadSuffixConfig(c.suffix, opt)
		if err != nil {
			return nil, err
		}
		params, err := texnaming.LoadParamsMap(c.textures, opt)
		if err != nil {
			return nil, err
		}
		cfg = &texnaming.Config{Suffix: rules, Textures: params}
	default:
		return nil, fmt.Errorf("%w: either -config or both -textures and -suffix are required", texnaming.ErrInvalidArgument)
	}
	if c.runDirs != "" {
		cfg.RunDirs = splitCSV(c.runDirs)
	}
	return cfg, nil
}

func (c *common) setup(fs *flag.FlagSet, args []string, stderr io.Writer) (zerolog.Logger, *texnaming.Config, int) {
	if err := fs.Parse(args); err != nil {
		return zerolog.Nop(), nil, exitUsage
	}
	i18n.SetLanguage(c.lang)
	log, err := c.logger(stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return zerolog.Nop(), nil, exitUsage
	}
	cfg, err := c.load(log)
	if err != nil {
		log.Error().Err(err).Msg("load configuration")
		if iss, ok := texnaming.AsIssues(err); ok {
			for _, it := range iss {
				fmt.Fprintf(stderr, "%s %s: %s\n", i18n.T(it.Code, nil), it.Path, it.Message)
			}
		}
		if errors.Is(err, texnaming.ErrInvalidArgument) {
			return log, nil, exitUsage
		}
		return log, nil, exitFail
	}
	return log, cfg, exitOK
}

func validateCmd(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c common
	c.register(fs)
	log, cfg, code := c.setup(fs, args, stderr)
	if code != exitOK {
		return code
	}
	paths, err := expandPaths(fs.Args())
	if err != nil {
		log.Error().Err(err).Msg("collect paths")
		return exitFail
	}
	if len(paths) == 0 {
		fmt.Fprintln(stderr, "no paths given")
		return exitUsage
	}

	im, err := importer.New(cfg, apply.NewManifest(), importer.WithLogger(log), importer.WithDryRun(true))
	if err != nil {
		log.Error().Err(err).Msg("prepare importer")
		return exitFail
	}
	results, err := im.Run(ctx, paths)
	report(stdout, im.Grid(), results)
	if err != nil {
		log.Error().Err(err).Msg("interrupted")
		return exitFail
	}
	if s := importer.Summarize(results); s.Failed > 0 {
		return exitFail
	}
	return exitOK
}

func applyCmd(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c common
	c.register(fs)
	var manifestPath string
	fs.StringVar(&manifestPath, "manifest", "", "manifest output file (.json, .yaml or .yml)")
	log, cfg, code := c.setup(fs, args, stderr)
	if code != exitOK {
		return code
	}
	if manifestPath == "" {
		fmt.Fprintln(stderr, "-manifest is required")
		return exitUsage
	}
	paths, err := expandPaths(fs.Args())
	if err != nil {
		log.Error().Err(err).Msg("collect paths")
		return exitFail
	}
	if len(paths) == 0 {
		fmt.Fprintln(stderr, "no paths given")
		return exitUsage
	}

	m := apply.NewManifest(apply.WithLogger(log))
	im, err := importer.New(cfg, m, importer.WithLogger(log))
	if err != nil {
		log.Error().Err(err).Msg("prepare importer")
		return exitFail
	}
	results, runErr := im.Run(ctx, paths)
	report(stdout, im.Grid(), results)
	if err := m.Flush(manifestPath); err != nil {
		log.Error().Err(err).Msg("write manifest")
		return exitFail
	}
	if runErr != nil {
		log.Error().Err(runErr).Msg("interrupted")
		return exitFail
	}
	if s := importer.Summarize(results); s.Failed > 0 {
		return exitFail
	}
	return exitOK
}

func gridCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("grid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c common
	c.register(fs)
	log, cfg, code := c.setup(fs, args, stderr)
	if code != exitOK {
		return code
	}
	rows := make([]map[string]any, 0, cfg.Grid().Rows())
	index := cfg.Suffix.SuffixIndex()
	for i, row := range cfg.Grid() {
		rows = append(rows, map[string]any{"row": i, "category": index[i], "tokens": row})
	}
	b, err := j.MarshalIndent(rows, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("encode grid")
		return exitFail
	}
	fmt.Fprintln(stdout, string(b))
	return exitOK
}

func fmtCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c common
	c.register(fs)
	var out, format string
	fs.StringVar(&out, "o", "", "output file (default stdout)")
	fs.StringVar(&format, "format", "", "output format: json or yaml (default from -o extension, else json)")
	log, cfg, code := c.setup(fs, args, stderr)
	if code != exitOK {
		return code
	}

	f := texnaming.FormatJSON
	switch strings.ToLower(format) {
	case "":
		if out != "" && (strings.HasSuffix(out, ".yaml") || strings.HasSuffix(out, ".yml")) {
			f = texnaming.FormatYAML
		}
	case "json":
	case "yaml", "yml":
		f = texnaming.FormatYAML
	default:
		fmt.Fprintf(stderr, "unknown format %q\n", format)
		return exitUsage
	}

	if out != "" {
		if err := cfg.Save(out, &texnaming.SaveOptions{Minimal: true, Format: &f}); err != nil {
			log.Error().Err(err).Msg("write config")
			return exitFail
		}
		return exitOK
	}
	b, err := cfg.Encode(f)
	if err != nil {
		log.Error().Err(err).Msg("encode config")
		return exitFail
	}
	_, _ = stdout.Write(b)
	return exitOK
}

// report prints one line per asset followed by a summary.
func report(w io.Writer, grid texnaming.Grid, results []importer.Result) {
	for _, r := range results {
		if r.OK() {
			fmt.Fprintf(w, "OK   %s [%s]\n", r.Path, strings.Join(r.Suffixes, ", "))
			continue
		}
		fmt.Fprintf(w, "FAIL %s: %s\n", r.Path, failureMessage(grid, r))
	}
	s := importer.Summarize(results)
	fmt.Fprintln(w, i18n.T("summary", map[string]string{
		"total":   strconv.Itoa(s.Total),
		"applied": strconv.Itoa(s.Applied),
		"failed":  strconv.Itoa(s.Failed),
	}))
}

func failureMessage(grid texnaming.Grid, r importer.Result) string {
	switch r.Stage {
	case importer.StageDirectory:
		return i18n.T("dir_not_allowed", nil)
	case importer.StageValidate:
		v := r.Validation
		if v.FailedRowIndex == nil {
			return i18n.T(texnaming.CodeLengthMismatch, map[string]string{
				"expected": strconv.Itoa(grid.Rows()),
				"actual":   strconv.Itoa(len(v.SuffixList)),
			})
		}
		row := *v.FailedRowIndex
		return i18n.T(texnaming.CodeSuffixMismatch, map[string]string{
			"row":   strconv.Itoa(row),
			"token": v.SuffixList[row],
		})
	case importer.StageApply:
		return fmt.Sprintf("%s: %v", i18n.T("apply_failed", nil), r.Err)
	default:
		if r.Report != nil && len(r.Report.Errors) > 0 {
			return fmt.Sprintf("%s: %s", i18n.T("apply_failed", nil), strings.Join(r.Report.Errors, "; "))
		}
		return i18n.T("apply_failed", nil)
	}
}

// expandPaths walks directory arguments for regular files; other arguments
// are taken as asset paths verbatim.
func expandPaths(args []string) ([]string, error) {
	var out []string
	for _, a := range args {
		info, err := os.Stat(a)
		if err != nil || !info.IsDir() {
			out = append(out, a)
			continue
		}
		err = filepath.WalkDir(a, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() {
				out = append(out, filepath.ToSlash(p))
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", a, err)
		}
	}
	return out, nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
