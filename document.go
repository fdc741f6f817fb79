package texnaming

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	eng "github.com/reoring/texnaming/internal/engine"
)

// LoadOptions controls how configuration files are read.
type LoadOptions struct {
	// AllowDuplicateKeys keeps the last value of a repeated object key instead
	// of failing the load. Duplicates are still logged as warnings.
	AllowDuplicateKeys bool
	// MaxBytes rejects larger files. Zero means unlimited.
	MaxBytes int64
	// Logger receives duplicate-key warnings. The zero value discards them.
	Logger *zerolog.Logger
}

func (o *LoadOptions) normalize() LoadOptions {
	if o == nil {
		return LoadOptions{}
	}
	return *o
}

func (o LoadOptions) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

// SaveOptions controls how configuration files are written.
type SaveOptions struct {
	// Minimal omits absent optional fields instead of writing null.
	Minimal bool
	// Format overrides detection from the file extension.
	Format *DocumentFormat
}

func (o *SaveOptions) normalize() SaveOptions {
	if o == nil {
		return SaveOptions{Minimal: true}
	}
	return *o
}

func (o SaveOptions) format(path string) eng.Format {
	if o.Format != nil {
		return *o.Format
	}
	return eng.FormatFromPath(path)
}

// decodeDocument decodes data into the ordered tree and applies the duplicate
// key policy.
func decodeDocument(data []byte, f eng.Format, opt LoadOptions) (any, error) {
	v, dups, err := eng.Decode(data, f, eng.Options{MaxBytes: opt.MaxBytes})
	if err != nil {
		return nil, fromEngineError(err)
	}
	if len(dups) > 0 {
		if !opt.AllowDuplicateKeys {
			return nil, fromEngineIssues(dups)
		}
		log := opt.logger()
		for _, d := range dups {
			log.Warn().Str("path", d.Path).Str("code", d.Code).Msg(d.Message)
		}
	}
	return v, nil
}

func readDocument(path string, opt LoadOptions) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeDocument(data, eng.FormatFromPath(path), opt)
}

func writeDocument(path string, v any, f eng.Format) error {
	data, err := eng.Encode(v, f)
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func fromEngineError(err error) error {
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return Issues{{Path: ie.Path, Code: ie.Code, Message: ie.Message, Cause: err}}
	}
	return Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
}

func fromEngineIssues(si []eng.SimpleIssue) Issues {
	var iss Issues
	for _, s := range si {
		iss = AppendIssues(iss, Issue{Code: s.Code, Path: s.Path, Message: s.Message})
	}
	return iss
}

// DocumentFormat re-exports the on-disk syntax selector for SaveOptions.
type DocumentFormat = eng.Format

const (
	FormatJSON = eng.FormatJSON
	FormatYAML = eng.FormatYAML
)
