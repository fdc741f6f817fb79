package texnaming

import (
	"fmt"
	"strconv"

	eng "github.com/reoring/texnaming/internal/engine"
)

const (
	keyRunDir        = "run_dir"
	keyTextureConfig = "texture_config"
)

// Config is the unified project file: the directories to process, the suffix
// rules at the document root, and the per-token texture parameters.
type Config struct {
	RunDirs  []string
	Suffix   *SuffixConfig
	Textures ParamsMap
}

// DecodeConfig decodes a unified configuration document.
func DecodeConfig(data []byte, f DocumentFormat, opt *LoadOptions) (*Config, error) {
	v, err := decodeDocument(data, f, opt.normalize())
	if err != nil {
		return nil, err
	}
	return configFromValue(v)
}

// LoadConfig reads a unified configuration from a JSON or YAML file.
func LoadConfig(path string, opt *LoadOptions) (*Config, error) {
	v, err := readDocument(path, opt.normalize())
	if err == nil {
		var c *Config
		if c, err = configFromValue(v); err == nil {
			return c, nil
		}
	}
	return nil, fmt.Errorf("failed to load config from %q: %w", path, err)
}

func configFromValue(v any) (*Config, error) {
	root, ok := v.(*eng.Object)
	if !ok {
		return nil, Issues{issueAt("/", CodeInvalidType, "root must be an object, got %s", describe(v))}
	}
	var iss Issues
	c := &Config{}

	if raw, ok := root.Get(keyRunDir); ok && raw != nil {
		list, isList := raw.([]any)
		if !isList {
			iss = AppendIssues(iss, issueAt("/"+keyRunDir, CodeInvalidType, "'%s' must be a list of strings, got %s", keyRunDir, describe(raw)))
		}
		for i, e := range list {
			s, isStr := e.(string)
			if !isStr {
				iss = AppendIssues(iss, issueAt("/"+keyRunDir+"/"+strconv.Itoa(i), CodeInvalidType, "'%s' must be a list of strings, got %s", keyRunDir, describe(e)))
				continue
			}
			c.RunDirs = append(c.RunDirs, s)
		}
	}

	suffix, err := suffixConfigFromObject(root)
	if err != nil {
		more, ok := AsIssues(err)
		if !ok {
			return nil, err
		}
		iss = AppendIssues(iss, more...)
	}
	c.Suffix = suffix

	raw, ok := root.Get(keyTextureConfig)
	if !ok || raw == nil {
		iss = AppendIssues(iss, issueAt("/"+keyTextureConfig, CodeRequired, "'%s' must be an object", keyTextureConfig))
	} else {
		m, err := paramsMapFromValue(raw, "/"+keyTextureConfig)
		if err != nil {
			more, ok := AsIssues(err)
			if !ok {
				return nil, err
			}
			iss = AppendIssues(iss, more...)
		}
		c.Textures = m
	}

	if len(iss) > 0 {
		return nil, iss
	}
	return c, nil
}

func (c *Config) toObject(minimal bool) (*eng.Object, error) {
	if c.Suffix == nil {
		return nil, fmt.Errorf("%w: config has no suffix rules", ErrInvalidArgument)
	}
	out := eng.NewObject()
	out.Set(keyRunDir, append([]string{}, c.RunDirs...))
	rules := c.Suffix.toObject()
	for _, k := range rules.Keys() {
		v, _ := rules.Get(k)
		out.Set(k, v)
	}
	textures, err := paramsMapToObject(c.Textures, minimal)
	if err != nil {
		return nil, err
	}
	out.Set(keyTextureConfig, textures)
	return out, nil
}

// Encode renders c in the given format with minimal texture records.
func (c *Config) Encode(f DocumentFormat) ([]byte, error) {
	obj, err := c.toObject(true)
	if err != nil {
		return nil, err
	}
	return eng.Encode(obj, f)
}

// Save writes c to path in the same shape LoadConfig reads. opt.Minimal
// applies to the texture records.
func (c *Config) Save(path string, opt *SaveOptions) error {
	o := opt.normalize()
	obj, err := c.toObject(o.Minimal)
	if err == nil {
		err = writeDocument(path, obj, o.format(path))
	}
	if err != nil {
		return fmt.Errorf("save config to %q: %w", path, err)
	}
	return nil
}

// Grid builds the suffix grid of the embedded rules.
func (c *Config) Grid() Grid { return BuildGrid(c.Suffix) }
