package project

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config mirrors dcfilter.toml. Every field has a default, so an empty file is valid.
type Config struct {
	Output   OutputConfig   `toml:"output"`
	Tokenize TokenizeConfig `toml:"tokenize"`
	Check    CheckConfig    `toml:"check"`
}

type OutputConfig struct {
	Color          string `toml:"color"` // auto|on|off
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

type TokenizeConfig struct {
	Format      string `toml:"format"` // pretty|json|msgpack
	Resilient   bool   `toml:"resilient"`
	Significant bool   `toml:"significant"`
	NFC         bool   `toml:"nfc"`
}

type CheckConfig struct {
	Jobs   int    `toml:"jobs"`
	Ext    string `toml:"ext"`
	Format string `toml:"format"` // pretty|json|short
}

// Manifest is a loaded dcfilter.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

var (
	colorModes      = []string{"auto", "on", "off"}
	tokenFormats    = []string{"pretty", "json", "msgpack"}
	checkFormats    = []string{"pretty", "json", "short"}
	maxDiagnostics  = 65535
	defaultMaxDiags = 100
)

// Defaults returns the configuration used when no dcfilter.toml exists.
func Defaults() Config {
	return Config{
		Output:   OutputConfig{Color: "auto", MaxDiagnostics: defaultMaxDiags},
		Tokenize: TokenizeConfig{Format: "pretty"},
		Check:    CheckConfig{Ext: ".dcf", Format: "pretty"},
	}
}

// LoadConfig decodes path on top of Defaults and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadManifest finds dcfilter.toml above startDir and loads it.
// ok is false when there is no config file; that is not an error.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindConfig(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// Validate checks enumerations and ranges.
func (c Config) Validate() error {
	if !slices.Contains(colorModes, c.Output.Color) {
		return fmt.Errorf("[output].color must be one of %s, got %q", strings.Join(colorModes, "|"), c.Output.Color)
	}
	if c.Output.MaxDiagnostics < 1 || c.Output.MaxDiagnostics > maxDiagnostics {
		return fmt.Errorf("[output].max_diagnostics must be in 1..%d, got %d", maxDiagnostics, c.Output.MaxDiagnostics)
	}
	if !slices.Contains(tokenFormats, c.Tokenize.Format) {
		return fmt.Errorf("[tokenize].format must be one of %s, got %q", strings.Join(tokenFormats, "|"), c.Tokenize.Format)
	}
	if c.Check.Jobs < 0 {
		return fmt.Errorf("[check].jobs must not be negative, got %d", c.Check.Jobs)
	}
	if !strings.HasPrefix(c.Check.Ext, ".") || len(c.Check.Ext) < 2 {
		return fmt.Errorf("[check].ext must look like \".dcf\", got %q", c.Check.Ext)
	}
	if !slices.Contains(checkFormats, c.Check.Format) {
		return fmt.Errorf("[check].format must be one of %s, got %q", strings.Join(checkFormats, "|"), c.Check.Format)
	}
	return nil
}
