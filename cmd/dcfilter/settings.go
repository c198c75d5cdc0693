package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dcfilter/internal/diagfmt"
	"dcfilter/internal/project"
)

// settings: итоговые настройки запуска: dcfilter.toml, поверх него явные флаги.
type settings struct {
	cfg        project.Config
	configPath string
	colorMode  string
	maxDiags   int
	quiet      bool
	timings    bool
}

type settingsKey struct{}

func withSettings(ctx context.Context, s *settings) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, settingsKey{}, s)
}

func settingsFrom(ctx context.Context) *settings {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(settingsKey{}).(*settings)
	return s
}

// mustSettings достаёт настройки команды; без PersistentPreRunE берутся значения по умолчанию.
func mustSettings(cmd *cobra.Command) *settings {
	if s := settingsFrom(cmd.Context()); s != nil {
		return s
	}
	return &settings{cfg: project.Defaults(), colorMode: "auto", maxDiags: 100}
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()
	s := &settings{cfg: project.Defaults()}

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if configPath != "" {
		cfg, loadErr := project.LoadConfig(configPath)
		if loadErr != nil {
			return nil, loadErr
		}
		s.cfg, s.configPath = cfg, configPath
	} else {
		manifest, ok, findErr := project.LoadManifest(".")
		if findErr != nil {
			return nil, findErr
		}
		if ok {
			s.cfg, s.configPath = manifest.Config, manifest.Path
		}
	}

	s.colorMode = s.cfg.Output.Color
	if flags.Changed("color") {
		if s.colorMode, err = flags.GetString("color"); err != nil {
			return nil, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	s.colorMode = strings.ToLower(strings.TrimSpace(s.colorMode))
	switch s.colorMode {
	case "auto", "on", "off":
	default:
		return nil, fmt.Errorf("invalid --color value %q (expected auto|on|off)", s.colorMode)
	}
	// fatih/color сам решает только для stdout; явный режим переопределяет
	switch s.colorMode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	}

	s.maxDiags = s.cfg.Output.MaxDiagnostics
	if flags.Changed("max-diagnostics") {
		if s.maxDiags, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
		if s.maxDiags < 1 {
			return nil, fmt.Errorf("--max-diagnostics must be positive, got %d", s.maxDiags)
		}
	}

	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	return s, nil
}

// useColor решает, красить ли вывод в f.
func (s *settings) useColor(f *os.File) bool {
	switch s.colorMode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

func (s *settings) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:       s.useColor(os.Stderr),
		Context:     1,
		PathMode:    diagfmt.PathModeAuto,
		ShowNotes:   true,
		ShowFixes:   !s.quiet,
		ShowPreview: !s.quiet,
	}
}

func (s *settings) jsonOpts() diagfmt.JSONOpts {
	return diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         diagfmt.PathModeAuto,
		Max:              s.maxDiags,
		IncludeNotes:     true,
		IncludeFixes:     true,
		IncludePreviews:  !s.quiet,
	}
}

// pickString возвращает значение флага, если он задан явно, иначе значение из конфига.
func pickString(cmd *cobra.Command, name, fromConfig string) (string, error) {
	if !cmd.Flags().Changed(name) {
		return fromConfig, nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	return v, nil
}

func pickBool(cmd *cobra.Command, name string, fromConfig bool) (bool, error) {
	if !cmd.Flags().Changed(name) {
		return fromConfig, nil
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false, fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	return v, nil
}

func pickInt(cmd *cobra.Command, name string, fromConfig int) (int, error) {
	if !cmd.Flags().Changed(name) {
		return fromConfig, nil
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0, fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	return v, nil
}
