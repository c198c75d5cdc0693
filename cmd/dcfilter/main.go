package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dcfilter/internal/version"
)

// errLexical означает, что диагностики уже напечатаны и нужен только код выхода 1.
var errLexical = errors.New("lexical errors")

var rootCmd = &cobra.Command{
	Use:               "dcfilter",
	Short:             "Tokenizer for DataCube filter expressions",
	Long:              `dcfilter splits DataCube filter expressions into tokens and reports lexical errors`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepareRun,
}

func prepareRun(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	traceCleanup = cleanup
	cmd.SetContext(withSettings(cmd.Context(), s))
	return nil
}

// traceCleanup закрывает трассировщик; PersistentPostRun не вызывается при ошибке RunE.
var traceCleanup = func() {}

// main регистрирует команды и глобальные флаги и запускает корневую команду.
// Любая ошибка завершает процесс с кодом 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Colored()
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(versionCmd)
	addGlobalFlags(rootCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	traceCleanup()
	stop()
	if err != nil {
		if !errors.Is(err, errLexical) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// addGlobalFlags регистрирует глобальные флаги
func addGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	flags.String("config", "", "path to dcfilter.toml (default: search upwards from the working directory)")
	flags.String("trace", "", "write trace events to a file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}
