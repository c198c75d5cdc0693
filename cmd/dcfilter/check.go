package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dcfilter/internal/diag"
	"dcfilter/internal/diagfmt"
	"dcfilter/internal/driver"
	"dcfilter/internal/observ"
	"dcfilter/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <dir>",
	Short: "Tokenize every filter file under a directory",
	Long: `Check tokenizes all filter files under a directory in parallel and
reports lexical errors. The exit status is 1 when any file has errors.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	addCheckFlags(checkCmd)
}

func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().String("ext", driver.DefaultExt, "extension of filter files")
	mode := uiModeAuto
	cmd.Flags().Var(&mode, "ui", "progress UI (auto|on|off)")
	cmd.Flags().String("format", "pretty", "diagnostics format (pretty|json|short)")
	cmd.Flags().Bool("resilient", false, "report every error in a file, not only the first")
	cmd.Flags().Bool("nfc", false, "normalize input to Unicode NFC before tokenizing")
}

func runCheck(cmd *cobra.Command, args []string) error {
	s := mustSettings(cmd)
	dir := args[0]

	st, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !st.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	jobs, err := pickInt(cmd, "jobs", s.cfg.Check.Jobs)
	if err != nil {
		return err
	}
	if jobs < 0 {
		return fmt.Errorf("--jobs must not be negative, got %d", jobs)
	}
	ext, err := pickString(cmd, "ext", s.cfg.Check.Ext)
	if err != nil {
		return err
	}
	format, err := pickString(cmd, "format", s.cfg.Check.Format)
	if err != nil {
		return err
	}
	switch format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("unknown format: %s (expected pretty|json|short)", format)
	}
	resilient, err := pickBool(cmd, "resilient", s.cfg.Tokenize.Resilient)
	if err != nil {
		return err
	}
	nfc, err := pickBool(cmd, "nfc", s.cfg.Tokenize.NFC)
	if err != nil {
		return err
	}
	mode := uiModeAuto
	if flag := cmd.Flags().Lookup("ui"); flag != nil {
		if v, ok := flag.Value.(*uiMode); ok {
			mode = *v
		}
	}

	opts := driver.Options{
		MaxDiagnostics: s.maxDiags,
		Resilient:      resilient,
		NormalizeNFC:   nfc,
		Jobs:           jobs,
		Ext:            ext,
	}
	if s.timings {
		opts.Timer = observ.NewTimer()
	}

	var (
		fileSet *source.FileSet
		results []driver.TokenizeDirResult
	)
	if format == "pretty" && mode.wantsTUI(os.Stdout) {
		fileSet, results, err = runCheckWithUI(cmd.Context(), dir, opts)
	} else {
		fileSet, results, err = driver.TokenizeDir(cmd.Context(), dir, opts, nil)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	bag := diag.NewBag(s.maxDiags)
	failed, dropped := 0, 0
	for i := range results {
		if results[i].Err != nil {
			failed++
		}
		if results[i].Bag == nil {
			continue
		}
		for _, d := range results[i].Bag.Items() {
			if !bag.Add(d) {
				dropped++
			}
		}
	}
	bag.Sort()
	bag.Dedup()

	switch format {
	case "short":
		if short := diag.FormatShortDiagnostics(bag.Items(), fileSet, !s.quiet); short != "" {
			fmt.Fprintln(cmd.OutOrStdout(), short)
		}
	case "json":
		if err := diagfmt.JSON(cmd.OutOrStdout(), bag, fileSet, s.jsonOpts()); err != nil {
			return fmt.Errorf("failed to write diagnostics: %w", err)
		}
	default:
		diagfmt.Pretty(cmd.ErrOrStderr(), bag, fileSet, s.prettyOpts())
		if !s.quiet {
			if dropped > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d more %s not shown (limit %d)\n", dropped, plural(dropped, "diagnostic", "diagnostics"), bag.Cap())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "checked %d %s, %d with errors\n", len(results), plural(len(results), "file", "files"), failed)
		}
	}

	if s.timings {
		printFileTimings(cmd.ErrOrStderr(), results)
		fmt.Fprint(cmd.ErrOrStderr(), opts.Timer.Summary())
	}

	if failed > 0 {
		return errLexical
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
