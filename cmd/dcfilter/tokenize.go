package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"dcfilter/internal/diagfmt"
	"dcfilter/internal/driver"
	"dcfilter/internal/observ"
	"dcfilter/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file|-]",
	Short: "Tokenize a filter expression",
	Long: `Tokenize splits a filter expression into tokens.
The expression is read from a file, from stdin ("-" or no argument), or from --expr.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	addTokenizeFlags(tokenizeCmd)
}

func addTokenizeFlags(cmd *cobra.Command) {
	cmd.Flags().String("expr", "", "tokenize this expression instead of a file")
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	cmd.Flags().Bool("resilient", false, "keep going after lexical errors, marking bad fragments as INVALID")
	cmd.Flags().Bool("significant", false, "hide WHITESPACE tokens")
	cmd.Flags().Bool("nfc", false, "normalize input to Unicode NFC before tokenizing")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	s := mustSettings(cmd)
	tc := s.cfg.Tokenize

	format, err := pickString(cmd, "format", tc.Format)
	if err != nil {
		return err
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s (expected pretty|json|msgpack)", format)
	}
	resilient, err := pickBool(cmd, "resilient", tc.Resilient)
	if err != nil {
		return err
	}
	significant, err := pickBool(cmd, "significant", tc.Significant)
	if err != nil {
		return err
	}
	nfc, err := pickBool(cmd, "nfc", tc.NFC)
	if err != nil {
		return err
	}
	expr, err := cmd.Flags().GetString("expr")
	if err != nil {
		return fmt.Errorf("failed to get expr flag: %w", err)
	}
	if cmd.Flags().Changed("expr") && len(args) > 0 {
		return fmt.Errorf("--expr and a file argument are mutually exclusive")
	}

	opts := driver.Options{
		MaxDiagnostics: s.maxDiags,
		Resilient:      resilient,
		NormalizeNFC:   nfc,
	}
	if s.timings {
		opts.Timer = observ.NewTimer()
	}

	ctx := cmd.Context()
	var result *driver.TokenizeResult
	switch {
	case cmd.Flags().Changed("expr"):
		result, err = driver.TokenizeSource(ctx, "<expr>", []byte(expr), opts)
	case len(args) == 0 || args[0] == "-":
		src, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		result, err = driver.TokenizeSource(ctx, "<stdin>", src, opts)
	default:
		result, err = driver.Tokenize(ctx, args[0], opts)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, s.prettyOpts())
	}

	tokens := result.Tokens
	if significant {
		tokens = token.Significant(tokens)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		err = diagfmt.FormatTokensJSON(out, tokens, result.FileSet)
	case "msgpack":
		err = diagfmt.FormatTokensMsgpack(out, tokens, result.FileSet)
	default:
		err = diagfmt.FormatTokensPretty(out, tokens, result.FileSet)
	}
	if err != nil {
		return fmt.Errorf("failed to write tokens: %w", err)
	}

	if result.Err != nil {
		return errLexical
	}
	return nil
}
