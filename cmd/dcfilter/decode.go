package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dcfilter/internal/lexer"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] <lexeme>",
	Short: "Decode a raw STRING or COLUMN lexeme",
	Long: `Decode strips the delimiters of a "string" or [column] lexeme and
expands its escape sequences. The kind is taken from the first character
unless --kind is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	addDecodeFlags(decodeCmd)
}

func addDecodeFlags(cmd *cobra.Command) {
	cmd.Flags().String("kind", "auto", "lexeme kind (auto|string|column)")
}

func runDecode(cmd *cobra.Command, args []string) error {
	kind, err := cmd.Flags().GetString("kind")
	if err != nil {
		return fmt.Errorf("failed to get kind flag: %w", err)
	}
	lexeme := args[0]
	kind = strings.ToLower(kind)
	if kind == "auto" {
		switch {
		case strings.HasPrefix(lexeme, `"`):
			kind = "string"
		case strings.HasPrefix(lexeme, "["):
			kind = "column"
		default:
			return fmt.Errorf("cannot tell the kind of %q: expected a leading '\"' or '['", lexeme)
		}
	}

	var value string
	switch kind {
	case "string":
		value, err = lexer.DecodeString(lexeme)
	case "column":
		value, err = lexer.DecodeColumn(lexeme)
	default:
		return fmt.Errorf("invalid --kind value %q (expected auto|string|column)", kind)
	}
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", lexErr.Code().ID(), lexErr)
			return errLexical
		}
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
