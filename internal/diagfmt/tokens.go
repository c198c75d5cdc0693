package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"dcfilter/internal/source"
	"dcfilter/internal/token"
)

type TokenOutput struct {
	Kind    string      `json:"kind" msgpack:"kind"`
	Text    string      `json:"text,omitempty" msgpack:"text,omitempty"`
	Span    source.Span `json:"span" msgpack:"span"`
	Line    uint32      `json:"line" msgpack:"line"`
	Col     uint32      `json:"col" msgpack:"col"`
	Channel string      `json:"channel,omitempty" msgpack:"channel,omitempty"`
}

func buildTokenOutput(tokens []token.Token, fs *source.FileSet) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		start, _ := fs.Resolve(tok.Span)
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
			Line: start.Line,
			Col:  start.Col,
		}
		if tok.Kind.Channel() == token.ChannelHidden {
			out.Channel = "hidden"
		}
		output = append(output, out)

		if tok.Kind == token.EOF {
			break
		}
	}
	return output
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		if _, err := fmt.Fprintf(w, "%3d: %-18s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
		if tok.Kind.Channel() == token.ChannelHidden {
			fmt.Fprint(w, " (hidden)")
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildTokenOutput(tokens, fs))
}

// FormatTokensMsgpack пишет токены одним msgpack-массивом.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	return enc.Encode(buildTokenOutput(tokens, fs))
}

// DecodeTokensMsgpack читает то, что записал FormatTokensMsgpack.
func DecodeTokensMsgpack(r io.Reader) ([]TokenOutput, error) {
	var out []TokenOutput
	if err := msgpack.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode msgpack tokens: %w", err)
	}
	return out, nil
}
