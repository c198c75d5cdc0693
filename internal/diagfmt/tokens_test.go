package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"dcfilter/internal/lexer"
	"dcfilter/internal/source"
	"dcfilter/internal/token"
)

func lexTokens(t *testing.T, input string) (*source.FileSet, []token.Token) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.dcf", []byte(input))
	tokens, err := lexer.Tokenize(fs.Get(id), lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return fs, tokens
}

func TestFormatTokensPretty(t *testing.T) {
	fs, tokens := lexTokens(t, "[A] >= 1")

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "  1: COLUMN") || !strings.Contains(lines[0], `"[A]" at 1:1-1:4`) {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "(hidden)") {
		t.Errorf("whitespace should be marked hidden: %q", lines[1])
	}
	if !strings.Contains(lines[5], "EOF") {
		t.Errorf("last line should be EOF: %q", lines[5])
	}
}

func TestFormatTokensJSON(t *testing.T) {
	fs, tokens := lexTokens(t, "a\n&& b")

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out) != len(tokens) {
		t.Fatalf("got %d tokens, want %d", len(out), len(tokens))
	}
	and := out[2]
	if and.Kind != "GROUP_OPERATOR_AND" || and.Line != 2 || and.Col != 1 {
		t.Errorf("unexpected && entry %+v", and)
	}
}

func TestFormatTokensMsgpack(t *testing.T) {
	fs, tokens := lexTokens(t, `[Region] == "US"`)

	var buf bytes.Buffer
	if err := FormatTokensMsgpack(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	out, err := DecodeTokensMsgpack(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(tokens) {
		t.Fatalf("got %d tokens, want %d", len(out), len(tokens))
	}
	for i, tok := range tokens {
		if out[i].Kind != tok.Kind.String() || out[i].Text != tok.Text || out[i].Span != tok.Span {
			t.Errorf("token %d: got %+v, want %v %q %v", i, out[i], tok.Kind, tok.Text, tok.Span)
		}
	}
}
