package testkit

import (
	"strings"
	"testing"

	"dcfilter/internal/source"
	"dcfilter/internal/token"
)

func newFile(t *testing.T, src string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("t.dcf", []byte(src)))
}

func tok(sf *source.File, kind token.Kind, start, end uint32) token.Token {
	sp := source.Span{File: sf.ID, Start: start, End: end}
	return token.Token{Kind: kind, Span: sp, Text: string(sf.Content[start:end])}
}

func TestCheckTokenInvariantsAccepts(t *testing.T) {
	sf := newFile(t, "a < 1")
	tokens := []token.Token{
		tok(sf, token.Ident, 0, 1),
		tok(sf, token.Whitespace, 1, 2),
		tok(sf, token.Operator, 2, 3),
		tok(sf, token.Whitespace, 3, 4),
		tok(sf, token.Number, 4, 5),
		tok(sf, token.EOF, 5, 5),
	}
	if err := CheckTokenInvariants(tokens, sf); err != nil {
		t.Fatal(err)
	}
	if got := Concat(tokens); got != "a < 1" {
		t.Errorf("Concat = %q", got)
	}
}

func TestCheckTokenInvariantsRejects(t *testing.T) {
	sf := newFile(t, "ab")
	tests := []struct {
		name   string
		tokens []token.Token
		want   string
	}{
		{"empty", nil, "empty token stream"},
		{"no eof", []token.Token{tok(sf, token.Ident, 0, 2)}, "want EOF"},
		{"gap", []token.Token{tok(sf, token.Ident, 1, 2), tok(sf, token.EOF, 2, 2)}, "starts at 1"},
		{"short", []token.Token{tok(sf, token.Ident, 0, 1), tok(sf, token.EOF, 1, 1)}, "cover 1 bytes of 2"},
		{"empty span", []token.Token{tok(sf, token.Ident, 0, 0), tok(sf, token.EOF, 0, 0)}, "empty span"},
		{"double eof", []token.Token{tok(sf, token.Ident, 0, 2), tok(sf, token.EOF, 2, 2), tok(sf, token.EOF, 2, 2)}, "EOF before end"},
		{"text", []token.Token{
			{Kind: token.Ident, Span: source.Span{File: sf.ID, Start: 0, End: 2}, Text: "xy"},
			tok(sf, token.EOF, 2, 2),
		}, "does not match"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTokenInvariants(tt.tokens, sf)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got %v, want error containing %q", err, tt.want)
			}
		})
	}
}
