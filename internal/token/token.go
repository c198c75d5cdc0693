package token

import (
	"dcfilter/internal/source"
)

// Token represents a single lexeme with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsSignificant reports whether a parser should see the token.
func (t Token) IsSignificant() bool {
	return t.Kind.Channel() == ChannelDefault
}

// Significant returns the tokens a parser consumes, dropping the hidden channel.
// The input slice is not modified.
func Significant(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.IsSignificant() {
			out = append(out, tok)
		}
	}
	return out
}
