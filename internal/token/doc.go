// Package token defines lexical token kinds for DataCube filter expressions.
// Invariants:
//   - Token.Text is the exact source slice; STRING and COLUMN keep delimiters and
//     escapes undecoded.
//   - Token.Span matches Text exactly (Start..End, half-open, in bytes).
//   - WHITESPACE tokens live on the hidden channel. They are part of the stream so
//     offsets and the round trip hold, and consumers drop them before parsing.
//   - Boolean literals and function-style names are plain identifiers here.
//     Their meaning is decided by the parser, not the lexer.
package token
