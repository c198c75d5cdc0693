package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"dcfilter/internal/source"
	"dcfilter/internal/token"
)

// DecodeString снимает кавычки и раскрывает escape-последовательности
// в сыром лексеме STRING. Смещения в ошибке считаются от начала лексемы.
func DecodeString(lexeme string) (string, error) {
	return decodeLiteral(lexeme, &stringLiteral)
}

// DecodeColumn снимает скобки и раскрывает escape-последовательности
// в сыром лексеме COLUMN.
func DecodeColumn(lexeme string) (string, error) {
	return decodeLiteral(lexeme, &columnLiteral)
}

// Decode returns the clean value of a token: decoded text for STRING and
// COLUMN, the lexeme itself for everything else.
func Decode(tok token.Token) (string, error) {
	switch tok.Kind {
	case token.String:
		return DecodeString(tok.Text)
	case token.Column:
		return DecodeColumn(tok.Text)
	default:
		return tok.Text, nil
	}
}

func decodeLiteral(lexeme string, lit *literal) (string, error) {
	if lexeme == "" {
		return "", lexemeError(lit.unterminated, lexeme, 0, -1)
	}
	if lexeme[0] != lit.open {
		return "", lexemeError(UnexpectedCharacter, lexeme, 0, 0)
	}

	var sb strings.Builder
	sb.Grow(len(lexeme) - 1)
	for i := 1; ; {
		if i >= len(lexeme) {
			return "", lexemeError(lit.unterminated, lexeme, i, -1)
		}
		b := lexeme[i]
		switch {
		case b == lit.close:
			if i != len(lexeme)-1 {
				return "", lexemeError(UnexpectedCharacter, lexeme, i+1, i+1)
			}
			return sb.String(), nil
		case isLineBreak(b):
			return "", lexemeError(lit.unterminated, lexeme, i, i)
		case b == '\\':
			if i+1 >= len(lexeme) {
				return "", lexemeError(lit.unterminated, lexeme, len(lexeme), -1)
			}
			c := lexeme[i+1]
			if lit.unicode && c == 'u' {
				j := i + 2
				for j < len(lexeme) && j < i+6 && isHex(lexeme[j]) {
					j++
				}
				if j == i+2 {
					return "", lexemeError(InvalidEscapeSequence, lexeme, i, i+1)
				}
				cp, err := strconv.ParseUint(lexeme[i+2:j], 16, 32)
				if err != nil {
					return "", lexemeError(InvalidEscapeSequence, lexeme, i, i+1)
				}
				// суррогаты без пары превращаются в U+FFFD
				sb.WriteRune(rune(cp))
				i = j
				continue
			}
			if v := lit.escapes[c]; v != 0 {
				sb.WriteByte(v)
				i += 2
				continue
			}
			return "", lexemeError(InvalidEscapeSequence, lexeme, i, i+1)
		default:
			sb.WriteByte(b)
			i++
		}
	}
}

// lexemeError: at: смещение ошибки, charAt: где лежит проблемный символ (-1, если его нет).
func lexemeError(kind ErrorKind, lexeme string, at, charAt int) *Error {
	end := at
	var r rune
	if charAt >= 0 && charAt < len(lexeme) {
		var w int
		r, w = utf8.DecodeRuneInString(lexeme[charAt:])
		end = charAt + w
	}
	// #nosec G115 -- offsets are bounded by len(lexeme)
	off, endOff := uint32(at), uint32(end)
	return &Error{
		Kind:    kind,
		Offset:  off,
		Char:    r,
		Span:    source.Span{Start: 0, End: endOff},
		Context: contextAround([]byte(lexeme), off),
	}
}
