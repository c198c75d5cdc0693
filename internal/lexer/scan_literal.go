package lexer

import (
	"dcfilter/internal/token"
)

// literal описывает литерал с разделителями и экранированием: STRING и COLUMN
// отличаются только разделителями, набором escape-последовательностей и видом ошибки.
type literal struct {
	kind         token.Kind
	open, close  byte
	escapes      [256]byte // 0 значит "не допускается"
	unicode      bool      // \u + 1–4 hex
	unterminated ErrorKind
}

var stringLiteral = literal{
	kind:  token.String,
	open:  '"',
	close: '"',
	escapes: [256]byte{
		'"': '"', '\'': '\'', '\\': '\\',
		'b': '\b', 'f': '\f', 'n': '\n', 'r': '\r', 't': '\t',
	},
	unicode:      true,
	unterminated: UnterminatedString,
}

var columnLiteral = literal{
	kind:  token.Column,
	open:  '[',
	close: ']',
	escapes: [256]byte{
		'\\': '\\', '[': '[', ']': ']',
		'b': '\b', 'f': '\f', 'n': '\n', 'r': '\r', 't': '\t',
	},
	unterminated: UnterminatedColumn,
}

func (lx *Lexer) scanLiteral(lit *literal) (token.Token, *Error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающий разделитель

	for {
		if lx.cursor.EOF() {
			return token.Token{}, lx.newError(lit.unterminated, start, lx.cursor.Off)
		}
		switch b := lx.cursor.Peek(); {
		case b == lit.close:
			lx.cursor.Bump()
			return lx.emit(lit.kind, start), nil
		case isLineBreak(b):
			// голый CR/LF внутри литерала запрещён
			return token.Token{}, lx.newError(lit.unterminated, start, lx.cursor.Off)
		case b == '\\':
			if err := lx.scanEscape(lit, start); err != nil {
				return token.Token{}, err
			}
		default:
			// многобайтовые UTF-8 последовательности не содержат ASCII байтов,
			// поэтому идём побайтно
			lx.cursor.Bump()
		}
	}
}

func (lx *Lexer) scanEscape(lit *literal, start Mark) *Error {
	at := lx.cursor.Off
	lx.cursor.Bump() // '\'
	if lx.cursor.EOF() {
		return lx.newError(lit.unterminated, start, lx.cursor.Off)
	}

	c := lx.cursor.Peek()
	if lit.unicode && c == 'u' {
		lx.cursor.Bump()
		n := 0
		for n < 4 && !lx.cursor.EOF() && isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
			n++
		}
		if n == 0 {
			return lx.invalidEscape(start, at)
		}
		return nil
	}
	if lit.escapes[c] == 0 {
		return lx.invalidEscape(start, at)
	}
	lx.cursor.Bump()
	return nil
}
