package lexer

import "dcfilter/internal/token"

// scanNumber: Digit+ ('.' Digit+)? (('e'|'E') ('+'|'-')? Digit+)?
//
// Незавершённые дробная часть и экспонента не поглощаются:
// "1." даёт NUMBER "1", а "1e" даёт NUMBER "1" и IDENTIFIER "e".
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	lx.eatDigits()

	// дробная часть только если после точки есть цифра
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDigit(b1) {
		lx.cursor.Bump()
		lx.eatDigits()
	}

	if c := lx.cursor.Peek(); c == 'e' || c == 'E' {
		n := uint32(1)
		if sign, ok := lx.cursor.PeekAt(1); ok && (sign == '+' || sign == '-') {
			n = 2
		}
		if d, ok := lx.cursor.PeekAt(n); ok && isDigit(d) {
			lx.cursor.Advance(n)
			lx.eatDigits()
		}
	}

	return lx.emit(token.Number, start)
}

func (lx *Lexer) eatDigits() {
	for !lx.cursor.EOF() && isDigit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
