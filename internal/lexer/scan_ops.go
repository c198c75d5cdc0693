package lexer

import "dcfilter/internal/token"

// scanOperator разбирает операторы сравнения, && и ||, скобки.
// Двухсимвольные варианты проверяются раньше односимвольных.
func (lx *Lexer) scanOperator() (token.Token, *Error) {
	start := lx.cursor.Mark()

	switch {
	case lx.try2('=', '='), lx.try2('!', '='), lx.try2('<', '>'),
		lx.try2('>', '='), lx.try2('<', '='):
		return lx.emit(token.Operator, start), nil
	case lx.try2('&', '&'):
		return lx.emit(token.And, start), nil
	case lx.try2('|', '|'):
		return lx.emit(token.Or, start), nil
	}

	switch {
	case lx.cursor.Eat('<'), lx.cursor.Eat('>'):
		return lx.emit(token.Operator, start), nil
	case lx.cursor.Eat('('):
		return lx.emit(token.GroupOpen, start), nil
	case lx.cursor.Eat(')'):
		return lx.emit(token.GroupClose, start), nil
	}

	return token.Token{}, lx.unexpectedChar(lx.cursor.Off)
}

func (lx *Lexer) try2(a, b byte) bool {
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == a && b1 == b {
		lx.cursor.Advance(2)
		return true
	}
	return false
}
