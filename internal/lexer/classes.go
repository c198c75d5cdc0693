package lexer

// Классы символов. Таблица строится один раз при инициализации пакета и
// дальше только читается, поэтому её можно делить между лексерами в разных горутинах.
const (
	classSpace uint8 = 1 << iota
	classLetter
	classDigit
	classHex
)

var charClass = func() (t [256]uint8) {
	for _, b := range []byte{' ', '\t', '\r', '\n'} {
		t[b] |= classSpace
	}
	for b := 'A'; b <= 'Z'; b++ {
		t[b] |= classLetter
		t[b+'a'-'A'] |= classLetter
	}
	for b := '0'; b <= '9'; b++ {
		t[b] |= classDigit | classHex
	}
	for b := 'A'; b <= 'F'; b++ {
		t[b] |= classHex
		t[b+'a'-'A'] |= classHex
	}
	return t
}()

func isSpace(b byte) bool  { return charClass[b]&classSpace != 0 }
func isLetter(b byte) bool { return charClass[b]&classLetter != 0 }
func isDigit(b byte) bool  { return charClass[b]&classDigit != 0 }
func isHex(b byte) bool    { return charClass[b]&classHex != 0 }

func isIdentContinue(b byte) bool {
	return charClass[b]&(classLetter|classDigit) != 0
}

func isLineBreak(b byte) bool { return b == '\r' || b == '\n' }
