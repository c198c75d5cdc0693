package lexer

import (
	"iter"

	"dcfilter/internal/source"
	"dcfilter/internal/token"
)

// Lexer разбивает одно выражение фильтра на токены.
// Экземпляр не потокобезопасен; независимые лексеры можно гонять параллельно.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *lookahead // 1 элементный буфер для Peek
	err    *Error     // ошибка "залипает": после неё сканирование не продолжается
}

type lookahead struct {
	tok token.Token
	err error
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// NewAt создаёт лексер, который начинает с заданного смещения.
// Нужен потребителям, которые сами восстанавливаются после ошибки.
func NewAt(file *source.File, offset uint32, opts Options) *Lexer {
	lx := New(file, opts)
	lx.cursor.Off = min(offset, lx.cursor.Limit)
	return lx
}

// Offset returns the position of the next unread byte.
func (lx *Lexer) Offset() uint32 {
	if lx.look != nil {
		if lx.look.err != nil {
			return lx.err.Offset
		}
		return lx.look.tok.Span.Start
	}
	return lx.cursor.Off
}

// Next возвращает следующий токен, включая WHITESPACE.
// После EOF всегда возвращает EOF. После ошибки всегда возвращает ту же ошибку.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.look != nil {
		la := *lx.look
		lx.look = nil
		return la.tok, la.err
	}
	if lx.err != nil {
		return token.Token{}, lx.err
	}
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
		}, nil
	}

	// Первый байт однозначно определяет правило: множества стартовых символов
	// у правил не пересекаются, а внутри правила сканер берёт самое длинное совпадение.
	ch := lx.cursor.Peek()
	var (
		tok token.Token
		err *Error
	)
	switch {
	case isSpace(ch):
		tok = lx.scanWhitespace()
	case isLetter(ch):
		tok = lx.scanIdent()
	case isDigit(ch):
		tok = lx.scanNumber()
	case ch == stringLiteral.open:
		tok, err = lx.scanLiteral(&stringLiteral)
	case ch == columnLiteral.open:
		tok, err = lx.scanLiteral(&columnLiteral)
	default:
		tok, err = lx.scanOperator()
	}

	if err != nil {
		lx.fail(err)
		return token.Token{}, err
	}
	return tok, nil
}

// Peek возвращает следующий токен, не продвигая лексер.
func (lx *Lexer) Peek() (token.Token, error) {
	if lx.look == nil {
		tok, err := lx.Next()
		lx.look = &lookahead{tok: tok, err: err}
	}
	return lx.look.tok, lx.look.err
}

// All отдаёт ленивую последовательность токенов. Последовательность
// заканчивается после EOF или после первой ошибки.
func (lx *Lexer) All() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok, err := lx.Next()
			if !yield(tok, err) {
				return
			}
			if err != nil || tok.Kind == token.EOF {
				return
			}
		}
	}
}

// Tokenize collects the whole stream of file, EOF included. On failure it
// returns the tokens scanned before the error together with the error.
func Tokenize(file *source.File, opts Options) ([]token.Token, error) {
	var out []token.Token
	for tok, err := range New(file, opts).All() {
		if err != nil {
			return out, err
		}
		out = append(out, tok)
	}
	return out, nil
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: lx.file.Slice(sp),
	}
}
