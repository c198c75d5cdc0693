package lexer

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"dcfilter/internal/diag"
	"dcfilter/internal/source"
)

// ErrorKind классифицирует лексические ошибки.
type ErrorKind uint8

const (
	UnexpectedCharacter ErrorKind = iota + 1
	UnterminatedString
	UnterminatedColumn
	InvalidEscapeSequence
)

var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedString  = errors.New("unterminated string literal")
	ErrUnterminatedColumn  = errors.New("unterminated column reference")
	ErrInvalidEscape       = errors.New("invalid escape sequence")
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case UnterminatedString:
		return "UnterminatedString"
	case UnterminatedColumn:
		return "UnterminatedColumn"
	case InvalidEscapeSequence:
		return "InvalidEscapeSequence"
	default:
		return "ErrorKind(?)"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case UnexpectedCharacter:
		return ErrUnexpectedCharacter
	case UnterminatedString:
		return ErrUnterminatedString
	case UnterminatedColumn:
		return ErrUnterminatedColumn
	case InvalidEscapeSequence:
		return ErrInvalidEscape
	default:
		return nil
	}
}

// Code maps the kind onto its diagnostic code.
func (k ErrorKind) Code() diag.Code {
	switch k {
	case UnexpectedCharacter:
		return diag.LexUnexpectedChar
	case UnterminatedString:
		return diag.LexUnterminatedString
	case UnterminatedColumn:
		return diag.LexUnterminatedColumn
	case InvalidEscapeSequence:
		return diag.LexInvalidEscape
	default:
		return diag.UnknownCode
	}
}

// Error is a lexical error.
//
// Offset is where the problem is: the unexpected character, the CR/LF or end
// of input that cut a literal short, or the backslash of a bad escape.
// Char is the offending rune (0 at end of input). Span runs from the start of
// the failed token through the offending rune, so a consumer that wants to
// keep going can skip exactly Span and resume at Span.End.
type Error struct {
	Kind    ErrorKind
	Offset  uint32
	Char    rune
	Span    source.Span
	Context string
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case UnexpectedCharacter:
		msg = fmt.Sprintf("unexpected character %q", e.Char)
	case InvalidEscapeSequence:
		msg = fmt.Sprintf("invalid escape sequence '\\%c'", e.Char)
	default:
		msg = e.Kind.sentinel().Error()
	}
	if e.Context == "" {
		return fmt.Sprintf("%s at offset %d", msg, e.Offset)
	}
	return fmt.Sprintf("%s at offset %d near %q", msg, e.Offset, e.Context)
}

func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// Code returns the diagnostic code for the error.
func (e *Error) Code() diag.Code {
	return e.Kind.Code()
}

// contextRadius: сколько байт ввода показывать с каждой стороны от ошибки.
const contextRadius = 16

func (lx *Lexer) unexpectedChar(at uint32) *Error {
	r, w := lx.runeAt(at)
	return &Error{
		Kind:    UnexpectedCharacter,
		Offset:  at,
		Char:    r,
		Span:    source.Span{File: lx.file.ID, Start: at, End: at + w},
		Context: contextAround(lx.file.Content[:lx.cursor.Limit], at),
	}
}

// newError строит ошибку незавершённого литерала: at указывает на CR/LF или на конец ввода.
func (lx *Lexer) newError(kind ErrorKind, start Mark, at uint32) *Error {
	r, w := lx.runeAt(at)
	return &Error{
		Kind:    kind,
		Offset:  at,
		Char:    r,
		Span:    source.Span{File: lx.file.ID, Start: uint32(start), End: at + w},
		Context: contextAround(lx.file.Content[:lx.cursor.Limit], at),
	}
}

// invalidEscape: at указывает на '\', в Span попадает и экранируемый символ.
func (lx *Lexer) invalidEscape(start Mark, at uint32) *Error {
	r, w := lx.runeAt(at + 1)
	return &Error{
		Kind:    InvalidEscapeSequence,
		Offset:  at,
		Char:    r,
		Span:    source.Span{File: lx.file.ID, Start: uint32(start), End: at + 1 + w},
		Context: contextAround(lx.file.Content[:lx.cursor.Limit], at),
	}
}

// runeAt декодирует руну на смещении; за концом ввода возвращает (0, 0).
func (lx *Lexer) runeAt(off uint32) (rune, uint32) {
	if off >= lx.cursor.Limit {
		return 0, 0
	}
	r, w := utf8.DecodeRune(lx.file.Content[off:lx.cursor.Limit])
	return r, uint32(w) // #nosec G115 -- w <= utf8.UTFMax
}

func contextAround(content []byte, at uint32) string {
	n := len(content)
	off := min(int(at), n)
	lo := max(0, off-contextRadius)
	for lo > 0 && !utf8.RuneStart(content[lo]) {
		lo--
	}
	hi := min(n, off+contextRadius)
	for hi < n && !utf8.RuneStart(content[hi]) {
		hi++
	}
	return string(content[lo:hi])
}
