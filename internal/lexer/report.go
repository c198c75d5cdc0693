package lexer

import (
	"fmt"

	"dcfilter/internal/diag"
	"dcfilter/internal/source"
)

// fail запоминает ошибку и один раз сообщает о ней в Reporter.
func (lx *Lexer) fail(err *Error) {
	lx.err = err
	if lx.opts.Reporter == nil {
		return
	}

	at := source.Span{File: lx.file.ID, Start: err.Offset, End: err.Span.End}
	switch err.Kind {
	case UnterminatedString, UnterminatedColumn:
		what, closer := "string literal", `"`
		if err.Kind == UnterminatedColumn {
			what, closer = "column reference", "]"
		}
		where := "end of input"
		if err.Char != 0 {
			where = "end of line"
		}
		diag.ReportError(lx.opts.Reporter, err.Code(), err.Span, fmt.Sprintf("unterminated %s", what)).
			WithNote(source.Span{File: lx.file.ID, Start: err.Offset, End: err.Offset}, fmt.Sprintf("expected '%s' before %s", closer, where)).
			Emit()

	case InvalidEscapeSequence:
		diag.ReportError(lx.opts.Reporter, err.Code(), at, fmt.Sprintf("invalid escape sequence '\\%c'", err.Char)).
			WithNote(err.Span, escapeHelp(err.Span.Start, lx.file)).
			Emit()

	default:
		b := diag.ReportError(lx.opts.Reporter, err.Code(), at, fmt.Sprintf("unexpected character %q", err.Char))
		if h, ok := operatorHints[err.Char]; ok {
			b = b.WithNote(at, fmt.Sprintf("did you mean '%s'?", h)).
				WithFix(fmt.Sprintf("replace with '%s'", h), diag.FixEdit{Span: at, NewText: h})
		}
		b.Emit()
	}
}

// operatorHints: одиночные символы, которые почти всегда опечатка в двухсимвольном операторе.
var operatorHints = map[rune]string{
	'=': "==",
	'&': "&&",
	'|': "||",
	'!': "!=",
}

func escapeHelp(literalStart uint32, f *source.File) string {
	if literalStart < f.Len() && f.Content[literalStart] == columnLiteral.open {
		return `column references accept \\ \[ \] \b \f \n \r \t`
	}
	return `string literals accept \" \' \\ \b \f \n \r \t and \uXXXX`
}
