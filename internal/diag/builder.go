package diag

import "dcfilter/internal/source"

// NewError строит ошибку без заметок и исправлений.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: SevError, Code: code, Message: msg, Primary: primary}
}

// ReportBuilder собирает диагностику по шагам и отдаёт её Reporter не больше одного раза.
type ReportBuilder struct {
	to   Reporter
	d    Diagnostic
	sent bool
}

// ReportError начинает диагностику уровня ERROR.
func ReportError(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{to: r, d: NewError(code, primary, msg)}
}

func (b *ReportBuilder) WithNote(sp source.Span, msg string) *ReportBuilder {
	b.d.Notes = append(b.d.Notes, Note{Span: sp, Msg: msg})
	return b
}

// WithFix добавляет исправление из одной или нескольких правок.
func (b *ReportBuilder) WithFix(title string, edits ...FixEdit) *ReportBuilder {
	b.d.Fixes = append(b.d.Fixes, Fix{Title: title, Edits: edits})
	return b
}

// Emit отправляет диагностику; повторные вызовы ничего не делают.
// Без Reporter диагностика просто отбрасывается.
func (b *ReportBuilder) Emit() {
	if b.sent {
		return
	}
	b.sent = true
	if b.to != nil {
		b.to.Report(b.d)
	}
}
