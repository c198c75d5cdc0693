// Package diag defines the diagnostic model shared by the lexer, the driver and
// the CLI.
//
// # Scope
//
// Package diag does not perform formatting or IO. Rendering lives in
// internal/diagfmt; collection per file lives in internal/driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with a stable ID such as
//     LEX1002.
//   - Message – short, actionable text.
//   - Primary – the source.Span pointing at the offending bytes.
//   - Notes – optional secondary spans, e.g. where a literal starts.
//   - Fixes – optional text edits, e.g. replacing a lone '=' with '=='.
//
// # Emitting diagnostics
//
// Producers use a Reporter so emission stays decoupled from storage:
//
//	diag.ReportError(r, diag.LexUnexpectedChar, sp, "unexpected character '='").
//		WithNote(sp, "comparison operators are ==, !=, <>, >=, <=, <, >").
//		WithFix("replace with '=='", diag.FixEdit{Span: sp, NewText: "=="}).
//		Emit()
//
// BagReporter collects into a Bag, which is capped by the max-diagnostics
// setting and supports sorting and deduplication for deterministic output.
package diag
