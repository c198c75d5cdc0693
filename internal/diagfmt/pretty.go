package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"dcfilter/internal/diag"
	"dcfilter/internal/source"
)

type palette struct {
	err, warn, info *color.Color
	code, path      *color.Color
	gutter, caret   *color.Color
	note, fix       *color.Color
	removed, added  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:     color.New(color.FgRed, color.Bold),
		warn:    color.New(color.FgYellow, color.Bold),
		info:    color.New(color.FgCyan, color.Bold),
		code:    color.New(color.Bold),
		path:    color.New(color.FgWhite, color.Bold),
		gutter:  color.New(color.FgBlue),
		caret:   color.New(color.FgRed, color.Bold),
		note:    color.New(color.FgCyan),
		fix:     color.New(color.FgGreen),
		removed: color.New(color.FgRed),
		added:   color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.gutter, p.caret, p.note, p.fix, p.removed, p.added} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку ввода с подчёркиванием ^~~~ по Span, затем Notes и Fixes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts, p)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	located := hasLocation(d.Code, d.Primary, fs)
	header := fmt.Sprintf("%s %s: %s",
		p.severity(d.Severity).Sprint(d.Severity.String()),
		p.code.Sprint(d.Code.ID()),
		d.Message)
	if located {
		header = p.path.Sprint(position(fs, d.Primary, opts.PathMode)) + ": " + header
	}
	fmt.Fprintln(w, header)

	if located {
		writeSnippet(w, fs, d.Primary, opts.Context, p)
	}

	if opts.ShowNotes || d.Code == diag.ObsTimings {
		for _, n := range d.Notes {
			if hasLocation(d.Code, n.Span, fs) {
				fmt.Fprintf(w, "  %s %s: %s\n", p.note.Sprint("note:"), position(fs, n.Span, opts.PathMode), n.Msg)
			} else {
				fmt.Fprintf(w, "  %s %s\n", p.note.Sprint("note:"), n.Msg)
			}
		}
	}

	if opts.ShowFixes {
		for i, f := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", p.fix.Sprintf("fix #%d:", i+1), f.Title)
			for _, e := range f.Edits {
				start, end := fs.Resolve(e.Span)
				fmt.Fprintf(w, "    apply=%q at %d:%d-%d:%d\n", e.NewText, start.Line, start.Col, end.Line, end.Col)
				if opts.ShowPreview {
					writePreview(w, fs, e, p)
				}
			}
		}
	}
}

func position(fs *source.FileSet, sp source.Span, mode PathMode) string {
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", formatPath(fs.Get(sp.File), fs, mode), start.Line, start.Col)
}

// writeSnippet печатает строки вокруг span и подчёркивает его в первой строке.
func writeSnippet(w io.Writer, fs *source.FileSet, sp source.Span, context int8, p palette) {
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	lastLine := uint32(len(f.LineIdx) + 1)

	first := start.Line
	if c := uint32(max(context, 0)); first > c {
		first -= c
	} else {
		first = 1
	}
	last := min(start.Line+uint32(max(context, 0)), lastLine)

	gutterWidth := len(fmt.Sprint(last))
	for ln := first; ln <= last; ln++ {
		text := f.GetLine(ln)
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, ln), text)
		if ln != start.Line {
			continue
		}

		// подчёркиваем от начала span до его конца в этой строке
		lineOff := lineStart(f, ln)
		from := int(sp.Start - lineOff)
		to := len(text)
		if end.Line == start.Line {
			to = min(int(sp.End-lineOff), len(text))
		}
		from = min(from, len(text))
		pad, width := caretLayout(text, from, to)
		marker := "^" + strings.Repeat("~", max(width-1, 0))
		fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprint(strings.Repeat(" ", gutterWidth)+" |"), pad, p.caret.Sprint(marker))
	}
}

// caretLayout возвращает отступ до байта from (табы сохраняются, чтобы терминал
// выровнял так же, как строку выше) и ширину подчёркивания в колонках.
func caretLayout(line string, from, to int) (string, int) {
	var pad strings.Builder
	for _, r := range line[:from] {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	width := 1
	if to > from {
		width = max(runewidth.StringWidth(line[from:to]), 1)
	}
	return pad.String(), width
}

func writePreview(w io.Writer, fs *source.FileSet, e diag.FixEdit, p palette) {
	before, after := previewLines(fs, e)
	if len(before) == 0 {
		return
	}
	fmt.Fprintln(w, "    preview:")
	for _, l := range before {
		fmt.Fprintln(w, "      "+p.removed.Sprint("- "+l))
	}
	for _, l := range after {
		fmt.Fprintln(w, "      "+p.added.Sprint("+ "+l))
	}
}
