package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"dcfilter/internal/diag"
	"dcfilter/internal/lexer"
	"dcfilter/internal/source"
)

// lexDiagnostics прогоняет лексер и возвращает bag с диагностиками
func lexDiagnostics(t *testing.T, path, input string) (*source.FileSet, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual(path, []byte(input))
	bag := diag.NewBag(10)
	_, _ = lexer.Tokenize(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return fs, bag
}

func TestPrettyHeaderAndCaret(t *testing.T) {
	fs, bag := lexDiagnostics(t, "region.dcf", `[Region] = "US"`)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: false, PathMode: PathModeBasename})
	output := buf.String()

	want := "region.dcf:1:10: ERROR LEX1001: unexpected character '='\n" +
		"1 | [Region] = \"US\"\n" +
		"  |          ^\n"
	if output != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", output, want)
	}
}

func TestPrettyUnderlinesWholeLiteral(t *testing.T) {
	fs, bag := lexDiagnostics(t, "x.dcf", `a == "abc`)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	output := buf.String()

	if !strings.Contains(output, "  |      ^~~~\n") {
		t.Errorf("expected the literal to be underlined, got:\n%s", output)
	}
	if !strings.Contains(output, "note: x.dcf:1:10: expected '\"' before end of input") {
		t.Errorf("expected a located note, got:\n%s", output)
	}
}

func TestPrettyWideRunes(t *testing.T) {
	fs, bag := lexDiagnostics(t, "wide.dcf", "[世界] # 1")

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("unexpected output %q", buf.String())
	}
	// "[世界] " занимает 7 колонок на экране
	if lines[2] != "  |        ^" {
		t.Errorf("caret misaligned: %q", lines[2])
	}
}

func TestPrettyFixesAndPreview(t *testing.T) {
	fs, bag := lexDiagnostics(t, "fix.dcf", `[Region] = "US"`)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true, ShowFixes: true, ShowPreview: true})
	output := buf.String()

	for _, want := range []string{
		"note: fix.dcf:1:10: did you mean '=='?",
		"fix #1: replace with '=='",
		`apply="==" at 1:10-1:11`,
		"preview:",
		`- [Region] = "US"`,
		`+ [Region] == "US"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestPrettyContextLines(t *testing.T) {
	fs, bag := lexDiagnostics(t, "multi.dcf", "[A] == 1\n&& [B] = 2\n|| [C] == 3")

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1})
	output := buf.String()
	for _, want := range []string{"multi.dcf:2:8:", "1 | [A] == 1", "2 | && [B] = 2", "3 | || [C] == 3", "  |        ^"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestPrettyUnlocatedDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("other.dcf", []byte("x"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: open a.dcf: permission denied"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if got := buf.String(); got != "ERROR IO4001: failed to load file: open a.dcf: permission denied\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestPrettyColor(t *testing.T) {
	fs, bag := lexDiagnostics(t, "c.dcf", "#")

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{Color: false})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Error("plain output must not contain escape sequences")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Error("colored output should contain escape sequences")
	}
}

func TestPathModes(t *testing.T) {
	fs := source.NewFileSetWithBase("/home/user/project")
	id := fs.Add("/home/user/project/filters/region.dcf", []byte(`"abc`), 0)
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnterminatedString, source.Span{File: id, Start: 0, End: 4}, "unterminated string literal"))

	tests := []struct {
		mode PathMode
		want string
	}{
		{PathModeAbsolute, "/home/user/project/filters/region.dcf:1:1"},
		{PathModeRelative, "filters/region.dcf:1:1"},
		{PathModeBasename, "region.dcf:1:1"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
		if !strings.HasPrefix(buf.String(), tt.want+":") {
			t.Errorf("mode %d: expected prefix %q, got:\n%s", tt.mode, tt.want, buf.String())
		}
	}
}
