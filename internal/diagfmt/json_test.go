package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"dcfilter/internal/diag"
	"dcfilter/internal/source"
)

func TestJSONBasic(t *testing.T) {
	fs, bag := lexDiagnostics(t, "region.dcf", `[Region] = "US"`)

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true, IncludeFixes: true, IncludePreviews: true}); err != nil {
		t.Fatal(err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %+v", out)
	}
	d := out.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "LEX1001" {
		t.Errorf("unexpected diagnostic %+v", d)
	}
	if d.Location == nil || d.Location.File != "region.dcf" || d.Location.StartByte != 9 || d.Location.StartCol != 10 {
		t.Errorf("unexpected location %+v", d.Location)
	}
	if len(d.Fixes) != 1 || len(d.Fixes[0].Edits) != 1 {
		t.Fatalf("expected one fix, got %+v", d.Fixes)
	}
	edit := d.Fixes[0].Edits[0]
	if edit.NewText != "==" || edit.OldText != "=" {
		t.Errorf("unexpected edit %+v", edit)
	}
	if len(edit.AfterLines) != 1 || edit.AfterLines[0] != `[Region] == "US"` {
		t.Errorf("unexpected preview %+v", edit.AfterLines)
	}
}

func TestJSONWithoutPositionsAndNotes(t *testing.T) {
	fs, bag := lexDiagnostics(t, "x.dcf", `"abc`)

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{})
	d := out.Diagnostics[0]
	if d.Location.StartLine != 0 || d.Location.StartCol != 0 {
		t.Errorf("positions should be omitted, got %+v", d.Location)
	}
	if len(d.Notes) != 0 || len(d.Fixes) != 0 {
		t.Errorf("notes and fixes should be omitted, got %+v", d)
	}
}

func TestJSONTimingsAndIOHaveNoLocation(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("a.dcf", []byte("x"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file"))
	bag.Add(diag.Diagnostic{
		Severity: diag.SevInfo,
		Code:     diag.ObsTimings,
		Message:  "timings",
		Notes:    []diag.Note{{Msg: `{"kind":"file"}`}},
	})

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{})
	if out.Diagnostics[0].Location != nil || out.Diagnostics[1].Location != nil {
		t.Errorf("unlocated diagnostics should have no location: %+v", out.Diagnostics)
	}
	if len(out.Diagnostics[1].Notes) != 1 {
		t.Errorf("timings notes are always included, got %+v", out.Diagnostics[1].Notes)
	}
}

func TestJSONMaxLimit(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.dcf", []byte("# # #"))
	bag := diag.NewBag(10)
	for i := range uint32(3) {
		bag.Add(diag.NewError(diag.LexUnexpectedChar, source.Span{File: id, Start: i * 2, End: i*2 + 1}, "unexpected character '#'"))
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Errorf("Count = %d, want 2", out.Count)
	}
}
