package lexer

import (
	"testing"

	"dcfilter/internal/source"
)

// helper function to create a file
func createFile(content string) (*source.FileSet, *source.File) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.dcf", []byte(content))
	return fs, fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	_, file := createFile("a\nb")
	cursor := NewCursor(file)

	for i, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("step %d: unexpected EOF", i)
		}
		if got := cursor.Peek(); got != want {
			t.Errorf("step %d: Peek = %q, want %q", i, got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Errorf("step %d: Bump = %q, want %q", i, got, want)
		}
	}

	if !cursor.EOF() {
		t.Error("Expected EOF after reading all bytes")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("Expected Peek/Bump to return 0 at EOF")
	}
	if cursor.Off != 3 {
		t.Errorf("Bump at EOF must not move the cursor, Off = %d", cursor.Off)
	}
}

func TestPeek2AndPeekAt(t *testing.T) {
	_, file := createFile("ab")
	cursor := NewCursor(file)

	b0, b1, ok := cursor.Peek2()
	if !ok || b0 != 'a' || b1 != 'b' {
		t.Errorf("Peek2 = (%q, %q, %v), want ('a', 'b', true)", b0, b1, ok)
	}
	if b, ok := cursor.PeekAt(1); !ok || b != 'b' {
		t.Errorf("PeekAt(1) = (%q, %v), want ('b', true)", b, ok)
	}
	if _, ok := cursor.PeekAt(2); ok {
		t.Error("PeekAt past the end must fail")
	}

	cursor.Bump()
	if _, _, ok := cursor.Peek2(); ok {
		t.Error("Expected Peek2 to fail with a single byte left")
	}
}

func TestAdvanceClampsToLimit(t *testing.T) {
	_, file := createFile("abc")
	cursor := NewCursor(file)
	cursor.Advance(2)
	if cursor.Peek() != 'c' {
		t.Errorf("Peek after Advance(2) = %q, want 'c'", cursor.Peek())
	}
	cursor.Advance(10)
	if cursor.Off != 3 || !cursor.EOF() {
		t.Errorf("Advance past the end: Off = %d, want 3", cursor.Off)
	}
}

// TestSpanFromResolve проверяет SpanFrom и Resolve с UTF-8
func TestSpanFromResolve(t *testing.T) {
	// α=2 байта, \n=1 байт, β=2 байта
	fs, file := createFile("α\nβ")
	cursor := NewCursor(file)

	mark := cursor.Mark()
	cursor.Advance(2)
	span := cursor.SpanFrom(mark)
	if span.Start != 0 || span.End != 2 {
		t.Errorf("span = %v, want 0..2", span)
	}

	start, end := fs.Resolve(span)
	if start != (source.LineCol{Line: 1, Col: 1}) {
		t.Errorf("start = %+v, want 1:1", start)
	}
	if end != (source.LineCol{Line: 1, Col: 3}) {
		t.Errorf("end = %+v, want 1:3", end)
	}

	mark2 := cursor.Mark()
	cursor.Bump() // '\n'
	span2 := cursor.SpanFrom(mark2)
	start2, end2 := fs.Resolve(span2)
	if start2 != (source.LineCol{Line: 1, Col: 3}) {
		t.Errorf("start2 = %+v, want 1:3", start2)
	}
	if end2 != (source.LineCol{Line: 2, Col: 1}) {
		t.Errorf("end2 = %+v, want 2:1", end2)
	}
}

// TestEat проверяет поведение Eat
func TestEat(t *testing.T) {
	_, file := createFile("a\nb")
	cursor := NewCursor(file)

	if cursor.Eat('x') {
		t.Error("Expected Eat('x') to fail when current char is 'a'")
	}
	if cursor.Peek() != 'a' {
		t.Errorf("Expected cursor position unchanged after failed Eat, got %c", cursor.Peek())
	}
	if !cursor.Eat('a') || !cursor.Eat('\n') || !cursor.Eat('b') {
		t.Fatal("Expected Eat to consume a, \\n, b")
	}
	if cursor.Eat('x') {
		t.Error("Expected Eat('x') at EOF to fail")
	}
}

func TestCharClasses(t *testing.T) {
	for b := 0; b < 256; b++ {
		c := byte(b)
		letter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		digit := c >= '0' && c <= '9'
		hex := digit || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
		space := c == ' ' || c == '\t' || c == '\r' || c == '\n'
		if isLetter(c) != letter || isDigit(c) != digit || isHex(c) != hex || isSpace(c) != space {
			t.Errorf("class mismatch for byte %#x", c)
		}
	}
	if isLetter('_') || isIdentContinue('_') {
		t.Error("underscore is not part of identifiers")
	}
}
