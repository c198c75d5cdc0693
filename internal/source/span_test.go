package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{
			name:     "disjoint spans",
			a:        Span{File: 1, Start: 2, End: 4},
			b:        Span{File: 1, Start: 8, End: 9},
			expected: Span{File: 1, Start: 2, End: 9},
		},
		{
			name:     "nested span",
			a:        Span{File: 1, Start: 0, End: 10},
			b:        Span{File: 1, Start: 3, End: 5},
			expected: Span{File: 1, Start: 0, End: 10},
		},
		{
			name:     "different files keep receiver",
			a:        Span{File: 1, Start: 3, End: 5},
			b:        Span{File: 2, Start: 0, End: 10},
			expected: Span{File: 1, Start: 3, End: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Errorf("Cover() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSpan_ContainsAndLen(t *testing.T) {
	sp := Span{Start: 3, End: 6}
	if sp.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", sp.Len())
	}
	if !sp.Contains(3) || !sp.Contains(5) {
		t.Errorf("expected offsets 3 and 5 inside %v", sp)
	}
	if sp.Contains(6) || sp.Contains(2) {
		t.Errorf("half-open span %v must not contain its bounds' outside", sp)
	}
	if !(Span{Start: 4, End: 4}).Empty() {
		t.Errorf("zero-width span must be empty")
	}
}
