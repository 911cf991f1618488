package browse

import (
	"strings"
	"testing"
)

func TestParagraphs(t *testing.T) {
	bio := "First paragraph.\n\nSecond paragraph.\n\n\nThird."
	got := Paragraphs(bio)
	if len(got) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d: %v", len(got), got)
	}
	if got[2] != "Third." {
		t.Errorf("expected trailing paragraph preserved, got %q", got[2])
	}
}

func TestBioPreview(t *testing.T) {
	t.Run("Short Bio Returned Whole", func(t *testing.T) {
		bio := "Formed in Reading in 1989.\n\nDisbanded, then reformed in 2014."
		if ShouldCollapse(bio) {
			t.Error("short bio should not collapse")
		}
		got := BioPreview(bio)
		if len(got) != 2 {
			t.Errorf("expected both paragraphs, got %v", got)
		}
	})

	t.Run("Long Bio Collapses At Word Boundary", func(t *testing.T) {
		long := strings.Repeat("word ", 200) // ~1000 chars, one paragraph
		if !ShouldCollapse(long) {
			t.Fatal("expected long bio to collapse")
		}

		got := BioPreview(long)
		if len(got) != 1 {
			t.Fatalf("expected a single partial paragraph, got %d", len(got))
		}
		if !strings.HasSuffix(got[0], "...") {
			t.Errorf("expected ellipsis suffix, got %q", got[0])
		}
		if len(got[0]) > bioCollapseThreshold+3 {
			t.Errorf("preview too long: %d chars", len(got[0]))
		}
		if strings.HasSuffix(strings.TrimSuffix(got[0], "..."), "wor") {
			t.Errorf("expected cut at word boundary, got %q", got[0])
		}
	})

	t.Run("Whole Paragraphs Kept Before The Cut", func(t *testing.T) {
		first := strings.Repeat("a", 150)
		second := strings.Repeat("b", 150)
		third := strings.Repeat("c c", 200) // forces the cut
		bio := first + "\n\n" + second + "\n\n" + third

		got := BioPreview(bio)
		if len(got) < 2 {
			t.Fatalf("expected at least the two whole paragraphs, got %d", len(got))
		}
		if got[0] != first || got[1] != second {
			t.Error("expected whole paragraphs preserved verbatim")
		}
	})

	t.Run("Tiny Fragment Dropped", func(t *testing.T) {
		first := strings.Repeat("a", 350)
		second := strings.Repeat("b b ", 100)
		bio := first + "\n\n" + second

		// Only 50 chars remain under the threshold, below the minimum fragment
		got := BioPreview(bio)
		if len(got) != 1 {
			t.Fatalf("expected the fragment to be dropped, got %v", got)
		}
		if got[0] != first {
			t.Error("expected only the first paragraph")
		}
	})
}
