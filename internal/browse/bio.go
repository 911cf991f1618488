package browse

import (
	"regexp"
	"strings"
)

const (
	// bioCollapseThreshold is the bio length above which the preview collapses.
	bioCollapseThreshold = 400
	// bioMinFragment is the shortest partial paragraph worth showing.
	bioMinFragment = 100
)

var paragraphBreak = regexp.MustCompile(`\n+`)

// Paragraphs splits a biography into trimmed, non-empty paragraphs.
func Paragraphs(bio string) []string {
	var out []string
	for _, p := range paragraphBreak.Split(bio, -1) {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// ShouldCollapse reports whether a biography is long enough to start collapsed.
func ShouldCollapse(bio string) bool {
	return len(bio) > bioCollapseThreshold
}

// BioPreview returns the paragraphs shown while a long biography is
// collapsed: whole paragraphs up to roughly the threshold, plus a trailing
// partial paragraph cut at a word boundary with an ellipsis. Fragments
// shorter than bioMinFragment are dropped rather than shown. Short
// biographies come back whole.
func BioPreview(bio string) []string {
	paragraphs := Paragraphs(bio)
	if !ShouldCollapse(bio) {
		return paragraphs
	}

	var preview []string
	charCount := 0

	for _, para := range paragraphs {
		if charCount+len(para) > bioCollapseThreshold {
			remaining := bioCollapseThreshold - charCount
			if remaining > bioMinFragment {
				partial := para[:remaining]
				if lastSpace := strings.LastIndex(partial, " "); lastSpace > 0 {
					preview = append(preview, partial[:lastSpace]+"...")
				}
			}
			break
		}
		preview = append(preview, para)
		charCount += len(para)
	}

	return preview
}
