// Package grapheme measures and clips single-line labels by grapheme cluster
// so wide and combining characters never get cut in half.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Width returns the terminal cell width of a single cluster.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		// Some emoji sequences report 0 from runewidth.
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// StringWidth returns the total cell width of text.
func StringWidth(text string) int {
	n := 0
	for _, c := range Split(text) {
		n += Width(c)
	}
	return n
}

// Truncate clips text to at most width cells, appending tail when clipped.
// The tail counts towards width.
func Truncate(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if StringWidth(text) <= width {
		return text
	}
	tailW := StringWidth(tail)
	if tailW >= width {
		tail, tailW = "", 0
	}

	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		w := Width(c)
		if used+w > width-tailW {
			break
		}
		sb.WriteString(c)
		used += w
	}
	sb.WriteString(tail)
	return sb.String()
}

// SingleLine replaces line breaks and tabs with spaces.
func SingleLine(text string) string {
	if !strings.ContainsAny(text, "\r\n\t") {
		return text
	}
	r := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")
	return r.Replace(text)
}
