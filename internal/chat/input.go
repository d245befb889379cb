package chat

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// MaxInputLength is the longest message accepted, in characters
const MaxInputLength = 1000

var (
	editorBlockTags = []string{"<p>", "<p ", "<div>", "<div "}
	editorBreakTags = []string{"<br>", "<br/>", "<br />"}
)

// hasEditorMarkup reports whether s looks like rich-text editor output
func hasEditorMarkup(s string) bool {
	lower := strings.ToLower(strings.TrimSpace(s))
	for _, tag := range editorBlockTags {
		if strings.HasPrefix(lower, tag) {
			return true
		}
	}
	for _, tag := range editorBreakTags {
		if strings.Contains(lower, tag) {
			return true
		}
	}
	return false
}

// ExtractText turns rich-text editor markup into plain text.
// Paragraphs and <br> become newlines; entities are decoded; all other tags
// are dropped. Text that is not editor output is only trimmed, so a literal
// "<" or "&lt;" typed on a terminal survives.
func ExtractText(markup string) string {
	if !hasEditorMarkup(markup) {
		return strings.TrimSpace(markup)
	}

	z := html.NewTokenizer(strings.NewReader(markup))

	var b strings.Builder
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or malformed input: keep what was read
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if string(name) == "br" {
				b.WriteByte('\n')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "p", "div", "li":
				b.WriteByte('\n')
			}
		}
	}
}

// Truncate cuts s to at most MaxInputLength characters
func Truncate(s string) string {
	if utf8.RuneCountInString(s) <= MaxInputLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:MaxInputLength])
}

// Normalize prepares raw input for sending: markup stripped, trimmed, truncated
func Normalize(raw string) string {
	return strings.TrimSpace(Truncate(ExtractText(raw)))
}
