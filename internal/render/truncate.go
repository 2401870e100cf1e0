package render

import (
	"strings"

	"golang.org/x/net/html"
)

// Void elements never take a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// TruncateHTMLWords cuts an HTML fragment after wordCount words, keeping
// tag balance: any element still open at the cut point is closed in
// reverse order. An ellipsis is appended when content was removed.
//
// Words are whitespace-separated runs inside text nodes; markup never
// counts toward the limit.
func TruncateHTMLWords(fragment string, wordCount int) string {
	if wordCount <= 0 {
		return ""
	}

	tokenizer := html.NewTokenizer(strings.NewReader(fragment))

	var out strings.Builder
	var openTags []string
	words := 0
	truncated := false

loop:
	for {
		tokenType := tokenizer.Next()
		switch tokenType {
		case html.ErrorToken:
			// io.EOF or malformed input; emit what we have.
			break loop

		case html.TextToken:
			text := string(tokenizer.Text())
			fields := strings.Fields(text)
			if words+len(fields) <= wordCount {
				words += len(fields)
				out.WriteString(html.EscapeString(text))
				continue
			}
			// The limit lands inside this text node. Keep whole words
			// up to the boundary and stop.
			keep := fields[:wordCount-words]
			if len(keep) > 0 && (strings.HasPrefix(text, " ") || strings.HasPrefix(text, "\n")) {
				out.WriteString(" ")
			}
			out.WriteString(html.EscapeString(strings.Join(keep, " ")))
			words = wordCount
			truncated = true
			break loop

		case html.StartTagToken:
			raw := string(tokenizer.Raw())
			name, _ := tokenizer.TagName()
			out.WriteString(raw)
			if !voidElements[string(name)] {
				openTags = append(openTags, string(name))
			}

		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			out.WriteString("</" + string(name) + ">")
			for i := len(openTags) - 1; i >= 0; i-- {
				if openTags[i] == string(name) {
					openTags = append(openTags[:i], openTags[i+1:]...)
					break
				}
			}

		case html.SelfClosingTagToken, html.CommentToken, html.DoctypeToken:
			out.WriteString(string(tokenizer.Raw()))
		}
	}

	if truncated {
		out.WriteString(" …")
	}

	// Close anything left open, innermost first.
	for i := len(openTags) - 1; i >= 0; i-- {
		out.WriteString("</" + openTags[i] + ">")
	}

	return out.String()
}
