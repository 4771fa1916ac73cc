package analyzer

import (
	"strings"

	"golang.org/x/net/html"
)

// Elements whose text must never leak into the heuristics: keyword density
// drives topic, priority and engagement scoring, so boilerplate chrome would
// skew every score.
var strippedElements = map[string]bool{
	"script": true,
	"style":  true,
	"nav":    true,
	"footer": true,
	"header": true,
}

// Normalize strips non-content markup and collapses all whitespace runs into
// single spaces. Normalizing already-normalized text is a no-op.
func Normalize(markup string) string {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return collapseWhitespace(markup)
	}
	return normalizeDocument(doc)
}

func normalizeDocument(doc *html.Node) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && strippedElements[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return collapseWhitespace(b.String())
}

func collapseWhitespace(s string) string {
	var chunks []string
	for _, line := range strings.Split(s, "\n") {
		chunks = append(chunks, strings.Fields(line)...)
	}
	return strings.Join(chunks, " ")
}
