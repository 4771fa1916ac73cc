package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

const defaultTitle = "City Council Meeting Analysis"

var (
	pipeSuffixRe = regexp.MustCompile(`\s*\|\s*.*$`)
	dashSuffixRe = regexp.MustCompile(`\s*-\s*.*$`)
)

// extractTitle walks the document for title candidates in priority order:
// first h1, the title element, first h2, then the first element whose class
// attribute mentions "title" or "meeting". A candidate wins when, after
// stripping a trailing "| site" or "- site" suffix, its length lands
// strictly between 10 and 200 characters.
func extractTitle(doc *html.Node) string {
	candidates := []*html.Node{
		findFirst(doc, matchTag("h1")),
		findFirst(doc, matchTag("title")),
		findFirst(doc, matchTag("h2")),
		findFirst(doc, matchClassContains("title")),
		findFirst(doc, matchClassContains("meeting")),
	}

	for _, n := range candidates {
		if n == nil {
			continue
		}
		title := strings.TrimSpace(textContent(n))
		if title == "" {
			continue
		}
		title = pipeSuffixRe.ReplaceAllString(title, "")
		title = dashSuffixRe.ReplaceAllString(title, "")
		if length := utf8.RuneCountInString(title); length > 10 && length < 200 {
			return title
		}
	}

	return defaultTitle
}

func matchTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func matchClassContains(fragment string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, attr := range n.Attr {
			if attr.Key == "class" && strings.Contains(strings.ToLower(attr.Val), fragment) {
				return true
			}
		}
		return false
	}
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
