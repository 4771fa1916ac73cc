package preview

import (
	"net/url"
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Preview holds the dashboard-card metadata extracted from a meeting page.
type Preview struct {
	Excerpt  string
	TopImage string
}

// FromHTML extracts card metadata from raw markup. Extractors are tried in
// order of result quality; a meta-tag scan backstops the image when none of
// them finds one.
func FromHTML(htmlStr, pageURL string) Preview {
	var p Preview

	if r, err := withReadability(htmlStr, pageURL); err == nil {
		p = r
	}
	if p.Excerpt == "" {
		if r, err := withTrafilatura(htmlStr); err == nil && r.Excerpt != "" {
			if p.TopImage == "" {
				p.TopImage = r.TopImage
			}
			p.Excerpt = r.Excerpt
		}
	}
	if p.Excerpt == "" {
		if r, err := withGoose(htmlStr); err == nil {
			if p.TopImage == "" {
				p.TopImage = r.TopImage
			}
			p.Excerpt = r.Excerpt
		}
	}

	if p.TopImage == "" {
		p.TopImage = findTopImageFromMeta(htmlStr)
	}
	p.TopImage = resolveImageURL(p.TopImage, pageURL)
	return p
}

func withReadability(htmlStr, pageURL string) (Preview, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return Preview{}, err
	}

	var baseURL *url.URL
	if pageURL != "" {
		if u, err := url.Parse(pageURL); err == nil {
			baseURL = u
		}
	}

	article, err := readability.FromDocument(doc, baseURL)
	if err != nil {
		return Preview{}, err
	}
	return Preview{
		Excerpt:  strings.TrimSpace(article.TextContent),
		TopImage: article.Image,
	}, nil
}

func withTrafilatura(htmlStr string) (Preview, error) {
	opts := trafilatura.Options{
		IncludeImages: true,
	}
	article, err := trafilatura.Extract(strings.NewReader(htmlStr), opts)
	if err != nil {
		return Preview{}, err
	}
	return Preview{
		Excerpt:  strings.TrimSpace(article.ContentText),
		TopImage: article.Metadata.Image,
	}, nil
}

func withGoose(htmlStr string) (Preview, error) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, "")
	if err != nil {
		return Preview{}, err
	}
	return Preview{
		Excerpt:  strings.TrimSpace(article.CleanedText),
		TopImage: article.TopImage,
	}, nil
}

// findTopImageFromMeta scans meta tags, og:image first, then twitter cards.
func findTopImageFromMeta(htmlStr string) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}

	if u := findMetaContent(doc, "property", []string{
		"og:image",
		"og:image:url",
		"og:image:secure_url",
	}); u != "" {
		return u
	}

	return findMetaContent(doc, "name", []string{
		"twitter:image",
		"twitter:image:src",
		"thumbnail",
		"image",
	})
}

func findMetaContent(root *html.Node, key string, candidates []string) string {
	candidateSet := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		candidateSet[strings.ToLower(c)] = struct{}{}
	}

	var result string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == nil || result != "" {
			return
		}

		if n.Type == html.ElementNode && n.Data == "meta" {
			var attrValue string
			var content string
			for _, a := range n.Attr {
				keyLower := strings.ToLower(a.Key)
				if keyLower == strings.ToLower(key) {
					attrValue = strings.ToLower(a.Val)
				} else if keyLower == "content" {
					content = a.Val
				}
			}

			if content != "" && attrValue != "" {
				if _, ok := candidateSet[attrValue]; ok {
					result = content
					return
				}
			}
		}

		for c := n.FirstChild; c != nil && result == ""; c = c.NextSibling {
			walk(c)
		}
	}

	walk(root)
	return result
}

func resolveImageURL(src, pageURL string) string {
	if src == "" {
		return ""
	}
	parsed, err := url.Parse(src)
	if err != nil {
		return src
	}
	if parsed.IsAbs() || pageURL == "" {
		return src
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return src
	}
	return base.ResolveReference(parsed).String()
}
