package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const portalPage = `<html>
<head>
<title>Council Meeting</title>
<meta property="og:image" content="/img/council-chamber.jpg">
</head>
<body>
<article>
<h1>Regular Council Meeting</h1>
<p>The city council convened to discuss the annual budget proposal. Department
heads presented spending plans for public safety, parks and road maintenance.
Residents offered comment on the proposed property tax adjustment before the
council voted to continue the item to the next session.</p>
<p>The meeting adjourned at nine in the evening after a closed session on
pending litigation. Minutes will be published on the city portal.</p>
</article>
</body>
</html>`

func TestFromHTMLExtractsExcerpt(t *testing.T) {
	p := FromHTML(portalPage, "https://example.gov/meetings/1")

	assert.Contains(t, p.Excerpt, "annual budget proposal")
}

func TestFromHTMLResolvesMetaImage(t *testing.T) {
	p := FromHTML(portalPage, "https://example.gov/meetings/1")

	assert.Equal(t, "https://example.gov/img/council-chamber.jpg", p.TopImage)
}

func TestFindTopImageFromMetaTwitterFallback(t *testing.T) {
	page := `<html><head><meta name="twitter:image" content="https://cdn.example.gov/hall.png"></head><body></body></html>`

	assert.Equal(t, "https://cdn.example.gov/hall.png", findTopImageFromMeta(page))
}

func TestFromHTMLEmptyDocument(t *testing.T) {
	p := FromHTML("<html><body></body></html>", "")

	assert.Empty(t, p.TopImage)
}
