package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStripsNonContentMarkup(t *testing.T) {
	markup := `<html>
	<head>
		<title>City Portal</title>
		<script>var emergency = "evacuation";</script>
		<style>.crisis { color: red; }</style>
	</head>
	<body>
		<header>Portal emergency banner</header>
		<nav>Home | Meetings | Disaster Info</nav>
		<p>The council discussed housing policy.</p>
		<footer>Copyright urgent notices</footer>
	</body>
	</html>`

	content := Normalize(markup)

	assert.Contains(t, content, "The council discussed housing policy.")
	// Text from stripped elements must never leak: keyword density drives
	// the priority and engagement scores downstream.
	assert.NotContains(t, content, "evacuation")
	assert.NotContains(t, content, "crisis")
	assert.NotContains(t, content, "emergency")
	assert.NotContains(t, content, "Disaster")
	assert.NotContains(t, content, "urgent")
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	markup := "<body><p>Budget   hearing\n\n scheduled\ttoday</p></body>"

	assert.Equal(t, "Budget hearing scheduled today", Normalize(markup))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"<body><div>City  of   Austin\ncouncil   meeting</div></body>",
		"plain text with   extra   spacing",
		"already normalized text",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}
