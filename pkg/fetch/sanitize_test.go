package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeURL(t *testing.T) {
	t.Run("strips utm and click parameters", func(t *testing.T) {
		got := SanitizeURL("https://example.org/post?utm_source=x&utm_medium=y&fbclid=abc&id=7")
		assert.Equal(t, "https://example.org/post?id=7", got)
	})

	t.Run("lowercases host and drops www", func(t *testing.T) {
		assert.Equal(t, "https://example.org/News", SanitizeURL("https://WWW.Example.ORG/News"))
	})

	t.Run("drops fragment and trailing slash", func(t *testing.T) {
		assert.Equal(t, "https://example.org/a", SanitizeURL("https://example.org/a/#section"))
	})

	t.Run("returns unparseable input trimmed", func(t *testing.T) {
		assert.Equal(t, "not a url", SanitizeURL("  not a url "))
	})
}

func TestHost(t *testing.T) {
	assert.Equal(t, "example.org", Host("https://www.example.org/page"))
	assert.Equal(t, "", Host("::::"))
}

func TestExternalLinks(t *testing.T) {
	html := `<html><body>
		<a href="https://other.org/event?utm_source=share">Event</a>
		<a href="https://example.org/internal">Internal</a>
		<a href="/relative">Relative</a>
		<a href="https://other.org/event">Duplicate after sanitize</a>
		<a href="https://third.net/aid">Aid</a>
	</body></html>`

	links := ExternalLinks(html, "https://example.org/page")

	assert.Equal(t, []string{"https://other.org/event", "https://third.net/aid"}, links)
}

func TestExternalLinks_Cap(t *testing.T) {
	html := "<html><body>"
	for i := 0; i < 100; i++ {
		html += `<a href="https://site` + string(rune('a'+i%26)) + `.org/p` + string(rune('0'+i%10)) + `">x</a>`
	}
	html += "</body></html>"

	links := ExternalLinks(html, "https://example.org")
	assert.LessOrEqual(t, len(links), maxLinksPerPage)
}
