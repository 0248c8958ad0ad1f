package fetch

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxLinksPerPage bounds how many external links one page can contribute to
// expansion, so link farms don't flood the source graph.
const maxLinksPerPage = 25

// ExternalLinks extracts absolute links from HTML whose host differs from
// the page's own host. Returned URLs are sanitized and deduplicated,
// preserving document order.
func ExternalLinks(html, pageURL string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	ownHost := Host(pageURL)
	seen := make(map[string]struct{})
	var links []string

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
			return true
		}
		clean := SanitizeURL(href)
		host := Host(clean)
		if host == "" || host == ownHost {
			return true
		}
		if _, dup := seen[clean]; dup {
			return true
		}
		seen[clean] = struct{}{}
		links = append(links, clean)
		return len(links) < maxLinksPerPage
	})

	return links
}
