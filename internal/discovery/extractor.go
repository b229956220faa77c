package discovery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractLinks returns the absolute hyperlinks of an HTML page in first
// occurrence order without duplicates. Absolute http(s) hrefs are kept as
// written, root-relative hrefs are resolved against base and everything else
// is dropped. Malformed markup yields whatever links the parser recovers.
func ExtractLinks(html string, base *url.URL) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return []string{}
	}

	seen := make(map[string]struct{})
	links := []string{}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		link, ok := absolutize(strings.TrimSpace(href), base)
		if !ok {
			return
		}
		if _, dup := seen[link]; dup {
			return
		}
		seen[link] = struct{}{}
		links = append(links, link)
	})

	return links
}

func absolutize(href string, base *url.URL) (string, bool) {
	if href == "" {
		return "", false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}

	switch {
	case strings.EqualFold(ref.Scheme, "http"), strings.EqualFold(ref.Scheme, "https"):
		return href, true
	case ref.Scheme == "" && strings.HasPrefix(href, "/"):
		if base == nil {
			return "", false
		}
		return base.ResolveReference(ref).String(), true
	default:
		return "", false
	}
}
