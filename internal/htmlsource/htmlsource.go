// Package htmlsource harvests candidate URLs from HTML documents.
package htmlsource

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/klauern/socials/internal/logging"
)

// selector matches every element whose href may point at a profile.
const selector = "a[href], link[href]"

// Hrefs returns the distinct href values of anchors and link elements in
// document order. Fragment-only and javascript: links are skipped.
func Hrefs(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	seen := make(map[string]bool)
	var hrefs []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists {
			return
		}
		href = strings.TrimSpace(href)
		if skip(href) || seen[href] {
			return
		}
		seen[href] = true
		hrefs = append(hrefs, href)
	})

	logging.Debug("harvested hrefs", logging.Operation("html"), logging.Count(len(hrefs)))
	return hrefs, nil
}

func skip(href string) bool {
	if href == "" || strings.HasPrefix(href, "#") {
		return true
	}
	return strings.HasPrefix(strings.ToLower(href), "javascript:")
}
