package service

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

// maxSearchResults caps how many result blocks are considered per query.
const maxSearchResults = 3

// NewsSearch retrieves current-events snippets from a public search endpoint,
// restricted to an allow-list of trusted news domains. Search is strictly
// best-effort: any network, HTTP or parsing failure yields an empty string so
// the generation pipeline is never blocked on grounding.
type NewsSearch struct {
	client   *http.Client
	endpoint string   // HTML search endpoint, parameterized for tests
	sources  []string // ordered trusted domain allow-list
}

// NewNewsSearch creates a search client over the given endpoint with the
// fixed 10-second budget for the whole request.
func NewNewsSearch(endpoint string, sources []string) *NewsSearch {
	return &NewsSearch{
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: endpoint,
		sources:  sources,
	}
}

// Search queries the endpoint for the topic, biased toward the first five
// trusted domains via site: filters, and returns up to three snippets whose
// URLs belong to a trusted domain. Returns "" when nothing trustworthy was
// found or anything failed along the way.
func (s *NewsSearch) Search(topic string) string {
	bias := s.sources
	if len(bias) > 5 {
		bias = bias[:5]
	}
	siteFilters := make([]string, 0, len(bias))
	for _, source := range bias {
		siteFilters = append(siteFilters, "site:"+source)
	}
	query := fmt.Sprintf("%s India news (%s)", topic, strings.Join(siteFilters, " OR "))

	req, err := http.NewRequest(http.MethodGet, s.endpoint+"?q="+url.QueryEscape(query), http.NoBody)
	if err != nil {
		logrus.WithError(err).Error("Search request build failed")
		return ""
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := s.client.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("topic", topic).Error("Search request failed")
		return ""
	}
	defer func() {
		if err = resp.Body.Close(); err != nil {
			logrus.WithError(err).Error("Failed to close search response body")
		}
	}()
	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Search returned status %d for topic %q", resp.StatusCode, topic)
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		logrus.WithError(err).Error("Search result parsing failed")
		return ""
	}

	var results []string
	doc.Find("div.result__body").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= maxSearchResults {
			return false
		}
		titleElem := sel.Find("a.result__a").First()
		snippetElem := sel.Find("a.result__snippet").First()
		if titleElem.Length() == 0 || snippetElem.Length() == 0 {
			return true
		}

		title := strings.TrimSpace(titleElem.Text())
		snippet := strings.TrimSpace(snippetElem.Text())
		href, _ := titleElem.Attr("href")
		if !s.trusted(href) {
			return true
		}
		results = append(results, fmt.Sprintf("Title: %s\nSnippet: %s\nSource: %s\n", title, snippet, href))
		return true
	})

	return strings.Join(results, "\n")
}

// trusted reports whether the URL belongs to one of the allow-listed domains.
func (s *NewsSearch) trusted(resultURL string) bool {
	for _, source := range s.sources {
		if strings.Contains(resultURL, source) {
			return true
		}
	}
	return false
}
