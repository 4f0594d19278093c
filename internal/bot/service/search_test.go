package service

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultBlock(title, snippet, href string) string {
	return fmt.Sprintf(`<div class="result__body">
<a class="result__a" href=%q>%s</a>
<a class="result__snippet" href=%q>%s</a>
</div>`, href, title, href, snippet)
}

func TestSearchReturnsTrustedResults(t *testing.T) {
	var gotQuery, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotAgent = r.Header.Get("User-Agent")
		fmt.Fprint(w, "<html><body>"+
			resultBlock("Flood update", "Heavy rain in Karnataka", "https://www.thehindu.com/news/flood")+
			resultBlock("Untrusted", "Spam", "https://example.com/spam")+
			resultBlock("Dam levels", "Reservoirs at capacity", "https://www.deccanherald.com/dam")+
			"</body></html>")
	}))
	defer srv.Close()

	s := NewNewsSearch(srv.URL, []string{"thehindu.com", "deccanherald.com"})
	got := s.Search("ಮಳೆ ಹಾನಿ")

	assert.Contains(t, gotQuery, "ಮಳೆ ಹಾನಿ India news")
	assert.Contains(t, gotQuery, "site:thehindu.com")
	assert.Contains(t, gotAgent, "Mozilla/5.0")

	assert.Contains(t, got, "Title: Flood update")
	assert.Contains(t, got, "Snippet: Reservoirs at capacity")
	assert.NotContains(t, got, "Untrusted", "results outside the allow-list must be dropped")
}

func TestSearchCapsResults(t *testing.T) {
	var body string
	for i := 0; i < 6; i++ {
		body += resultBlock(fmt.Sprintf("Story %d", i), "snippet", "https://www.ndtv.com/story")
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "<html><body>"+body+"</body></html>")
	}))
	defer srv.Close()

	s := NewNewsSearch(srv.URL, []string{"ndtv.com"})
	got := s.Search("topic")

	for i := 0; i < maxSearchResults; i++ {
		assert.Contains(t, got, fmt.Sprintf("Story %d", i))
	}
	assert.NotContains(t, got, "Story 3")
}

func TestSearchFailuresYieldEmptyString(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()
		s := NewNewsSearch(srv.URL, []string{"ndtv.com"})
		assert.Empty(t, s.Search("topic"))
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()
		s := NewNewsSearch(srv.URL, []string{"ndtv.com"})
		assert.Empty(t, s.Search("topic"))
	})

	t.Run("no trusted hits", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, resultBlock("Spam", "spam", "https://example.com/x"))
		}))
		defer srv.Close()
		s := NewNewsSearch(srv.URL, []string{"ndtv.com"})
		assert.Empty(t, s.Search("topic"))
	})
}

func TestSearchBiasesFirstFiveSources(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
	}))
	defer srv.Close()

	sources := []string{"a.com", "b.com", "c.com", "d.com", "e.com", "f.com", "g.com"}
	s := NewNewsSearch(srv.URL, sources)
	s.Search("topic")

	require.NotEmpty(t, gotQuery)
	for _, src := range sources[:5] {
		assert.Contains(t, gotQuery, "site:"+src)
	}
	assert.NotContains(t, gotQuery, "site:f.com")
}
