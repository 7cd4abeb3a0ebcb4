package article_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/credence/internal/adapters/outbound/article"
)

const page = `<!DOCTYPE html>
<html><head><title>Council approves new transit budget</title></head>
<body>
<nav><a href="/">Home</a> <a href="/news">News</a></nav>
<article>
<h1>Council approves new transit budget</h1>
<p>The city council voted 7-2 on Tuesday to approve a transit budget that expands bus service to three new neighborhoods, according to meeting records.</p>
<p>"This is the largest service expansion in a decade," said the transit director, who presented ridership figures collected over the past two years.</p>
<p>Opponents argued the plan relies on optimistic fare revenue projections and asked for an independent audit before the next budget cycle begins.</p>
</article>
<footer>Copyright</footer>
</body></html>`

func TestFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	got, err := article.New().Fetch(context.Background(), srv.URL+"/story")
	require.NoError(t, err)
	assert.Equal(t, "Council approves new transit budget", got.Title)
	assert.Contains(t, got.Content, "voted 7-2 on Tuesday")
	assert.Contains(t, got.Content, "independent audit")
	assert.Equal(t, srv.URL+"/story", got.URL)
}

func TestFetcher_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := article.New().Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestFetcher_InvalidURL(t *testing.T) {
	_, err := article.New().Fetch(context.Background(), "not a url")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "invalid article url"))
}
