package favicon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parseHTML(t *testing.T, doc string) *html.Node {
	t.Helper()
	node, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return node
}

func TestExtractIconHrefs(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "document order across both rel values",
			doc: `<html><head>
				<link rel="shortcut icon" href="/s.ico">
				<link rel="stylesheet" href="/style.css">
				<link rel="icon" href="/a.png">
				<link rel="icon" href="/b.png">
			</head></html>`,
			want: []string{"/s.ico", "/a.png", "/b.png"},
		},
		{
			name: "links outside head still count",
			doc:  `<html><body><link rel="icon" href="/body.png"></body></html>`,
			want: []string{"/body.png"},
		},
		{
			name: "missing and empty href skipped",
			doc:  `<head><link rel="icon"><link rel="icon" href=""><link rel="icon" href="/ok.png"></head>`,
			want: []string{"/ok.png"},
		},
		{
			name: "other rel values ignored",
			doc:  `<head><link rel="apple-touch-icon" href="/apple.png"><link rel="mask-icon" href="/mask.svg"></head>`,
			want: nil,
		},
		{
			name: "no links",
			doc:  `<p>hello</p>`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractIconHrefs(parseHTML(t, tt.doc)))
		})
	}
}

func TestDocumentScanner_IconLinks(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/home/", http.StatusFound)
	})
	mux.HandleFunc("/home/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "scanner-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><link rel="icon" href="icon.png"></head></html>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := NewDocumentScanner(srv.Client(), Options{UserAgent: "scanner-test"})

	links, err := s.IconLinks(context.Background(), srv.URL+"/")
	require.NoError(t, err)
	assert.Equal(t, []string{"icon.png"}, links.Hrefs)
	require.NotNil(t, links.DocumentURL)
	assert.Equal(t, "/home/", links.DocumentURL.Path)
}

func TestDocumentScanner_ParsesErrorPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`<head><link rel="icon" href="/404.png"></head>`))
	}))
	defer srv.Close()

	links, err := NewDocumentScanner(srv.Client(), Options{}).IconLinks(context.Background(), srv.URL+"/")
	require.NoError(t, err)
	assert.Equal(t, []string{"/404.png"}, links.Hrefs)
}

func TestDocumentScanner_TruncatesLargeDocuments(t *testing.T) {
	head := `<head><link rel="icon" href="/early.png">`
	tail := strings.Repeat("<!-- padding -->", 64) + `<link rel="icon" href="/late.png"></head>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(head + tail))
	}))
	defer srv.Close()

	s := NewDocumentScanner(srv.Client(), Options{MaxDocumentBytes: int64(len(head) + 16)})

	links, err := s.IconLinks(context.Background(), srv.URL+"/")
	require.NoError(t, err)
	assert.Equal(t, []string{"/early.png"}, links.Hrefs)
}

func TestDocumentScanner_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewDocumentScanner(nil, Options{}).IconLinks(context.Background(), url+"/")
	assert.Error(t, err)
}
