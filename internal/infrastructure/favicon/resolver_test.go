package favicon_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/bnema/favicache/internal/application/usecase"
	"github.com/bnema/favicache/internal/domain/entity"
	"github.com/bnema/favicache/internal/infrastructure/favicon"
	"github.com/bnema/favicache/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// handlerTransport serves every request from an in-process handler, whatever the host.
type handlerTransport struct {
	handler  http.Handler
	requests atomic.Int32
}

func (h *handlerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	h.requests.Add(1)
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	resp := rec.Result()
	resp.Request = req
	return resp, nil
}

func newResolver(t *testing.T, handler http.Handler) (*usecase.ResolveFaviconUseCase, *handlerTransport, string) {
	t.Helper()
	transport := &handlerTransport{handler: handler}
	client := &http.Client{Transport: transport}
	dir := filepath.Join(t.TempDir(), "icons")

	opts := favicon.DefaultOptions()
	resolver := usecase.NewResolveFaviconUseCase(
		usecase.NewGatherCandidatesUseCase(favicon.NewDocumentScanner(client, opts)),
		favicon.NewDiskStore(dir),
		favicon.NewFetcher(client, opts),
	)
	return resolver, transport, dir
}

func testContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func TestResolve_ExampleDotCom(t *testing.T) {
	pngBytes := []byte("\x89PNG\r\n\x1a\nfake")

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			_, _ = w.Write([]byte(`<html><head>
				<link rel="icon" href="/a.png">
				<link rel="shortcut icon" href="/b.png">
			</head></html>`))
		case "/a.png":
			_, _ = w.Write(pngBytes)
		default:
			http.NotFound(w, r)
		}
	})

	resolver, transport, dir := newResolver(t, mux)
	ctx := testContext()

	path, err := resolver.Resolve(ctx, "example.com")
	require.NoError(t, err)

	want := filepath.Join(dir, entity.NewCacheKey("https://example.com/a.png").Filename())
	assert.Equal(t, want, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)

	// The failed well-known candidate leaves nothing behind.
	_, err = os.Stat(filepath.Join(dir, entity.NewCacheKey("https://example.com/favicon.ico").Filename()))
	assert.True(t, os.IsNotExist(err))

	// root document, /favicon.ico, /a.png
	assert.Equal(t, int32(3), transport.requests.Load())

	res, err := resolver.ResolveDetailed(ctx, "https://example.com/some/page")
	require.NoError(t, err)
	assert.Equal(t, want, res.Path())
	first, ok := res.FirstSuccess()
	require.True(t, ok)
	assert.True(t, first.CacheHit)
}

func TestResolve_WellKnownHitSkipsFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte{0, 0, 1, 0})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<head></head>`))
	})

	resolver, transport, dir := newResolver(t, mux)
	ctx := testContext()

	path, err := resolver.Resolve(ctx, "example.com")
	require.NoError(t, err)
	want := filepath.Join(dir, entity.NewCacheKey("https://example.com/favicon.ico").Filename())
	assert.Equal(t, want, path)
	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 1, 0}, data)
	before := transport.requests.Load()

	path, err = resolver.Resolve(ctx, "Example.COM")
	require.NoError(t, err)
	assert.Equal(t, want, path)

	// Only the root document is fetched again; the icon comes from disk.
	assert.Equal(t, before+1, transport.requests.Load())
}

func TestResolve_AllCandidatesFailLeavesCacheEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			_, _ = w.Write([]byte(`<head><link rel="icon" href="/a.png"></head>`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	})

	resolver, _, dir := newResolver(t, mux)

	_, err := resolver.Resolve(testContext(), "example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrNotFound))

	entries, err := os.ReadDir(dir)
	if err == nil {
		assert.Empty(t, entries)
	} else {
		assert.True(t, os.IsNotExist(err))
	}
}

func TestResolve_InvalidInputMakesNoRequests(t *testing.T) {
	resolver, transport, _ := newResolver(t, http.NotFoundHandler())

	_, err := resolver.Resolve(testContext(), "   ")
	assert.True(t, errors.Is(err, entity.ErrInvalidInput))
	assert.Zero(t, transport.requests.Load())
}
