package favicon

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/bnema/favicache/internal/application/port"
	"github.com/bnema/favicache/internal/logging"
)

const iconLinkSelectorExpr = `link[rel="icon"], link[rel="shortcut icon"]`

var iconLinkSelector = cascadia.MustCompile(iconLinkSelectorExpr)

// DocumentScanner fetches a site's root document and lists its icon links.
type DocumentScanner struct {
	client *http.Client
	opts   Options
}

// NewDocumentScanner creates a new DocumentScanner. A nil client gets the default timeout.
func NewDocumentScanner(client *http.Client, opts Options) *DocumentScanner {
	if client == nil {
		client = NewHTTPClient(DefaultTimeout)
	}
	return &DocumentScanner{
		client: client,
		opts:   opts.withDefaults(),
	}
}

// IconLinks GETs documentURL and returns the href of every matching link
// element in document order. The body is parsed whatever the status code;
// documents larger than the cap are parsed up to the cap.
func (s *DocumentScanner) IconLinks(ctx context.Context, documentURL string) (port.IconLinks, error) {
	log := logging.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, documentURL, http.NoBody)
	if err != nil {
		return port.IconLinks{}, fmt.Errorf("failed to create document request: %w", err)
	}
	req.Header.Set("User-Agent", s.opts.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return port.IconLinks{}, fmt.Errorf("failed to fetch document: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		log.Debug().Int("status", resp.StatusCode).Str("url", documentURL).Msg("root document returned non-success status, parsing anyway")
	}

	body, truncated, err := readCapped(resp.Body, s.opts.MaxDocumentBytes)
	if err != nil {
		return port.IconLinks{}, fmt.Errorf("failed to read document: %w", err)
	}
	if truncated {
		log.Debug().Str("url", documentURL).Int64("limit", s.opts.MaxDocumentBytes).Msg("root document truncated")
	}

	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return port.IconLinks{}, fmt.Errorf("failed to parse document: %w", err)
	}

	links := port.IconLinks{
		DocumentURL: resp.Request.URL,
		Hrefs:       ExtractIconHrefs(doc),
	}
	log.Debug().Str("url", documentURL).Int("links", len(links.Hrefs)).Msg("root document scanned")
	return links, nil
}

// ExtractIconHrefs returns the non-empty href of every icon link under doc.
func ExtractIconHrefs(doc *html.Node) []string {
	var hrefs []string
	for _, node := range iconLinkSelector.MatchAll(doc) {
		if href := attr(node, "href"); strings.TrimSpace(href) != "" {
			hrefs = append(hrefs, href)
		}
	}
	return hrefs
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

var _ port.IconLinkSource = (*DocumentScanner)(nil)
