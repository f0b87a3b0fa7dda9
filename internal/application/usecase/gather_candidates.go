// Package usecase contains application business logic.
package usecase

import (
	"context"
	"net/url"

	"github.com/bnema/favicache/internal/application/port"
	"github.com/bnema/favicache/internal/domain/entity"
	domainurl "github.com/bnema/favicache/internal/domain/url"
	"github.com/bnema/favicache/internal/logging"
)

// GatherCandidatesUseCase builds the ordered list of icon URLs to try for a site.
type GatherCandidatesUseCase struct {
	links port.IconLinkSource
}

// NewGatherCandidatesUseCase creates a new GatherCandidatesUseCase.
// links may be nil, in which case only the well-known path is produced.
func NewGatherCandidatesUseCase(links port.IconLinkSource) *GatherCandidatesUseCase {
	return &GatherCandidatesUseCase{
		links: links,
	}
}

// Gather returns the candidates for site: /favicon.ico first, then icon links
// declared by the root document in document order, without duplicates.
// The only error is entity.ErrInvalidInput; document fetch failures just
// mean fewer candidates.
func (uc *GatherCandidatesUseCase) Gather(ctx context.Context, site string) ([]entity.Candidate, entity.Origin, error) {
	log := logging.FromContext(ctx)

	_, origin, err := domainurl.ParseOrigin(site)
	if err != nil {
		log.Debug().Err(err).Str("input", site).Msg("rejecting site input")
		return nil, entity.Origin{}, err
	}

	candidates := []entity.Candidate{{
		URL:    domainurl.WellKnownIconURL(origin),
		Source: entity.SourceWellKnown,
	}}

	if uc.links == nil {
		return candidates, origin, nil
	}

	rootURL := domainurl.RootDocumentURL(origin)
	links, err := uc.links.IconLinks(ctx, rootURL)
	if err != nil {
		log.Debug().Err(err).Str("url", rootURL).Msg("root document unavailable, using well-known path only")
		return candidates, origin, nil
	}

	base := links.DocumentURL
	if base == nil {
		base, _ = url.Parse(rootURL)
	}

	seen := map[string]struct{}{candidates[0].URL: {}}
	for _, href := range links.Hrefs {
		abs, ok := domainurl.ResolveReference(base, href)
		if !ok {
			log.Debug().Str("href", href).Msg("skipping unusable icon link")
			continue
		}
		if _, dup := seen[abs]; dup {
			continue
		}
		seen[abs] = struct{}{}
		candidates = append(candidates, entity.Candidate{URL: abs, Source: entity.SourceHTMLLink})
	}

	log.Debug().Str("origin", origin.String()).Int("count", len(candidates)).Msg("favicon candidates gathered")
	return candidates, origin, nil
}
