package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/favicache/internal/application/port"
	"github.com/bnema/favicache/internal/domain/entity"
	"github.com/bnema/favicache/internal/domain/service"
	"github.com/bnema/favicache/internal/logging"
)

// ResolveFaviconUseCase resolves a site string to a locally cached icon file.
// Candidates are tried one at a time; the first one that is cached or can be
// downloaded and stored wins.
type ResolveFaviconUseCase struct {
	candidates *GatherCandidatesUseCase
	store      port.IconStore
	downloader port.IconDownloader

	// inflight guarantees at most one download per cache key across concurrent callers.
	inflight singleflight.Group
}

// NewResolveFaviconUseCase creates a new ResolveFaviconUseCase.
func NewResolveFaviconUseCase(
	candidates *GatherCandidatesUseCase,
	store port.IconStore,
	downloader port.IconDownloader,
) *ResolveFaviconUseCase {
	return &ResolveFaviconUseCase{
		candidates: candidates,
		store:      store,
		downloader: downloader,
	}
}

// Resolve returns the path of the cached icon for site.
func (uc *ResolveFaviconUseCase) Resolve(ctx context.Context, site string) (string, error) {
	res, err := uc.ResolveDetailed(ctx, site)
	if err != nil {
		return "", err
	}
	return res.Path(), nil
}

// ResolveDetailed resolves site and returns every attempt made.
// On entity.ErrNotFound the returned Resolution is still populated.
func (uc *ResolveFaviconUseCase) ResolveDetailed(ctx context.Context, site string) (*entity.Resolution, error) {
	ctx = logging.WithSite(ctx, site)
	log := logging.FromContext(ctx)

	candidates, origin, err := uc.candidates.Gather(ctx, site)
	if err != nil {
		return nil, err
	}

	res := &entity.Resolution{
		Input:      site,
		Origin:     origin,
		Candidates: candidates,
		Attempts:   make([]entity.AttemptResult, 0, len(candidates)),
	}

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("resolve %s: %w", origin, err)
		}

		attempt := uc.attempt(ctx, candidate)
		res.Attempts = append(res.Attempts, attempt)

		if attempt.OK() {
			log.Info().
				Str("origin", origin.String()).
				Str("candidate", candidate.URL).
				Bool("cache_hit", attempt.CacheHit).
				Str("path", attempt.Path).
				Msg("favicon resolved")
			return res, nil
		}

		log.Debug().Err(attempt.Err).Str("candidate", candidate.URL).Msg("favicon candidate failed")
	}

	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("resolve %s: %w", origin, err)
	}
	log.Info().Str("origin", origin.String()).Int("attempts", len(res.Attempts)).Msg("no favicon found")
	return res, fmt.Errorf("%w for %s", entity.ErrNotFound, origin)
}

type fetchOutcome struct {
	path     string
	cacheHit bool
}

// attempt tries a single candidate: cache lookup, then a guarded download and write.
func (uc *ResolveFaviconUseCase) attempt(ctx context.Context, candidate entity.Candidate) entity.AttemptResult {
	key := entity.NewCacheKey(candidate.URL)
	result := entity.AttemptResult{Candidate: candidate, Key: key}

	if path, ok := uc.store.Lookup(ctx, key); ok {
		result.Path = path
		result.CacheHit = true
		return result
	}

	// The flight outlives any single caller; each caller only stops waiting on its own ctx.
	flight := uc.inflight.DoChan(string(key), func() (any, error) {
		return uc.fetch(context.WithoutCancel(ctx), candidate.URL, key)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		result.Err = ctx.Err()
		return result
	case res = <-flight:
	}
	if res.Err != nil {
		result.Err = res.Err
		return result
	}

	outcome := res.Val.(fetchOutcome)
	result.Path = outcome.path
	result.CacheHit = outcome.cacheHit
	if res.Shared {
		logging.FromContext(ctx).Debug().Str("key", string(key)).Msg("joined in-flight favicon fetch")
	}
	return result
}

func (uc *ResolveFaviconUseCase) fetch(ctx context.Context, iconURL string, key entity.CacheKey) (fetchOutcome, error) {
	// Another caller may have finished this key between our lookup and acquiring the flight.
	if path, ok := uc.store.Lookup(ctx, key); ok {
		return fetchOutcome{path: path, cacheHit: true}, nil
	}

	data, err := uc.downloader.Download(ctx, iconURL)
	if err != nil {
		return fetchOutcome{}, fmt.Errorf("download %s: %w", iconURL, err)
	}

	path, err := uc.store.Write(ctx, key, data)
	if err != nil {
		return fetchOutcome{}, fmt.Errorf("store %s: %w", iconURL, err)
	}
	return fetchOutcome{path: path}, nil
}

var _ service.FaviconResolver = (*ResolveFaviconUseCase)(nil)
