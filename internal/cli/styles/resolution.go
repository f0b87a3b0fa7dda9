package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/favicache/internal/domain/entity"
)

// ResolutionRenderer renders the outcome of a favicon resolution.
type ResolutionRenderer struct {
	theme *Theme
}

// NewResolutionRenderer creates a new resolution renderer with the given theme.
func NewResolutionRenderer(theme *Theme) *ResolutionRenderer {
	return &ResolutionRenderer{theme: theme}
}

// Render renders every attempt followed by the resolved path or the failure.
func (r *ResolutionRenderer) Render(res *entity.Resolution, resolveErr error) string {
	t := r.theme
	if res == nil {
		return t.ErrorStyle.Render(IconX + " " + errText(resolveErr))
	}

	lines := []string{
		t.Title.Render(IconGlobe + " " + res.Origin.String()),
		"",
	}
	for _, a := range res.Attempts {
		lines = append(lines, r.renderAttempt(a))
	}

	lines = append(lines, "")
	if path := res.Path(); path != "" {
		lines = append(lines, fmt.Sprintf("%s %s", t.SuccessStyle.Render(IconImage), t.Highlight.Render(path)))
	} else {
		lines = append(lines, t.ErrorStyle.Render(IconX+" "+errText(resolveErr)))
	}

	return strings.Join(lines, "\n")
}

func (r *ResolutionRenderer) renderAttempt(a entity.AttemptResult) string {
	t := r.theme
	if a.OK() {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			t.SuccessStyle.Render(IconCheck), " ",
			t.SourceBadge(a.Candidate.Source), " ",
			t.Normal.Render(a.Candidate.URL), " ",
			t.CacheBadge(a.CacheHit),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		t.ErrorStyle.Render(IconX), " ",
		t.SourceBadge(a.Candidate.Source), " ",
		t.Subtle.Render(a.Candidate.URL), " ",
		t.WarningStyle.Render(errText(a.Err)),
	)
}

// RenderCandidates renders a candidate list in try order with a short cache key.
func (r *ResolutionRenderer) RenderCandidates(origin entity.Origin, candidates []entity.Candidate) string {
	const shortKey = 12
	t := r.theme
	lines := []string{t.Title.Render(IconGlobe + " " + origin.String()), ""}
	for i, c := range candidates {
		key := string(entity.NewCacheKey(c.URL))
		lines = append(lines, fmt.Sprintf("%s %s %s %s",
			t.Subtle.Render(fmt.Sprintf("%2d", i+1)),
			t.SourceBadge(c.Source),
			t.Normal.Render(c.URL),
			t.Subtle.Render(key[:shortKey]),
		))
	}
	return strings.Join(lines, "\n")
}

func errText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
