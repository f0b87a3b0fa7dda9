package styles

import (
	"fmt"

	"github.com/bnema/favicache/internal/domain/entity"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// SourceBadge renders where a candidate came from.
func (t *Theme) SourceBadge(source entity.CandidateSource) string {
	if source == entity.SourceWellKnown {
		return t.BadgeMuted.Render(string(source))
	}
	return t.Badge.Render(string(source))
}

// CacheBadge renders "cached" for a cache hit and "fetched" otherwise.
func (t *Theme) CacheBadge(hit bool) string {
	if hit {
		return t.BadgeMuted.Render("cached")
	}
	return t.Badge.Render("fetched")
}

// FormatBytes formats a byte count using binary units.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
