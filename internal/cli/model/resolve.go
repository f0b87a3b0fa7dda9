// Package model holds the bubbletea models behind interactive CLI output.
package model

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/favicache/internal/cli/styles"
	"github.com/bnema/favicache/internal/domain/entity"
)

// ErrInterrupted is reported when the user quits before resolution finished.
var ErrInterrupted = errors.New("interrupted")

// DetailedResolver resolves a site and reports every attempt.
type DetailedResolver interface {
	ResolveDetailed(ctx context.Context, site string) (*entity.Resolution, error)
}

// ResolveModel shows a spinner while a site is resolved, then the attempt report.
type ResolveModel struct {
	ctx      context.Context
	site     string
	resolver DetailedResolver
	theme    *styles.Theme
	loading  styles.LoadingModel
	renderer *styles.ResolutionRenderer

	done       bool
	resolution *entity.Resolution
	err        error
}

// NewResolveModel creates a new resolve model for site.
func NewResolveModel(ctx context.Context, theme *styles.Theme, resolver DetailedResolver, site string) ResolveModel {
	return ResolveModel{
		ctx:      ctx,
		site:     site,
		resolver: resolver,
		theme:    theme,
		loading:  styles.NewLoading(theme, "Resolving "+site+"..."),
		renderer: styles.NewResolutionRenderer(theme),
	}
}

// resolvedMsg is sent when resolution finished.
type resolvedMsg struct {
	resolution *entity.Resolution
	err        error
}

// Init implements tea.Model.
func (m ResolveModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Spinner.Tick, m.resolve)
}

func (m ResolveModel) resolve() tea.Msg {
	res, err := m.resolver.ResolveDetailed(m.ctx, m.site)
	return resolvedMsg{resolution: res, err: err}
}

// Update implements tea.Model.
func (m ResolveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if !m.done {
				m.done = true
				m.err = ErrInterrupted
			}
			return m, tea.Quit
		}

	case resolvedMsg:
		m.done = true
		m.resolution = msg.resolution
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.loading.Spinner, cmd = m.loading.Spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m ResolveModel) View() string {
	if !m.done {
		return m.loading.View() + "\n"
	}
	if errors.Is(m.err, ErrInterrupted) {
		return m.theme.WarningStyle.Render(styles.IconWarning+" interrupted") + "\n"
	}
	return m.renderer.Render(m.resolution, m.err) + "\n"
}

// Result returns the resolution and error once the model is done.
func (m ResolveModel) Result() (*entity.Resolution, error) {
	return m.resolution, m.err
}
