package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/favicache/internal/cli"
	"github.com/bnema/favicache/internal/cli/model"
	"github.com/bnema/favicache/internal/domain/entity"
)

var (
	resolveJSON     bool
	resolveAttempts bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <site>",
	Short: "Resolve a site's favicon and print the cached file path",
	Long: `Resolve a site's favicon into the cache and print the local file path.

The site may be a bare host ("example.com") or a full URL. Candidates are
tried one at a time; the first that is already cached or downloads
successfully wins. The command fails when no candidate produced an icon.

On a terminal a spinner is shown while resolving, followed by the list of
attempts. When stdout is not a terminal only the path is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "print the full resolution as JSON")
	resolveCmd.Flags().BoolVarP(&resolveAttempts, "attempts", "a", false, "list every attempt in plain output")
}

func runResolve(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	site := args[0]

	if !resolveJSON && isTerminal(out) && isTerminal(os.Stdin) {
		return resolveInteractive(app, out, site)
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt)
	defer stop()

	res, resolveErr := app.ResolveUC.ResolveDetailed(ctx, site)
	if resolveJSON {
		if res == nil {
			return resolveErr
		}
		if err := writeJSON(out, newResolutionJSON(res)); err != nil {
			return err
		}
		return resolveErr
	}

	if resolveAttempts && res != nil {
		for _, a := range res.Attempts {
			status := "ok"
			if a.Err != nil {
				status = a.Err.Error()
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s\t%s\t%s\n", a.Candidate.Source, a.Candidate.URL, status)
		}
	}
	if resolveErr != nil {
		return resolveErr
	}
	fmt.Fprintln(out, res.Path())
	return nil
}

// resolveInteractive runs the spinner view; quitting it cancels in-flight requests.
func resolveInteractive(app *cli.App, out io.Writer, site string) error {
	ctx, cancel := context.WithCancel(app.Ctx())
	defer cancel()

	m := model.NewResolveModel(ctx, app.Theme, app.ResolveUC, site)
	final, err := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run resolve view: %w", err)
	}

	resolved, ok := final.(model.ResolveModel)
	if !ok {
		return model.ErrInterrupted
	}
	_, resolveErr := resolved.Result()
	return resolveErr
}

type candidateJSON struct {
	URL    string `json:"url"`
	Source string `json:"source"`
	Key    string `json:"key"`
}

type attemptJSON struct {
	candidateJSON
	Path     string `json:"path,omitempty"`
	CacheHit bool   `json:"cache_hit"`
	Error    string `json:"error,omitempty"`
}

type resolutionJSON struct {
	Input      string          `json:"input"`
	Origin     string          `json:"origin"`
	Path       string          `json:"path,omitempty"`
	Candidates []candidateJSON `json:"candidates"`
	Attempts   []attemptJSON   `json:"attempts"`
}

func newCandidateJSON(c entity.Candidate) candidateJSON {
	return candidateJSON{URL: c.URL, Source: string(c.Source), Key: string(entity.NewCacheKey(c.URL))}
}

func newResolutionJSON(res *entity.Resolution) resolutionJSON {
	out := resolutionJSON{
		Input:      res.Input,
		Origin:     res.Origin.String(),
		Path:       res.Path(),
		Candidates: make([]candidateJSON, 0, len(res.Candidates)),
		Attempts:   make([]attemptJSON, 0, len(res.Attempts)),
	}
	for _, c := range res.Candidates {
		out.Candidates = append(out.Candidates, newCandidateJSON(c))
	}
	for _, a := range res.Attempts {
		aj := attemptJSON{
			candidateJSON: newCandidateJSON(a.Candidate),
			Path:          a.Path,
			CacheHit:      a.CacheHit,
		}
		if a.Err != nil {
			aj.Error = a.Err.Error()
		}
		out.Attempts = append(out.Attempts, aj)
	}
	return out
}
