package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/bnema/favicache/internal/cli/styles"
	"github.com/bnema/favicache/internal/domain/entity"
)

var candidatesJSON bool

var candidatesCmd = &cobra.Command{
	Use:   "candidates <site>",
	Short: "List the icon URLs that would be tried for a site",
	Long: `Fetch the site's root document and list every icon candidate in the
order resolve would try them, with their cache keys. No icon is downloaded.`,
	Args: cobra.ExactArgs(1),
	RunE: runCandidates,
}

func init() {
	rootCmd.AddCommand(candidatesCmd)
	candidatesCmd.Flags().BoolVar(&candidatesJSON, "json", false, "print candidates as JSON")
}

func runCandidates(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt)
	defer stop()

	candidates, origin, err := app.GatherUC.Gather(ctx, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case candidatesJSON:
		list := make([]candidateJSON, 0, len(candidates))
		for _, c := range candidates {
			list = append(list, newCandidateJSON(c))
		}
		return writeJSON(out, list)
	case isTerminal(out):
		fmt.Fprintln(out, styles.NewResolutionRenderer(app.Theme).RenderCandidates(origin, candidates))
	default:
		for _, c := range candidates {
			fmt.Fprintf(out, "%s\t%s\t%s\n", c.Source, c.URL, entity.NewCacheKey(c.URL))
		}
	}
	return nil
}
