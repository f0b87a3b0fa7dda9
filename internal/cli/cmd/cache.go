package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/favicache/internal/cli/styles"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the icon cache",
	Long:  `Read-only views of the icon cache directory. Entries are never evicted.`,
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached icons",
	RunE:  runCacheList,
}

var cachePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the cache directory",
	RunE:  runCachePath,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cachePathCmd)
}

func runCacheList(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	stats, err := app.InspectUC.Stats(app.Ctx())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		for _, e := range stats.Entries {
			fmt.Fprintf(out, "%s\t%d\t%s\n", e.Key, e.Size, e.Path)
		}
		return nil
	}

	t := app.Theme
	fmt.Fprintf(out, "%s %s %s %s\n\n",
		t.Highlight.Render(styles.IconFolder),
		t.Normal.Render(stats.Dir),
		t.AccentBadge(fmt.Sprintf("%d icons", len(stats.Entries))),
		t.MutedBadge(styles.FormatBytes(stats.TotalBytes)),
	)
	if len(stats.Entries) == 0 {
		fmt.Fprintln(out, t.Subtle.Render("cache is empty"))
		return nil
	}
	fmt.Fprintln(out, styles.CacheTable(t, stats.Entries))
	return nil
}

func runCachePath(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Config.Cache.Dir)
	return nil
}
