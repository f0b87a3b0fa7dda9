package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key <icon-url>",
	Short: "Print the cache key and file path for an icon URL",
	Long: `Print the SHA-256 cache key of an icon URL, the file it maps to and
whether that file exists. The URL is hashed exactly as given.`,
	Args: cobra.ExactArgs(1),
	RunE: runKey,
}

func init() {
	rootCmd.AddCommand(keyCmd)
}

func runKey(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	entry, cached := app.InspectUC.Lookup(app.Ctx(), args[0])
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, entry.Key)
	fmt.Fprintln(out, entry.Path)
	if cached {
		fmt.Fprintln(out, "cached")
	} else {
		fmt.Fprintln(out, "missing")
	}
	return nil
}
