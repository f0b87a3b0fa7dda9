package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the directories favicache uses",
	RunE:  runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

func runPaths(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	dirs := []struct {
		name string
		get  func() (string, error)
	}{
		{"config", app.XDG.ConfigDir},
		{"data", app.XDG.DataDir},
		{"state", app.XDG.StateDir},
	}

	out := cmd.OutOrStdout()
	for _, d := range dirs {
		path, err := d.get()
		if err != nil {
			return fmt.Errorf("resolve %s dir: %w", d.name, err)
		}
		fmt.Fprintf(out, "%s\t%s\n", d.name, path)
	}
	fmt.Fprintf(out, "cache\t%s\n", app.Config.Cache.Dir)
	fmt.Fprintf(out, "logs\t%s\n", app.Config.Logging.LogDir)
	return nil
}
