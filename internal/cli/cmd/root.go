// Package cmd provides Cobra CLI commands for favicache.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/favicache/internal/cli"
	"github.com/bnema/favicache/internal/domain/build"
)

// annotationNoApp marks commands that run without loading config or the cache.
const annotationNoApp = "favicache/no-app"

var (
	app       *cli.App
	buildInfo build.Info
	appOpts   cli.Options
	rootCmd   = &cobra.Command{
		Use:   "favicache",
		Short: "Resolve site favicons into a local content-addressed cache",
		Long: `favicache - resolve a site's favicon and keep it on disk.

Given a site ("example.com" or a full URL) favicache tries the well-known
/favicon.ico location, then every <link rel="icon"> and
<link rel="shortcut icon"> of the root document, in order. The first
icon that downloads is stored as <sha256(url)>.ico in the cache directory
and its path is printed. Cached icons are never fetched again.

Examples:
  favicache resolve github.com
  favicache export github.com --size 48 --out github.png
  favicache encode "$(favicache resolve github.com)"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}
			if cmd.Annotations[annotationNoApp] == "true" {
				return nil
			}

			var err error
			app, err = cli.NewApp(appOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&appOpts.CacheDir, "cache-dir", "", "icon cache directory (overrides cache.dir)")
	rootCmd.PersistentFlags().BoolVarP(&appOpts.Verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

var errAppNotInitialized = errors.New("app not initialized")

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, errAppNotInitialized
	}
	return app, nil
}
