package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/favicache/internal/domain/url"
)

var (
	exportSize int
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export <site>",
	Short: "Resolve a site's favicon and write it as a square PNG",
	Long: `Resolve the favicon (using the cache) and write a size x size PNG, the
format launchers such as rofi and fuzzel expect.

The default output is <host>_<size>.png in the current directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().IntVarP(&exportSize, "size", "s", 0, "PNG edge length in pixels (default export.size)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default <host>_<size>.png)")
}

func runExport(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	site := args[0]
	size := exportSize
	if size == 0 {
		size = app.Config.Export.Size
	}

	dst := exportOut
	if dst == "" {
		dst, err = defaultExportName(site, size)
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt)
	defer stop()

	if _, err := app.ExportUC.Export(ctx, site, size, dst); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), dst)
	return nil
}

var hostReplacer = strings.NewReplacer(":", "_", "[", "", "]", "")

// defaultExportName builds <host>_<size>.png with the port separator made file-safe.
func defaultExportName(site string, size int) (string, error) {
	_, origin, err := url.ParseOrigin(site)
	if err != nil {
		return "", err
	}
	host := hostReplacer.Replace(origin.Host)
	return host + "_" + strconv.Itoa(size) + ".png", nil
}
