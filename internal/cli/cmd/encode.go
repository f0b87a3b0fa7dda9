package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var encodeRaw bool

var encodeCmd = &cobra.Command{
	Use:   "encode <icon-path>",
	Short: "Print a cached icon as a base64 data URL",
	Long: `Read an icon file (usually a path printed by resolve) and print it as a
data:<mime>;base64 URL ready to embed in HTML or JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().BoolVar(&encodeRaw, "raw", false, "print plain base64 without the data: prefix")
}

func runEncode(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	var encoded string
	if encodeRaw {
		encoded, err = app.EncodeUC.Base64(app.Ctx(), args[0])
	} else {
		encoded, err = app.EncodeUC.DataURL(app.Ctx(), args[0])
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), encoded)
	return nil
}
