package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/favicache/internal/infrastructure/config"
)

var (
	configForce     bool
	configSchemaOut string
)

var noApp = map[string]string{annotationNoApp: "true"}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Show, create and describe the TOML configuration file.

Every key can also be set through the environment with the FAVICACHE_
prefix, e.g. FAVICACHE_CACHE_DIR or FAVICACHE_HTTP_TIMEOUT_SECONDS.`,
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print the config file path",
	Annotations: noApp,
	RunE:        runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write the default config file",
	Long:        `Write config.toml with default values. An existing file is kept unless --force is given.`,
	Annotations: noApp,
	RunE:        runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:         "schema",
	Short:       "Print or write the JSON schema of the config file",
	Annotations: noApp,
	RunE:        runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
	configSchemaCmd.Flags().StringVarP(&configSchemaOut, "out", "o", "", "write the schema to a file instead of stdout")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := config.GetConfigFile()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := config.GetConfigFile()
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(path); statErr == nil && !configForce {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	} else if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
		return fmt.Errorf("stat config file: %w", statErr)
	}

	const configDirPerm = 0o755
	if err := os.MkdirAll(filepath.Dir(path), configDirPerm); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	schemaPath, err := config.GetSchemaFile()
	if err == nil {
		if err := config.WriteSchemaFile(schemaPath); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: schema not written: %v\n", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if configSchemaOut != "" {
		if err := config.WriteSchemaFile(configSchemaOut); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), configSchemaOut)
		return nil
	}

	schema, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(append(schema, '\n'))
	return err
}
