package cmd

import (
	"fmt"
	"os"

	"github.com/dashops/dashlan/internal/config"
	"github.com/spf13/cobra"
)

var configJSON bool

// ConfigCmd inspects and bootstraps the dashlan config file
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or bootstrap ~/.dashlan/config.yaml",
	Long: `Inspect the effective configuration or write a starter file.

Subcommands:
  config show    Print the effective settings (file over defaults)
  config init    Write the defaults to ~/.dashlan/config.yaml`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the settings serve will use: the config file when present,
built-in defaults otherwise.

Examples:
  dashlan config show
  dashlan config show --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if configJSON {
			outputJSON(cfg)
			return nil
		}
		fmt.Printf("file=%s\n", config.Path())
		fmt.Printf("port=%d\n", cfg.Port)
		fmt.Printf("bind=%s\n", cfg.Bind)
		fmt.Printf("app=%s\n", cfg.App)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long: `Write the built-in defaults to ~/.dashlan/config.yaml so they can
be edited. Refuses to overwrite an existing file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Path()
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := config.Save(config.Default()); err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	configShowCmd.Flags().BoolVar(&configJSON, "json", false, "Output in JSON format")
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
}
