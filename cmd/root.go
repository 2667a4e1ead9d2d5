// Package cmd implements the CLI commands for pastemark using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/pastemark/internal/config"
	"github.com/gaurav-prasanna/pastemark/internal/logger"
	"github.com/gaurav-prasanna/pastemark/internal/version"
)

var (
	flagConfig string
	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "pastemark",
	Short: "Turn pasted text or HTML into clean Markdown",
	Long: `pastemark converts plain text and rich HTML into Markdown.

Text that already looks like Markdown is left alone, diagram source is
fenced as a mermaid block, and everything else is escaped so it renders
exactly as typed.

Examples:
  pbpaste | pastemark convert
  pastemark convert page.html --format json --output_dir ./out
  pastemark convert --url https://example.com/post --format pdf --output_dir ./out
  pastemark detect notes.txt
  pastemark serve --addr 127.0.0.1:8080`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default $HOME/.pastemark.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only log errors")
	rootCmd.PersistentFlags().Bool("log-json", false, "log as JSON")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("log.json", rootCmd.PersistentFlags().Lookup("log-json"))
}

func initConfig() {
	config.Setup(viper.GetViper(), flagConfig)
}

// loadConfig reads and validates the configuration, then sets up logging.
func loadConfig(cmd *cobra.Command, args []string) error {
	if err := config.Read(viper.GetViper()); err != nil {
		return err
	}

	loaded, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	cfg = loaded

	logger.Init(logger.Options{
		Level:  cfg.Log.Level,
		Debug:  viper.GetBool("debug"),
		Quiet:  viper.GetBool("quiet"),
		JSON:   cfg.Log.JSON,
		Output: cmd.ErrOrStderr(),
	})
	if used := viper.ConfigFileUsed(); used != "" {
		logger.Debug("config loaded", "file", used)
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}
