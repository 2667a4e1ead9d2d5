package cmd

// The convert command orchestrates the pipeline:
// read or fetch → extract → convert → render → write.

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/pastemark/core"
	"github.com/gaurav-prasanna/pastemark/core/convert"
	"github.com/gaurav-prasanna/pastemark/core/output"
	"github.com/gaurav-prasanna/pastemark/core/render"
	"github.com/gaurav-prasanna/pastemark/internal/logger"
)

// Flag variables.
var (
	flagType      string
	flagURL       string
	flagOutputDir string
)

var convertCmd = &cobra.Command{
	Use:   "convert [file|-]",
	Short: "Convert text or HTML to Markdown",
	Long: `Convert reads a file, stdin or a web page and writes Markdown, or a
rendering of it (JSON or YAML report, HTML preview, PDF).

The input type is taken from --type, or detected from the file extension
and content when --type is auto.

Examples:
  pastemark convert notes.txt
  pbpaste | pastemark convert --type html
  pastemark convert page.html --format json --output_dir ./out
  pastemark convert --url https://example.com --format pdf --output_dir ./out`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&flagType, "type", "auto", "Input type: auto, text or html")
	convertCmd.Flags().StringVar(&flagURL, "url", "", "Fetch and convert a web page instead of a file")
	convertCmd.Flags().String("format", "markdown", "Output format: markdown, json, yaml, html or pdf")
	convertCmd.Flags().String("base-url", "", "Resolve relative links and images against this URL")
	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: stdout)")

	_ = viper.BindPFlag("format", convertCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("base_url", convertCmd.Flags().Lookup("base-url"))
}

func runConvert(cmd *cobra.Command, args []string) error {
	if flagURL != "" && len(args) > 0 {
		return errors.New("--url and a file argument are mutually exclusive")
	}

	renderer, err := render.New(cfg.Format)
	if err != nil {
		return err
	}
	if render.IsBinary(cfg.Format) && flagOutputDir == "" {
		return fmt.Errorf("--format %s requires --output_dir", cfg.Format)
	}

	var src *source
	if flagURL != "" {
		src, err = fetchSource(cmd.Context(), flagURL)
	} else {
		src, err = readSource(cmd.InOrStdin(), args, flagType)
	}
	if err != nil {
		return err
	}

	if err := core.CheckInput(src.Input.Data, cfg.MaxInputChars); err != nil {
		return fmt.Errorf("%s: %w", src.Name, err)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = src.BaseURL
	}
	conv := convert.New(
		convert.WithBaseURL(baseURL),
		convert.WithLogger(logger.Logger()),
	)

	res := conv.Result(src.Input)
	logger.Debug("converted",
		"source", src.Name,
		"type", src.Input.Type,
		"path", res.Path,
		"chars", len(res.Markdown),
	)

	data, err := renderer.Render(res.Markdown, buildMetadata(src, res))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	writer.Stdout = cmd.OutOrStdout()

	path, err := writer.Write(src.Name, data, renderer.Extension())
	if err != nil {
		return err
	}
	if path != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s Written: %s\n", color.GreenString("✓"), path)
	}
	return nil
}
