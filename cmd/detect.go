package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/pastemark/core"
	"github.com/gaurav-prasanna/pastemark/core/convert"
	"github.com/gaurav-prasanna/pastemark/core/detect"
	"github.com/gaurav-prasanna/pastemark/core/mermaid"
)

var flagDetectType string

var detectCmd = &cobra.Command{
	Use:   "detect [file|-]",
	Short: "Show how an input would be classified",
	Long: `Detect runs the Markdown and diagram detectors over an input and prints
which patterns matched and which conversion path would be taken.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
	detectCmd.Flags().StringVar(&flagDetectType, "type", "auto", "Input type: auto, text or html")
}

func runDetect(cmd *cobra.Command, args []string) error {
	src, err := readSource(cmd.InOrStdin(), args, flagDetectType)
	if err != nil {
		return err
	}
	if err := core.CheckInput(src.Input.Data, cfg.MaxInputChars); err != nil {
		return fmt.Errorf("%s: %w", src.Name, err)
	}

	printDetection(cmd, src.Input, convert.New().Result(src.Input))
	return nil
}

// printDetection renders the pattern table followed by a summary table.
func printDetection(cmd *cobra.Command, in core.InputData, res core.Result) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	mark := func(ok bool) string {
		if ok {
			return green("yes")
		}
		return red("no")
	}

	matched := make(map[string]bool)
	for _, p := range detect.Matches(in.Data) {
		matched[p.Name] = true
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Pattern", "Matched"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, WidthMax: 20},
		{Number: 2, Align: text.AlignCenter},
	})
	for _, p := range detect.Patterns() {
		t.AppendRow(table.Row{p.Name, mark(matched[p.Name])})
	}
	t.Render()

	s := table.NewWriter()
	s.SetOutputMirror(cmd.OutOrStdout())
	s.SetStyle(table.StyleLight)
	s.AppendHeader(table.Row{"Check", "Result"})
	s.AppendRows([]table.Row{
		{"Input type", string(in.Type)},
		{"Patterns matched", fmt.Sprintf("%d (threshold %d)", len(matched), detect.Threshold)},
		{"Already Markdown", mark(res.AlreadyMarkdown)},
		{"Diagram syntax", mark(mermaid.IsSyntax(in.Data))},
		{"Fenced diagrams", strconv.Itoa(mermaid.Count(res.Markdown))},
		{"Conversion path", string(res.Path)},
	})
	s.Render()
}
