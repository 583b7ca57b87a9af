package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/dupidx"
	"go.trai.ch/dupidx/internal/reader"
	"go.trai.ch/dupidx/internal/render"
)

func (c *CLI) newUniqCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uniq [files...]",
		Short: "Intern input lines and print the identifier table",
		Long: "Reads lines from the given files (or stdin when none are given), assigns each\n" +
			"distinct line a dense identifier in first-seen order, and prints the resulting\n" +
			"identifier table.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			trim, _ := cmd.Flags().GetBool("trim")
			stats, _ := cmd.Flags().GetBool("stats")

			return c.uniq(cmd, args, format, trim, stats)
		},
	}
	cmd.Flags().StringP("format", "f", "text", "Output format: text, json, or yaml")
	cmd.Flags().Bool("trim", false, "Trim surrounding whitespace before interning")
	cmd.Flags().Bool("stats", false, "Log distinct and total line counts")
	return cmd
}

func (c *CLI) uniq(cmd *cobra.Command, paths []string, format string, trim, stats bool) error {
	lines, wait := reader.Lines(cmd.Context(), paths)

	ix := dupidx.NewStrings()
	total := 0
	for line := range lines {
		if trim {
			line = strings.TrimSpace(line)
		}
		ix.Insert(line)
		total++
	}
	if err := wait(); err != nil {
		return err
	}

	if stats {
		c.log.Info("interned input", "distinct", ix.Len(), "total", total)
	}

	table := render.NewTable(ix.Export())
	return table.Write(cmd.OutOrStdout(), format)
}
