// Package commands implements the CLI commands for the dupidx tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/dupidx/internal/build"
	"go.trai.ch/dupidx/internal/logger"
)

// CLI represents the command line interface for dupidx.
type CLI struct {
	log     *logger.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given logger.
func New(log *logger.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "dupidx",
		Short:         "Intern input lines into a table of distinct values",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		log:     log,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newUniqCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
