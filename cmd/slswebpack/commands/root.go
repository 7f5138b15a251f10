// Package commands implements the CLI commands for slswebpack.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/slswebpack/internal/app"
	"go.trai.ch/slswebpack/internal/build"
	"go.trai.ch/slswebpack/internal/core/domain"
)

// CLI represents the command line interface for slswebpack.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	serviceFile string
	logFormat   string
	trace       bool
	journal     string
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "slswebpack",
		Short:         "Bundle serverless functions with esbuild",
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
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.serviceFile, "service", "s", domain.DefaultServiceFile,
		"Path of the service definition")
	rootCmd.PersistentFlags().StringVar(&c.logFormat, "log-format", "pretty", "Log format: pretty or json")
	rootCmd.PersistentFlags().BoolVar(&c.trace, "trace", false, "Log the duration of every lifecycle hook")
	rootCmd.PersistentFlags().StringVar(&c.journal, "journal", "", "Record build progress to this file as JSON lines")

	rootCmd.AddCommand(c.newWebpackCmd())
	rootCmd.AddCommand(c.newPackageCmd())
	rootCmd.AddCommand(c.newOfflineCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// invoke runs a host command against the selected service.
func (c *CLI) invoke(cmd *cobra.Command, command ...string) error {
	return c.app.Run(cmd.Context(), app.RunOptions{
		ServiceFile: c.serviceFile,
		LogFormat:   c.logFormat,
		Command:     command,
		Trace:       c.trace,
		Journal:     c.journal,
	})
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
