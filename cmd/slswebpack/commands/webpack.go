package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWebpackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webpack",
		Short: "Bundler commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "build",
		Short: "Bundle the service functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.invoke(cmd, "webpack", "build")
		},
	})
	return cmd
}

func (c *CLI) newPackageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "package",
		Short: "Bundle and package the service for deployment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.invoke(cmd, "package")
		},
	}
}

func (c *CLI) newOfflineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offline",
		Short: "Local emulation commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "start",
		Short: "Serve the service locally, rebuilding bundles on change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.invoke(cmd, "offline")
		},
	})
	return cmd
}
