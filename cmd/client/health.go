package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			health, err := c.client.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("server is not healthy: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), health.Message)
			return nil
		},
	}
}

func (c *cli) serverVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server-version",
		Short: "Show the build information of the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := c.client.Version(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get server version: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), info)
		},
	}
}
