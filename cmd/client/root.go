package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
	"github.com/spf13/cobra"
)

// cli holds the state shared by all subcommands.
type cli struct {
	address string
	timeout time.Duration

	client adapter.NotesClient
}

func newRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:           "notes",
		Short:         "Command line client for the notes API",
		Version:       fmt.Sprintf("%s (%s, %s)", buildInfo.BuildVersion(), buildInfo.BuildCommit(), buildInfo.BuildDate()),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.connect(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&c.address, "address", "a", "", "notes server base URL (env NOTES_ADDRESS)")
	rootCmd.PersistentFlags().DurationVar(&c.timeout, "timeout", 0, "request timeout (env NOTES_REQUEST_TIMEOUT)")
	rootCmd.PersistentFlags().Bool("verbose", false, "write client logs to stdout")

	rootCmd.AddCommand(
		c.createCmd(),
		c.listCmd(),
		c.getCmd(),
		c.updateCmd(),
		c.deleteCmd(),
		c.healthCmd(),
		c.serverVersionCmd(),
	)

	return rootCmd
}

// connect builds the API client from the environment, with flags taking
// precedence.
func (c *cli) connect(cmd *cobra.Command) error {
	cfg, err := config.GetClientAdapterConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("address") {
		cfg.HTTPAddress = c.address
	}
	if cmd.Flags().Changed("timeout") {
		cfg.RequestTimeout = c.timeout
	}

	log := logger.Nop()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log = logger.NewLogger("notes-client")
	}

	c.client, err = adapter.NewHTTPNotesClient(*cfg, log)
	return err
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
