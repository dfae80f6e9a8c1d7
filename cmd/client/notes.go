package main

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-notes/models"
	"github.com/spf13/cobra"
)

func (c *cli) createCmd() *cobra.Command {
	var note models.NoteCreate

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := c.client.CreateNote(cmd.Context(), note)
			if err != nil {
				return fmt.Errorf("failed to create note: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), created)
		},
	}

	cmd.Flags().StringVarP(&note.Title, "title", "t", "", "note title")
	cmd.Flags().StringVarP(&note.Content, "content", "c", "", "note content")
	return cmd
}

func (c *cli) listCmd() *cobra.Command {
	params := models.DefaultListParams()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, most recently updated first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			notes, err := c.client.ListNotes(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to list notes: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), notes)
		},
	}

	cmd.Flags().IntVarP(&params.Limit, "limit", "n", models.DefaultListLimit, "page size")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "number of notes to skip")
	return cmd
}

func (c *cli) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			note, err := c.client.GetNote(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get note: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), note)
		},
	}
}

func (c *cli) updateCmd() *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the title and/or content of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var update models.NoteUpdate
			if cmd.Flags().Changed("title") {
				update.Title = &title
			}
			if cmd.Flags().Changed("content") {
				update.Content = &content
			}

			note, err := c.client.UpdateNote(cmd.Context(), id, update)
			if err != nil {
				return fmt.Errorf("failed to update note: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), note)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "new content")
	return cmd
}

func (c *cli) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err = c.client.DeleteNote(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete note: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted note %d\n", id)
			return nil
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid note id %q", raw)
	}
	return id, nil
}
