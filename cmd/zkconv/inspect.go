package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/zkconv/pkg/adapters/fs"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the front matter of a converted note as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			note, err := fs.NewFrontMatterSerializer().Parse(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(note.Metadata)
		},
	}
}
