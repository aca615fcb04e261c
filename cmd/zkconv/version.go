package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/zkconv"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of zkconv",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "zkconv version %s\n", strings.TrimSpace(zkconv.Version))
		},
	}
}
