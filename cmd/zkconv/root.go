package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/zkconv"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. The root command itself runs a single
// conversion.
func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "zkconv <input_dir> <output_dir>",
		Short: "Convert Zettelkasten notes into front matter notes",
		Long: `zkconv converts notes named "<ID> <Title>.md" into notes with YAML front matter.
Title:, Date: and Keywords: lines become front matter, [[<ID>]] links are
rewritten to [[<ID> <Title>|<ID>]] and Backlinks: lines are dropped.

The output directory is deleted and rebuilt on every run.

An input directory named like a subcommand (watch, inspect, version, help,
completion) must be given as a path, e.g. "zkconv ./watch vault".`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			slog.SetDefault(logger)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := zkconv.Convert(cmd.Context(), args[0], args[1],
				zkconv.WithLogger(slog.Default()),
				zkconv.WithProgress(cmd.OutOrStdout()),
			)
			return err
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
