package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/zkconv"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <input_dir> <output_dir>",
		Short: "Convert, then rebuild the output whenever the input changes",
		Long: `Runs a conversion, then watches the input directory and its media directory.
Every change triggers a full rebuild of the output directory. Stop with Ctrl+C.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			c, err := zkconv.New(args[0], args[1],
				zkconv.WithLogger(slog.Default()),
				zkconv.WithProgress(cmd.OutOrStdout()),
			)
			if err != nil {
				return err
			}
			if _, err := c.Run(ctx); err != nil {
				return err
			}

			slog.Info("watching for changes", "input", args[0])
			return c.Watch(ctx, nil)
		},
	}
}
