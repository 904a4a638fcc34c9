package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/abhisek/examgate/internal/console"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run the line-oriented menu on stdin/stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		err = console.NewShell(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Exam).Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}
