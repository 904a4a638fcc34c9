package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/examgate/internal/batch"
	"github.com/abhisek/examgate/internal/console"
	"github.com/abhisek/examgate/internal/logging"
)

var judgeCmd = &cobra.Command{
	Use:   "judge",
	Short: "Read a batch from stdin and print the number of passing examinees",
	Long: "judge reads the examinee count on the first line, then one line per examinee:\n" +
		"a classification token (s or l) followed by one score per subject.\n" +
		"It prints the pass count as a bare integer. Skipped entries are logged to stderr.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		log, err := logging.New(os.Stderr, cfg.Log)
		if err != nil {
			return err
		}

		_, err = console.Judge(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Exam, batch.NewEvaluator(log))
		return err
	},
}
