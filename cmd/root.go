package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abhisek/examgate/internal/app"
	"github.com/abhisek/examgate/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "examgate",
	Short: "Entrance exam pass/fail evaluator",
	Long: "examgate scores entrance-exam results against a total-score threshold and a per-subject minimum.\n" +
		"Without a subcommand it starts the interactive terminal UI.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return app.Run(cfg.Exam)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	registerConfigFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(judgeCmd)
	rootCmd.AddCommand(versionCmd)
}

func registerConfigFlags(fs *pflag.FlagSet) {
	fs.Int("total", 0, "Passing total score (overrides EXAMGATE_TOTAL_THRESHOLD)")
	fs.Int("subject", 0, "Passing score for every subject (overrides EXAMGATE_SUBJECT_THRESHOLD)")
	fs.StringSlice("subjects", nil, "Ordered subject list, comma-separated (overrides EXAMGATE_SUBJECTS)")
	fs.String("env-file", ".env", "Optional .env file to load before reading the environment")
}

// resolveConfig layers defaults, the .env file, the environment and finally
// flags, then validates the result.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	envFile, _ := flags.GetString("env-file")
	if err := config.LoadDotEnv(envFile); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	if flags.Changed("total") {
		cfg.Exam.TotalThreshold, _ = flags.GetInt("total")
	}
	if flags.Changed("subject") {
		cfg.Exam.SubjectThreshold, _ = flags.GetInt("subject")
	}
	if flags.Changed("subjects") {
		subjects, _ := flags.GetStringSlice("subjects")
		cfg.Exam.Subjects = config.SplitSubjects(strings.Join(subjects, ","))
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("resolve config: %w", err)
	}
	return cfg, nil
}
