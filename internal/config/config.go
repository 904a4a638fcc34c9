package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/abhisek/examgate/internal/exam"
)

// Config holds everything the front ends need at startup.
type Config struct {
	// Exam is the initial evaluation configuration. Front ends copy it per
	// session or request; it is never mutated in place after startup.
	Exam exam.Config

	// Addr is the listen address for the web front end. Default: ":8080".
	Addr string `validate:"required"`

	Log LogConfig
}

// LogConfig selects logrus level and formatter.
type LogConfig struct {
	Level  string `validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `validate:"oneof=text json"`
}

// Default returns a Config with the stock exam settings.
func Default() Config {
	return Config{
		Exam: exam.DefaultConfig(),
		Addr: ":8080",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadDotEnv loads variables from the given .env files (default ".env") into
// the process environment. Missing files are ignored; existing variables win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv("EXAMGATE_TOTAL_THRESHOLD"); v != "" {
		n, err := exam.ParseInt(v)
		if err != nil {
			return Config{}, fmt.Errorf("EXAMGATE_TOTAL_THRESHOLD: %w", err)
		}
		cfg.Exam.TotalThreshold = n
	}
	if v := os.Getenv("EXAMGATE_SUBJECT_THRESHOLD"); v != "" {
		n, err := exam.ParseInt(v)
		if err != nil {
			return Config{}, fmt.Errorf("EXAMGATE_SUBJECT_THRESHOLD: %w", err)
		}
		cfg.Exam.SubjectThreshold = n
	}
	if v := os.Getenv("EXAMGATE_SUBJECTS"); v != "" {
		cfg.Exam.Subjects = SplitSubjects(v)
	}
	if v := os.Getenv("EXAMGATE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("EXAMGATE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("EXAMGATE_LOG_FORMAT"); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}

	return cfg, nil
}

// SplitSubjects parses a comma-separated subject list, dropping blanks.
func SplitSubjects(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks subject names are non-empty and unique and the log
// settings are recognized.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed %q", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
