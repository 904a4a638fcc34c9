package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/examgate/internal/config"
)

// New builds a logrus logger writing to w with the configured level and format.
func New(w io.Writer, cfg config.LogConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)

	switch cfg.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format: %q", cfg.Format)
	}
	return l, nil
}
