package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/examgate/internal/batch"
	"github.com/abhisek/examgate/internal/exam"
)

//go:embed templates/*.html
var templateFS embed.FS

// shutdownTimeout bounds how long in-flight requests get after ctx is done.
const shutdownTimeout = 5 * time.Second

// Server is the web form front end. It holds only read-only state; each
// request evaluates against its own configuration and session.
type Server struct {
	defaults exam.Config
	batch    *batch.Evaluator
	log      logrus.FieldLogger
	tmpl     *template.Template
	schema   *jsonschema.Schema
}

// NewServer parses templates and compiles the API schema.
func NewServer(defaults exam.Config, log logrus.FieldLogger) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	schema, err := compileEvaluateSchema()
	if err != nil {
		return nil, fmt.Errorf("compile evaluate schema: %w", err)
	}
	return &Server{
		defaults: defaults.Clone(),
		batch:    batch.NewEvaluator(log),
		log:      log,
		tmpl:     tmpl,
		schema:   schema,
	}, nil
}

// Router builds the mux router with all routes and middleware.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/", s.Index()).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/criteria", s.UpdateCriteria()).Methods(http.MethodPost)
	r.HandleFunc("/subjects", s.AddSubject()).Methods(http.MethodPost)
	r.HandleFunc("/subjects/delete", s.DeleteSubject()).Methods(http.MethodPost)
	r.HandleFunc("/marks", s.MarksEntry()).Methods(http.MethodPost)
	r.HandleFunc("/calculate", s.Calculate()).Methods(http.MethodPost)
	r.HandleFunc("/api/evaluate", s.EvaluateJSON()).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.Health()).Methods(http.MethodGet)
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("web server started")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("web server stopped")
	return nil
}
