package web

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/examgate/internal/batch"
	"github.com/abhisek/examgate/internal/exam"
)

//go:embed evaluate_schema.json
var evaluateSchemaJSON []byte

const evaluateSchemaURL = "schema://evaluate.json"

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

type evaluateRequest struct {
	TotalThreshold   *int              `json:"total_threshold"`
	SubjectThreshold *int              `json:"subject_threshold"`
	Subjects         []string          `json:"subjects"`
	Examinees        []examineeRequest `json:"examinees"`
}

type examineeRequest struct {
	Classification string         `json:"classification"`
	Scores         map[string]int `json:"scores"`
}

type evaluateResponse struct {
	RunID    string            `json:"run_id"`
	Passed   int               `json:"passed"`
	Accepted int               `json:"accepted"`
	Results  []exam.Result     `json:"results"`
	Rejected []batch.Rejection `json:"rejected"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func compileEvaluateSchema() (*jsonschema.Schema, error) {
	var doc any
	if err := json.Unmarshal(evaluateSchemaJSON, &doc); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(evaluateSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(evaluateSchemaURL)
}

// EvaluateJSON evaluates a batch whose scores are keyed by subject name.
// Per-examinee failures are reported in "rejected"; only a body that does
// not match the schema fails the whole request.
func (s *Server) EvaluateJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
			return
		}

		req, err := s.decodeEvaluate(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		cfg := s.defaults.Clone()
		if req.TotalThreshold != nil {
			cfg.TotalThreshold = *req.TotalThreshold
		}
		if req.SubjectThreshold != nil {
			cfg.SubjectThreshold = *req.SubjectThreshold
		}
		if req.Subjects != nil {
			cfg.Subjects = req.Subjects
		}

		sess := exam.NewSession(cfg)
		log := s.log.WithField("run_id", sess.ID())
		resp := evaluateResponse{RunID: sess.ID(), Rejected: []batch.Rejection{}}

		for i, e := range req.Examinees {
			c, err := batch.ParseClassification(e.Classification)
			if err == nil {
				_, err = sess.SubmitNamed(c, e.Scores)
			}
			if err != nil {
				log.WithFields(logrus.Fields{"entry": i}).WithError(err).Warn("skipping examinee")
				resp.Rejected = append(resp.Rejected, batch.Rejection{Index: i, Reason: err.Error()})
			}
		}

		resp.Passed = sess.PassCount()
		resp.Accepted = sess.Len()
		resp.Results = sess.Results()
		writeJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) decodeEvaluate(raw []byte) (*evaluateRequest, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := s.schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var req evaluateRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	return &req, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
