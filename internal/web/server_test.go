package web

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examgate/internal/exam"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	s, err := NewServer(exam.DefaultConfig(), log)
	require.NoError(t, err)
	return s
}

func postForm(t *testing.T, s *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

// state builds the hidden configuration fields for cfg.
func state(cfg exam.Config) url.Values {
	return url.Values{
		fieldTotal:        {strconv.Itoa(cfg.TotalThreshold)},
		fieldSubjectScore: {strconv.Itoa(cfg.SubjectThreshold)},
		fieldSubjectsSent: {"1"},
		fieldSubject:      append([]string(nil), cfg.Subjects...),
	}
}

func TestIndex(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, subj := range exam.DefaultSubjects() {
		assert.Contains(t, body, subj)
	}
	assert.Contains(t, body, "Total score: 350")
}

func TestUpdateCriteria(t *testing.T) {
	s := newTestServer(t)
	form := url.Values{fieldSubjectsSent: {"1"}, fieldSubject: {"A", "B"}}
	form.Set(fieldNewTotal, "300")
	form.Set(fieldNewSubjectScore, "100")

	rec := postForm(t, s, "/criteria", form)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Passing criteria updated successfully.")
	assert.Contains(t, rec.Body.String(), `name="passing_total_score" value="300"`)
}

func TestUpdateCriteria_InvalidNumber(t *testing.T) {
	s := newTestServer(t)
	form := url.Values{fieldNewTotal: {"abc"}, fieldNewSubjectScore: {"100"}}

	rec := postForm(t, s, "/criteria", form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid input. Please enter integer values.")
	assert.Contains(t, rec.Body.String(), "Total score: 350")
}

func TestAddAndDeleteSubject(t *testing.T) {
	s := newTestServer(t)

	form := state(exam.DefaultConfig())
	form.Set(fieldNewSubject, "History")
	rec := postForm(t, s, "/subjects", form)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "History added to the subjects list.")
	assert.Contains(t, rec.Body.String(), `name="subject" value="History"`)

	form.Set(fieldNewSubject, "English")
	rec = postForm(t, s, "/subjects", form)
	assert.Contains(t, rec.Body.String(), "English already exists in the subjects list")

	del := state(exam.DefaultConfig())
	del.Set(fieldDeleteSubject, "Science")
	rec = postForm(t, s, "/subjects/delete", del)
	assert.Contains(t, rec.Body.String(), "Science deleted from the subjects list.")
	assert.NotContains(t, rec.Body.String(), `name="subject" value="Science"`)

	del.Set(fieldDeleteSubject, "Physics")
	rec = postForm(t, s, "/subjects/delete", del)
	assert.Contains(t, rec.Body.String(), "Physics not found in the subjects list")
}

func TestDeleteLastSubjectStaysDeleted(t *testing.T) {
	s := newTestServer(t)
	form := state(exam.Config{TotalThreshold: 0, SubjectThreshold: 0, Subjects: []string{"Only"}})
	form.Set(fieldDeleteSubject, "Only")
	rec := postForm(t, s, "/subjects/delete", form)
	assert.Contains(t, rec.Body.String(), "(none)")
}

func TestMarksEntry(t *testing.T) {
	s := newTestServer(t)
	form := state(exam.DefaultConfig())
	form.Set("num_examinees", "3")

	rec := postForm(t, s, "/marks", form)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `name="exam0"`)
	assert.Contains(t, body, `name="exam2"`)
	assert.NotContains(t, body, `name="exam3"`)
}

func TestMarksEntry_BadCount(t *testing.T) {
	s := newTestServer(t)
	form := state(exam.DefaultConfig())
	form.Set("num_examinees", "lots")
	rec := postForm(t, s, "/marks", form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid input. Please enter integer values.")
}

func TestCalculate(t *testing.T) {
	s := newTestServer(t)
	form := state(exam.DefaultConfig())
	form.Set("num_examinees", "4")
	form.Set("exam0", "s 160 160 160 160 160")
	form.Set("exam1", "l 159 200 200 200 200")
	form.Set("exam2", "l 200 200 200 200 200")
	form.Set("exam3", "s 1 2")

	rec := postForm(t, s, "/calculate", form)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "2 examinees passed the two-stage selection")
	assert.Contains(t, body, "Skipped entries")
	assert.Contains(t, body, "must be 5, got 2")
}

func TestCalculate_UsesCarriedThresholds(t *testing.T) {
	s := newTestServer(t)
	form := state(exam.Config{TotalThreshold: 10, SubjectThreshold: 5, Subjects: []string{"A", "B"}})
	form.Set("num_examinees", "2")
	form.Set("exam0", "s 5 5")
	form.Set("exam1", "l 5 4")

	rec := postForm(t, s, "/calculate", form)
	assert.Contains(t, rec.Body.String(), "1 examinees passed")
}

func TestEvaluateJSON(t *testing.T) {
	s := newTestServer(t)
	body := `{
		"examinees": [
			{"classification": "s", "scores": {"English": 160, "Mathematics": 160, "Science": 160, "Japanese": 160, "Geography": 160}},
			{"classification": "l", "scores": {"English": 159, "Mathematics": 200, "Science": 200, "Japanese": 200, "Geography": 200}},
			{"classification": "x", "scores": {"English": 200}},
			{"classification": "l", "scores": {"English": 200, "Mathematics": 200, "Science": 200, "Japanese": 200, "History": 200}}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp evaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Passed)
	assert.Equal(t, 2, resp.Accepted)
	require.Len(t, resp.Rejected, 2)
	assert.Equal(t, 2, resp.Rejected[0].Index)
	assert.Equal(t, 3, resp.Rejected[1].Index)
	assert.Contains(t, resp.Rejected[1].Reason, "History")
	assert.NotEmpty(t, resp.RunID)
}

func TestEvaluateJSON_CustomConfig(t *testing.T) {
	s := newTestServer(t)
	body := `{"total_threshold": 10, "subject_threshold": 5, "subjects": ["A", "B"],
		"examinees": [{"classification": "s", "scores": {"A": 5, "B": 5}}]}`
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp evaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Passed)
}

func TestEvaluateJSON_SchemaViolations(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{`},
		{"missing examinees", `{}`},
		{"fractional score", `{"examinees": [{"classification": "s", "scores": {"A": 1.5}}]}`},
		{"duplicate subjects", `{"subjects": ["A", "A"], "examinees": []}`},
		{"unknown field", `{"examinees": [], "extra": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/evaluate", bytes.NewBufferString(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestConfigFromForm(t *testing.T) {
	defaults := exam.DefaultConfig()

	cfg, err := configFromForm(url.Values{}, defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults, cfg)

	cfg, err = configFromForm(url.Values{fieldSubjectsSent: {"1"}}, defaults)
	require.NoError(t, err)
	assert.Empty(t, cfg.Subjects)

	_, err = configFromForm(url.Values{fieldTotal: {"x"}}, defaults)
	assert.ErrorIs(t, err, exam.ErrInvalidNumber)

	assert.Len(t, defaults.Subjects, 5, "defaults must not be mutated")
}
