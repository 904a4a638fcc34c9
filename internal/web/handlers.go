package web

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/abhisek/examgate/internal/batch"
	"github.com/abhisek/examgate/internal/exam"
)

// defaultExaminees pre-fills the examinee count on the index page.
const defaultExaminees = 5

type entryField struct {
	Number int
	Field  string
}

type pageData struct {
	Config       exam.Config
	Message      string
	Error        string
	NumExaminees int
	Entries      []entryField
	Report       *batch.Report
}

// Index renders the configuration page. POST requests carry the current
// configuration back in (the "Back" button on the results page).
func (s *Server) Index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := s.parseConfig(r)
		data := pageData{Config: cfg, NumExaminees: defaultExaminees}
		if err != nil {
			data.Error = exam.InvalidNumberMessage
		}
		s.render(w, http.StatusOK, "index", data)
	}
}

// UpdateCriteria replaces both thresholds.
func (s *Server) UpdateCriteria() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, _ := s.parseConfig(r)
		data := pageData{Config: cfg, NumExaminees: defaultExaminees}

		total, subject, err := exam.ParseThresholds(r.PostForm.Get(fieldNewTotal), r.PostForm.Get(fieldNewSubjectScore))
		if err != nil {
			data.Error = exam.InvalidNumberMessage
			s.render(w, http.StatusBadRequest, "index", data)
			return
		}
		data.Config.SetThresholds(total, subject)
		data.Message = "Passing criteria updated successfully."
		s.render(w, http.StatusOK, "index", data)
	}
}

// AddSubject appends a subject to the carried configuration.
func (s *Server) AddSubject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.editSubjects(w, r, fieldNewSubject, "added to", (*exam.Config).AddSubject)
	}
}

// DeleteSubject removes a subject from the carried configuration.
func (s *Server) DeleteSubject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.editSubjects(w, r, fieldDeleteSubject, "deleted from", (*exam.Config).RemoveSubject)
	}
}

func (s *Server) editSubjects(w http.ResponseWriter, r *http.Request, field, verb string, edit func(*exam.Config, string) error) {
	cfg, err := s.parseConfig(r)
	data := pageData{Config: cfg, NumExaminees: defaultExaminees}
	if err != nil {
		data.Error = exam.InvalidNumberMessage
		s.render(w, http.StatusBadRequest, "index", data)
		return
	}

	name := r.PostForm.Get(field)
	if err := edit(&data.Config, name); err != nil {
		// Duplicate and unknown subjects are informational, not failures.
		data.Message = err.Error() + "."
		s.render(w, http.StatusOK, "index", data)
		return
	}
	data.Message = fmt.Sprintf("%s %s the subjects list.", name, verb)
	s.render(w, http.StatusOK, "index", data)
}

// MarksEntry renders one entry field per examinee.
func (s *Server) MarksEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := s.parseConfig(r)
		data := pageData{Config: cfg, NumExaminees: defaultExaminees}
		if err != nil {
			data.Error = exam.InvalidNumberMessage
			s.render(w, http.StatusBadRequest, "index", data)
			return
		}

		n, err := batch.ParseCount(r.PostForm.Get(batch.FieldCount))
		if err != nil {
			data.Error = exam.InvalidNumberMessage
			s.render(w, http.StatusBadRequest, "index", data)
			return
		}

		data.NumExaminees = n
		data.Entries = make([]entryField, n)
		for i := range data.Entries {
			data.Entries[i] = entryField{Number: i + 1, Field: batch.EntryField(i)}
		}
		s.render(w, http.StatusOK, "marks", data)
	}
}

// Calculate evaluates the submitted batch and renders the pass count.
func (s *Server) Calculate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := s.parseConfig(r)
		data := pageData{Config: cfg, NumExaminees: defaultExaminees}
		if err != nil {
			data.Error = exam.InvalidNumberMessage
			s.render(w, http.StatusBadRequest, "index", data)
			return
		}

		src, err := batch.NewFormSource(r.PostForm)
		if err != nil {
			data.Error = exam.InvalidNumberMessage
			s.render(w, http.StatusBadRequest, "index", data)
			return
		}

		rep, err := s.batch.Run(r.Context(), cfg, src)
		if err != nil {
			http.Error(w, "request cancelled", http.StatusServiceUnavailable)
			return
		}
		data.Report = rep
		s.render(w, http.StatusOK, "result", data)
	}
}

// Health reports liveness.
func (s *Server) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (s *Server) parseConfig(r *http.Request) (exam.Config, error) {
	if err := r.ParseForm(); err != nil {
		return s.defaults.Clone(), fmt.Errorf("parse form: %w", err)
	}
	return configFromForm(r.PostForm, s.defaults)
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data pageData) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		s.log.WithError(err).WithField("template", name).Error("render failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
