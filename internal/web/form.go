package web

import (
	"net/url"
	"strings"

	"github.com/abhisek/examgate/internal/exam"
)

// Form fields carrying the page's configuration between requests. Every
// request rebuilds its own exam.Config from them, so nothing is shared
// between users.
const (
	fieldTotal        = "passing_total_score"
	fieldSubjectScore = "passing_subject_score"
	fieldSubject      = "subject"
	fieldSubjectsSent = "subjects_sent"

	fieldNewTotal        = "new_total_score"
	fieldNewSubjectScore = "new_subject_score"
	fieldNewSubject      = "new_subject"
	fieldDeleteSubject   = "delete_subject"
)

// configFromForm overlays the carried configuration in form onto defaults.
// Missing fields keep their default; present but non-integer thresholds
// return exam.ErrInvalidNumber.
func configFromForm(form url.Values, defaults exam.Config) (exam.Config, error) {
	cfg := defaults.Clone()

	if form.Get(fieldSubjectsSent) != "" {
		cfg.Subjects = cfg.Subjects[:0]
		for _, s := range form[fieldSubject] {
			s = strings.TrimSpace(s)
			if s == "" || cfg.HasSubject(s) {
				continue
			}
			cfg.Subjects = append(cfg.Subjects, s)
		}
	}

	if _, ok := form[fieldTotal]; ok {
		n, err := exam.ParseInt(form.Get(fieldTotal))
		if err != nil {
			return cfg, err
		}
		cfg.TotalThreshold = n
	}
	if _, ok := form[fieldSubjectScore]; ok {
		n, err := exam.ParseInt(form.Get(fieldSubjectScore))
		if err != nil {
			return cfg, err
		}
		cfg.SubjectThreshold = n
	}
	return cfg, nil
}
