package exam

import (
	"slices"

	"github.com/google/uuid"
)

// Session is one evaluation run: a frozen configuration, the results
// submitted so far and the number of them that passed.
//
// A Session is not safe for concurrent use. Front ends create one per
// request or per interactive run.
type Session struct {
	id      string
	cfg     Config
	results []Result
	passed  int
}

// NewSession starts an evaluation run against a snapshot of cfg.
func NewSession(cfg Config) *Session {
	return &Session{
		id:  uuid.New().String(),
		cfg: cfg.Clone(),
	}
}

// ID returns the run identifier used to correlate log lines.
func (s *Session) ID() string { return s.id }

// Config returns a copy of the configuration the session evaluates against.
func (s *Session) Config() Config { return s.cfg.Clone() }

// Subjects returns the session's subject names in score order.
func (s *Session) Subjects() []string { return slices.Clone(s.cfg.Subjects) }

// Submit evaluates one examinee and records the result. On error nothing is
// recorded.
func (s *Session) Submit(c Classification, scores []int) (Result, error) {
	if !c.Valid() {
		return Result{}, ErrInvalidClassification
	}
	if len(scores) != len(s.cfg.Subjects) {
		return Result{}, &ScoreCountError{Expected: len(s.cfg.Subjects), Actual: len(scores)}
	}

	r := Result{
		Classification: c,
		Scores:         make([]SubjectScore, len(scores)),
		MeetsSubject:   true,
	}
	for i, score := range scores {
		r.Scores[i] = SubjectScore{Subject: s.cfg.Subjects[i], Score: score}
		r.Total += score
		if score < s.cfg.SubjectThreshold {
			r.MeetsSubject = false
		}
	}
	r.MeetsTotal = r.Total >= s.cfg.TotalThreshold
	r.Passed = r.MeetsTotal && r.MeetsSubject

	s.results = append(s.results, r)
	if r.Passed {
		s.passed++
	}
	return r, nil
}

// SubmitNamed is Submit with each score keyed by subject name instead of
// position. Every configured subject must be present exactly once.
func (s *Session) SubmitNamed(c Classification, scores map[string]int) (Result, error) {
	if !c.Valid() {
		return Result{}, ErrInvalidClassification
	}
	for name := range scores {
		if !s.cfg.HasSubject(name) {
			return Result{}, &SubjectError{Subject: name, Err: ErrUnknownSubject}
		}
	}
	if len(scores) != len(s.cfg.Subjects) {
		return Result{}, &ScoreCountError{Expected: len(s.cfg.Subjects), Actual: len(scores)}
	}

	ordered := make([]int, len(s.cfg.Subjects))
	for i, name := range s.cfg.Subjects {
		ordered[i] = scores[name]
	}
	return s.Submit(c, ordered)
}

// PassCount returns how many recorded results passed.
func (s *Session) PassCount() int { return s.passed }

// Len returns the number of recorded results.
func (s *Session) Len() int { return len(s.results) }

// Results returns a copy of the recorded results in submission order.
func (s *Session) Results() []Result {
	out := make([]Result, len(s.results))
	for i, r := range s.results {
		r.Scores = slices.Clone(r.Scores)
		out[i] = r
	}
	return out
}
