package exam

import "fmt"

// Classification is the track an examinee sat the exam under.
type Classification string

const (
	Science    Classification = "s"
	Humanities Classification = "l"
)

// Valid reports whether c is one of the two recognized tracks.
func (c Classification) Valid() bool {
	return c == Science || c == Humanities
}

// String returns the human-readable track name.
func (c Classification) String() string {
	switch c {
	case Science:
		return "science"
	case Humanities:
		return "humanities"
	default:
		return fmt.Sprintf("unknown(%q)", string(c))
	}
}

// SubjectScore is one score tagged with the subject it belongs to.
type SubjectScore struct {
	Subject string `json:"subject"`
	Score   int    `json:"score"`
}

// Result is the fully evaluated submission of one examinee.
type Result struct {
	Classification Classification `json:"classification"`
	Scores         []SubjectScore `json:"scores"`
	Total          int            `json:"total"`
	MeetsTotal     bool           `json:"meets_total"`
	MeetsSubject   bool           `json:"meets_subject"`
	Passed         bool           `json:"passed"`
}

// Values returns the raw scores in subject order.
func (r Result) Values() []int {
	out := make([]int, len(r.Scores))
	for i, s := range r.Scores {
		out[i] = s.Score
	}
	return out
}

// PassedSentence is the sentence form of a pass count shown by the
// interactive front ends.
func PassedSentence(n int) string {
	return fmt.Sprintf("%d examinees passed the two-stage selection of the University entrance examination.", n)
}
