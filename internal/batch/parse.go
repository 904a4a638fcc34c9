package batch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/examgate/internal/exam"
)

// ErrEmptyEntry indicates an entry with no tokens at all.
var ErrEmptyEntry = errors.New("empty entry")

// EntryError describes why a single batch entry could not be parsed or scored.
type EntryError struct {
	Index int
	Token string // offending token, if any
	Err   error
}

// Index is -1 until the batch runner knows which entry failed.
func (e *EntryError) Error() string {
	var prefix string
	if e.Index >= 0 {
		prefix = fmt.Sprintf("entry %d: ", e.Index)
	}
	if e.Token != "" {
		return fmt.Sprintf("%s%q: %v", prefix, e.Token, e.Err)
	}
	return prefix + e.Err.Error()
}

func (e *EntryError) Unwrap() error { return e.Err }

// ParseClassification maps an interface token ("s" or "l") to a Classification.
func ParseClassification(token string) (exam.Classification, error) {
	c := exam.Classification(strings.TrimSpace(token))
	if !c.Valid() {
		return "", exam.ErrInvalidClassification
	}
	return c, nil
}

// ParseEntry splits a "<s|l> score score ..." line into its classification and
// scores. It does not check the score count; that is the session's job.
func ParseEntry(line string) (exam.Classification, []int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, ErrEmptyEntry
	}

	c, err := ParseClassification(fields[0])
	if err != nil {
		return "", nil, &EntryError{Index: -1, Token: fields[0], Err: err}
	}

	scores := make([]int, 0, len(fields)-1)
	for _, f := range fields[1:] {
		n, err := exam.ParseInt(f)
		if err != nil {
			return "", nil, &EntryError{Index: -1, Token: f, Err: exam.ErrInvalidNumber}
		}
		scores = append(scores, n)
	}
	return c, scores, nil
}

// ParseCount parses the number of examinees in a batch.
func ParseCount(s string) (int, error) {
	n, err := exam.ParseInt(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: examinee count must not be negative", exam.ErrInvalidNumber)
	}
	return n, nil
}
