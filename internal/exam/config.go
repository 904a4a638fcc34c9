package exam

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Default configuration used by every front end when nothing overrides it.
const (
	DefaultTotalThreshold   = 350
	DefaultSubjectThreshold = 160
)

// DefaultSubjects returns a fresh copy of the default subject list.
func DefaultSubjects() []string {
	return []string{"English", "Mathematics", "Science", "Japanese", "Geography"}
}

// Config is the pass/fail configuration for an evaluation run.
//
// The position of a name in Subjects is the position of its score in a
// submission. Adding or removing subjects therefore changes the meaning of
// positional score lists; a Session copies Subjects when it is created, so
// only sessions created after the change see it.
type Config struct {
	TotalThreshold   int      `json:"total_threshold"`
	SubjectThreshold int      `json:"subject_threshold"`
	Subjects         []string `json:"subjects" validate:"unique,dive,required"`
}

// DefaultConfig returns the stock thresholds and subject list.
func DefaultConfig() Config {
	return Config{
		TotalThreshold:   DefaultTotalThreshold,
		SubjectThreshold: DefaultSubjectThreshold,
		Subjects:         DefaultSubjects(),
	}
}

// Clone returns a copy that shares no memory with c.
func (c Config) Clone() Config {
	c.Subjects = slices.Clone(c.Subjects)
	if c.Subjects == nil {
		c.Subjects = []string{}
	}
	return c
}

// HasSubject reports whether name is configured. Matching is exact and case-sensitive.
func (c Config) HasSubject(name string) bool {
	return slices.Contains(c.Subjects, name)
}

// AddSubject appends name to the subject list.
func (c *Config) AddSubject(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptySubject
	}
	if c.HasSubject(name) {
		return &SubjectError{Subject: name, Err: ErrDuplicateSubject}
	}
	c.Subjects = append(c.Subjects, name)
	return nil
}

// RemoveSubject deletes name from the subject list, keeping the order of the rest.
func (c *Config) RemoveSubject(name string) error {
	i := slices.Index(c.Subjects, name)
	if i < 0 {
		return &SubjectError{Subject: name, Err: ErrUnknownSubject}
	}
	c.Subjects = slices.Delete(c.Subjects, i, i+1)
	return nil
}

// SetThresholds replaces both thresholds. Any integer is accepted.
func (c *Config) SetThresholds(total, subject int) {
	c.TotalThreshold, c.SubjectThreshold = total, subject
}

// ParseThresholds parses user-entered threshold text. Both values must parse
// or neither is returned.
func ParseThresholds(total, subject string) (int, int, error) {
	t, err := ParseInt(total)
	if err != nil {
		return 0, 0, fmt.Errorf("total threshold: %w", err)
	}
	s, err := ParseInt(subject)
	if err != nil {
		return 0, 0, fmt.Errorf("subject threshold: %w", err)
	}
	return t, s, nil
}

// ParseInt parses a base-10 integer, reporting ErrInvalidNumber on failure.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return n, nil
}
