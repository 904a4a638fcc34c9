package exam

import (
	"errors"
	"fmt"
)

// InvalidNumberMessage is the user-facing text for ErrInvalidNumber.
const InvalidNumberMessage = "Invalid input. Please enter integer values."

var (
	// ErrInvalidClassification indicates a classification outside science/humanities.
	ErrInvalidClassification = errors.New("classification must be 's' for science or 'l' for humanities")

	// ErrScoreCountMismatch indicates the number of scores does not match the
	// number of configured subjects. Returned wrapped in *ScoreCountError.
	ErrScoreCountMismatch = errors.New("score count does not match subject count")

	// ErrInvalidNumber indicates text that should have been an integer.
	// Front ends show InvalidNumberMessage to the user.
	ErrInvalidNumber = errors.New("invalid integer value")

	// ErrDuplicateSubject indicates an add of a subject that is already configured.
	ErrDuplicateSubject = errors.New("already exists in the subjects list")

	// ErrUnknownSubject indicates a subject that is not configured.
	ErrUnknownSubject = errors.New("not found in the subjects list")

	// ErrEmptySubject indicates a blank subject name.
	ErrEmptySubject = errors.New("subject name must not be empty")
)

// ScoreCountError reports how many scores were expected and how many arrived.
type ScoreCountError struct {
	Expected int
	Actual   int
}

func (e *ScoreCountError) Error() string {
	return fmt.Sprintf("number of subject scores must be %d, got %d", e.Expected, e.Actual)
}

func (e *ScoreCountError) Unwrap() error { return ErrScoreCountMismatch }

// SubjectError ties a subject name to ErrDuplicateSubject or ErrUnknownSubject.
type SubjectError struct {
	Subject string
	Err     error
}

func (e *SubjectError) Error() string {
	return fmt.Sprintf("%s %v", e.Subject, e.Err)
}

func (e *SubjectError) Unwrap() error { return e.Err }
