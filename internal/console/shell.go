package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/examgate/internal/batch"
	"github.com/abhisek/examgate/internal/exam"
)

// Shell is the line-oriented interactive menu. It owns its configuration;
// each examination run gets a fresh session built from it.
type Shell struct {
	in  *bufio.Scanner
	out io.Writer
	cfg exam.Config
}

// NewShell creates a shell reading from r and writing prompts to w.
func NewShell(r io.Reader, w io.Writer, cfg exam.Config) *Shell {
	return &Shell{
		in:  bufio.NewScanner(r),
		out: w,
		cfg: cfg.Clone(),
	}
}

// Config returns a copy of the shell's current configuration.
func (s *Shell) Config() exam.Config { return s.cfg.Clone() }

// Run shows the menu until the user exits, input ends or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(s.out, "1. Add Subject")
		fmt.Fprintln(s.out, "2. Delete Subject")
		fmt.Fprintln(s.out, "3. Change Passing/Failing Criteria")
		fmt.Fprintln(s.out, "4. Run Entrance Exam")
		fmt.Fprintln(s.out, "5. Exit")
		choice, err := s.prompt("Enter your choice (1/2/3/4/5): ")
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case "1":
			err = s.AddSubject()
		case "2":
			err = s.DeleteSubject()
		case "3":
			err = s.UpdateCriteria()
		case "4":
			_, err = s.RunExam(ctx)
		case "5":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

// AddSubject prompts for a subject name and appends it.
func (s *Shell) AddSubject() error {
	name, err := s.prompt("Enter the name of the subject to add: ")
	if err != nil {
		return err
	}
	if err := s.cfg.AddSubject(name); err != nil {
		fmt.Fprintf(s.out, "%v.\n", err)
		return nil
	}
	fmt.Fprintf(s.out, "%s added to the subjects list.\n", name)
	return nil
}

// DeleteSubject prompts for a subject name and removes it.
func (s *Shell) DeleteSubject() error {
	name, err := s.prompt("Enter the name of the subject to delete: ")
	if err != nil {
		return err
	}
	if err := s.cfg.RemoveSubject(name); err != nil {
		fmt.Fprintf(s.out, "%v.\n", err)
		return nil
	}
	fmt.Fprintf(s.out, "%s deleted from the subjects list.\n", name)
	return nil
}

// UpdateCriteria prompts for both thresholds and replaces them only if both parse.
func (s *Shell) UpdateCriteria() error {
	total, err := s.prompt("Enter the new passing total score: ")
	if err != nil {
		return err
	}
	subject, err := s.prompt("Enter the new passing subject score: ")
	if err != nil {
		return err
	}
	t, sub, err := exam.ParseThresholds(total, subject)
	if err != nil {
		fmt.Fprintln(s.out, exam.InvalidNumberMessage)
		return nil
	}
	s.cfg.SetThresholds(t, sub)
	fmt.Fprintln(s.out, "Passing criteria updated successfully.")
	return nil
}

// RunExam collects every examinee interactively and reports the pass count.
// Invalid answers are re-asked rather than aborting the run.
func (s *Shell) RunExam(ctx context.Context) (*exam.Session, error) {
	n, err := s.promptInt("Enter the number of examinees: ", batch.ParseCount)
	if err != nil {
		return nil, err
	}

	sess := exam.NewSession(s.cfg)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return sess, err
		}

		c, err := s.promptClassification(i + 1)
		if err != nil {
			return sess, err
		}
		scores := make([]int, 0, len(sess.Subjects()))
		for _, subject := range sess.Subjects() {
			score, err := s.promptInt(fmt.Sprintf("Enter score for %s: ", subject), exam.ParseInt)
			if err != nil {
				return sess, err
			}
			scores = append(scores, score)
		}
		if _, err := sess.Submit(c, scores); err != nil {
			fmt.Fprintln(s.out, err)
		}
	}

	fmt.Fprintln(s.out, exam.PassedSentence(sess.PassCount()))
	return sess, nil
}

func (s *Shell) promptClassification(n int) (exam.Classification, error) {
	for {
		tok, err := s.prompt(fmt.Sprintf("Enter classification for examinee %d (s/l): ", n))
		if err != nil {
			return "", err
		}
		c, err := batch.ParseClassification(tok)
		if err == nil {
			return c, nil
		}
		fmt.Fprintln(s.out, "Classification must be 's' for science or 'l' for humanities.")
	}
}

func (s *Shell) promptInt(label string, parse func(string) (int, error)) (int, error) {
	for {
		text, err := s.prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := parse(text)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(s.out, exam.InvalidNumberMessage)
	}
}

func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// endOfInput treats a closed input stream as a normal exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
