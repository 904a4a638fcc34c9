package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examgate/internal/batch"
	"github.com/abhisek/examgate/internal/exam"
)

func lines(ls ...string) *strings.Reader {
	return strings.NewReader(strings.Join(ls, "\n") + "\n")
}

func TestJudge(t *testing.T) {
	in := lines(
		"3",
		"s 160 160 160 160 160",
		"l 159 200 200 200 200",
		"l 200 200 200 200 200",
	)
	var out bytes.Buffer
	rep, err := Judge(context.Background(), in, &out, exam.DefaultConfig(), batch.NewEvaluator(nil))
	require.NoError(t, err)
	assert.Equal(t, "2\n", out.String())
	assert.Equal(t, 3, rep.Accepted)
}

func TestJudge_BadCount(t *testing.T) {
	var out bytes.Buffer
	_, err := Judge(context.Background(), lines("x"), &out, exam.DefaultConfig(), batch.NewEvaluator(nil))
	assert.ErrorIs(t, err, exam.ErrInvalidNumber)
	assert.Empty(t, out.String())
}

func TestShell_RunExam(t *testing.T) {
	in := lines(
		"4",
		"2",
		"s", "160", "160", "160", "160", "160",
		"q", "l", "159", "abc", "200", "200", "200", "200",
		"5",
	)
	var out bytes.Buffer
	sh := NewShell(in, &out, exam.DefaultConfig())
	require.NoError(t, sh.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Enter the number of examinees: ")
	assert.Contains(t, text, "Enter classification for examinee 2 (s/l): ")
	assert.Contains(t, text, "Enter score for Geography: ")
	assert.Contains(t, text, "Classification must be 's' for science or 'l' for humanities.")
	assert.Contains(t, text, exam.InvalidNumberMessage)
	assert.Contains(t, text, exam.PassedSentence(1))
	assert.Contains(t, text, "Goodbye!")
}

func TestShell_SubjectsAndCriteria(t *testing.T) {
	in := lines(
		"1", "History",
		"1", "History",
		"2", "Physics",
		"2", "English",
		"3", "abc", "100",
		"3", "300", "100",
		"9",
		"5",
	)
	var out bytes.Buffer
	sh := NewShell(in, &out, exam.DefaultConfig())
	require.NoError(t, sh.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "History added to the subjects list.")
	assert.Contains(t, text, "History already exists in the subjects list")
	assert.Contains(t, text, "Physics not found in the subjects list")
	assert.Contains(t, text, "English deleted from the subjects list.")
	assert.Contains(t, text, "Invalid input. Please enter integer values.")
	assert.Contains(t, text, "Passing criteria updated successfully.")
	assert.Contains(t, text, "Invalid choice. Please try again.")

	cfg := sh.Config()
	assert.Equal(t, []string{"Mathematics", "Science", "Japanese", "Geography", "History"}, cfg.Subjects)
	assert.Equal(t, 300, cfg.TotalThreshold)
	assert.Equal(t, 100, cfg.SubjectThreshold)
}

func TestShell_RunExamUsesEditedSubjects(t *testing.T) {
	in := lines("1", "0", "1", "s", "1", "1", "1", "1", "1")
	sh := NewShell(in, &bytes.Buffer{}, exam.Config{TotalThreshold: 0, SubjectThreshold: 0, Subjects: exam.DefaultSubjects()})

	require.NoError(t, sh.UpdateCriteria())
	sess, err := sh.RunExam(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sess.Len())
	assert.Equal(t, 1, sess.PassCount())
}

func TestShell_EOFEndsQuietly(t *testing.T) {
	var out bytes.Buffer
	sh := NewShell(strings.NewReader("4\n2\ns\n"), &out, exam.DefaultConfig())
	assert.NoError(t, sh.Run(context.Background()))
}
