package batch

import (
	"bytes"
	"context"
	"net/url"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examgate/internal/exam"
)

func testLogger() (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.JSONFormatter{})
	return l, &buf
}

func TestRun_FormBatch(t *testing.T) {
	values := url.Values{
		FieldCount: {"4"},
		"exam0":    {"s 160 160 160 160 160"},
		"exam1":    {"l 159 200 200 200 200"},
		"exam3":    {"l 200 200 200 200 200"},
	}
	src, err := NewFormSource(values)
	require.NoError(t, err)

	rep, err := NewEvaluator(nil).Run(context.Background(), exam.DefaultConfig(), src)
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Passed)
	assert.Equal(t, 3, rep.Accepted)
	assert.Equal(t, 1, rep.Empty)
	assert.Empty(t, rep.Rejected)
	assert.Len(t, rep.Results, 3)
	assert.NotEmpty(t, rep.RunID)
}

func TestRun_MalformedEntriesSkipped(t *testing.T) {
	log, buf := testLogger()
	src := LineSource{
		"s 160 160 160 160 160",
		"s 160 160 160 160",
		"q 160 160 160 160 160",
		"l 200 abc 200 200 200",
		"l 200 200 200 200 200",
	}

	rep, err := NewEvaluator(log).Run(context.Background(), exam.DefaultConfig(), src)
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Passed)
	assert.Equal(t, 2, rep.Accepted)
	require.Len(t, rep.Rejected, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{rep.Rejected[0].Index, rep.Rejected[1].Index, rep.Rejected[2].Index})
	assert.Contains(t, rep.Rejected[0].Reason, "must be 5, got 4")
	assert.Contains(t, rep.Rejected[2].Reason, `"abc"`)
	assert.Contains(t, buf.String(), "skipping batch entry")
	assert.Contains(t, buf.String(), rep.RunID)
}

func TestRun_UsesConfigSnapshot(t *testing.T) {
	cfg := exam.Config{TotalThreshold: 10, SubjectThreshold: 5, Subjects: []string{"A", "B"}}
	rep, err := NewEvaluator(nil).Run(context.Background(), cfg, LineSource{"s 5 5", "l 4 100", "s 5 4"})
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Passed)
	assert.Equal(t, 3, rep.Accepted)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := NewEvaluator(nil).Run(ctx, exam.DefaultConfig(), LineSource{"s 160 160 160 160 160"})
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, rep)
	assert.Equal(t, 0, rep.Accepted)
}

func TestNewFormSource_BadCount(t *testing.T) {
	_, err := NewFormSource(url.Values{FieldCount: {"x"}})
	assert.ErrorIs(t, err, exam.ErrInvalidNumber)

	_, err = NewFormSource(url.Values{})
	assert.ErrorIs(t, err, exam.ErrInvalidNumber)
}
