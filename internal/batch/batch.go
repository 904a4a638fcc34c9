package batch

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/examgate/internal/exam"
)

// Rejection records a batch entry that was present but could not be scored.
type Rejection struct {
	Index  int    `json:"index"`
	Entry  string `json:"entry"`
	Reason string `json:"reason"`
}

// Report is the outcome of one batch run.
type Report struct {
	RunID    string        `json:"run_id"`
	Passed   int           `json:"passed"`
	Accepted int           `json:"accepted"`
	Empty    int           `json:"empty"`
	Results  []exam.Result `json:"results"`
	Rejected []Rejection   `json:"rejected,omitempty"`
}

// Evaluator runs batches through a fresh exam.Session each time.
//
// Absent or blank entries are skipped silently. Entries that are present but
// malformed, or that the session rejects, are skipped with a warning and
// listed in Report.Rejected; they never abort the rest of the batch.
type Evaluator struct {
	log logrus.FieldLogger
}

// NewEvaluator creates an Evaluator. A nil logger discards warnings.
func NewEvaluator(log logrus.FieldLogger) *Evaluator {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Evaluator{log: log}
}

// Run evaluates every entry of src against cfg. It stops early only if ctx
// is cancelled, returning what was evaluated so far along with ctx.Err().
func (e *Evaluator) Run(ctx context.Context, cfg exam.Config, src Source) (*Report, error) {
	sess := exam.NewSession(cfg)
	log := e.log.WithField("run_id", sess.ID())
	rep := &Report{RunID: sess.ID()}

	for i := 0; i < src.Len(); i++ {
		if err := ctx.Err(); err != nil {
			rep.fill(sess)
			return rep, err
		}

		raw, ok := src.Entry(i)
		if !ok {
			rep.Empty++
			continue
		}

		if err := submit(sess, raw); err != nil {
			err = withIndex(err, i)
			log.WithFields(logrus.Fields{"entry": i, "raw": raw}).WithError(err).Warn("skipping batch entry")
			rep.Rejected = append(rep.Rejected, Rejection{Index: i, Entry: raw, Reason: err.Error()})
		}
	}

	rep.fill(sess)
	log.WithFields(logrus.Fields{
		"accepted": rep.Accepted,
		"rejected": len(rep.Rejected),
		"passed":   rep.Passed,
	}).Info("batch evaluated")
	return rep, nil
}

func (r *Report) fill(sess *exam.Session) {
	r.Passed = sess.PassCount()
	r.Accepted = sess.Len()
	r.Results = sess.Results()
}

func submit(sess *exam.Session, raw string) error {
	c, scores, err := ParseEntry(raw)
	if err != nil {
		return err
	}
	_, err = sess.Submit(c, scores)
	return err
}

func withIndex(err error, i int) error {
	var entryErr *EntryError
	if errors.As(err, &entryErr) {
		entryErr.Index = i
		return entryErr
	}
	return &EntryError{Index: i, Err: err}
}
