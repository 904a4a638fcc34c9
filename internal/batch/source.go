package batch

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// Source supplies the raw entries of one batch.
type Source interface {
	// Len is the number of examinees the batch claims to contain.
	Len() int
	// Entry returns the raw text for examinee i and whether it was supplied.
	Entry(i int) (string, bool)
}

// Form field names used by the web front end.
const (
	FieldCount       = "num_examinees"
	FieldEntryPrefix = "exam"
)

// EntryField returns the form key holding examinee i.
func EntryField(i int) string {
	return fmt.Sprintf("%s%d", FieldEntryPrefix, i)
}

// FormSource reads a batch from submitted form values: num_examinees plus
// exam0..exam{N-1}.
type FormSource struct {
	values url.Values
	n      int
}

// NewFormSource validates the examinee count in values.
func NewFormSource(values url.Values) (*FormSource, error) {
	n, err := ParseCount(values.Get(FieldCount))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", FieldCount, err)
	}
	return &FormSource{values: values, n: n}, nil
}

func (f *FormSource) Len() int { return f.n }

func (f *FormSource) Entry(i int) (string, bool) {
	v := f.values.Get(EntryField(i))
	if strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// LineSource is a batch held as one entry per line.
type LineSource []string

func (l LineSource) Len() int { return len(l) }

func (l LineSource) Entry(i int) (string, bool) {
	if i < 0 || i >= len(l) || strings.TrimSpace(l[i]) == "" {
		return "", false
	}
	return l[i], true
}

// ReadLines reads the stdin batch format: a count line followed by that many
// entry lines. Missing trailing lines are treated as absent entries.
func ReadLines(r io.Reader) (LineSource, error) {
	sc := bufio.NewScanner(r)

	var n int
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var err error
		if n, err = ParseCount(line); err != nil {
			return nil, fmt.Errorf("examinee count: %w", err)
		}
		break
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read count: %w", err)
	}

	lines := make(LineSource, n)
	for i := 0; i < n && sc.Scan(); i++ {
		lines[i] = sc.Text()
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}
	return lines, nil
}
