package examination

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/examgate/internal/batch"
	"github.com/abhisek/examgate/internal/exam"
	"github.com/abhisek/examgate/internal/router"
	"github.com/abhisek/examgate/internal/screens/result"
	"github.com/abhisek/examgate/internal/ui/components"
	"github.com/abhisek/examgate/internal/ui/layout"
	"github.com/abhisek/examgate/internal/ui/theme"
)

type phase int

const (
	phaseCount phase = iota
	phaseClassification
	phaseScores
)

// Screen walks through one examination run: the number of examinees, then
// for each examinee a classification and one score per subject.
type Screen struct {
	session *exam.Session
	phase   phase

	count    int
	examinee int

	input          components.TextInput
	choice         components.Choice
	classification exam.Classification
	scores         []int

	message string
}

var _ router.Screen = (*Screen)(nil)

// New starts a run against a snapshot of cfg.
func New(cfg exam.Config) *Screen {
	return &Screen{
		session: exam.NewSession(cfg),
		input:   components.NewTextInput("Number of examinees", true, 6),
	}
}

func newClassificationChoice() components.Choice {
	return components.NewChoice("Classification:", []components.ChoiceOption{
		{Key: string(exam.Science), Label: "Science"},
		{Key: string(exam.Humanities), Label: "Humanities"},
	})
}

func (s *Screen) Init() tea.Cmd {
	return s.input.Init()
}

// Session returns the session being filled.
func (s *Screen) Session() *exam.Session {
	return s.session
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if s.phase == phaseClassification {
		s.choice, _ = s.choice.Update(msg)
		if s.choice.Done() {
			return s, s.chooseClassification(s.choice.Value())
		}
		return s, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s, s.submitInput()
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) submitInput() tea.Cmd {
	var (
		n   int
		err error
	)
	if s.phase == phaseCount {
		n, err = batch.ParseCount(s.input.Value())
	} else {
		n, err = s.input.IntValue()
	}
	s.input.Reset()
	if err != nil {
		s.message = exam.InvalidNumberMessage
		return nil
	}
	s.message = ""

	if s.phase == phaseCount {
		s.count = n
		return s.nextExaminee()
	}

	s.scores = append(s.scores, n)
	if len(s.scores) < len(s.session.Subjects()) {
		return nil
	}
	return s.submitExaminee()
}

func (s *Screen) chooseClassification(token string) tea.Cmd {
	c, err := batch.ParseClassification(token)
	if err != nil {
		s.message = err.Error()
		s.choice = newClassificationChoice()
		return nil
	}
	s.classification = c
	s.scores = make([]int, 0, len(s.session.Subjects()))
	s.phase = phaseScores
	s.input = components.NewTextInput("Score", true, 9)

	if len(s.session.Subjects()) == 0 {
		return s.submitExaminee()
	}
	return s.input.Init()
}

func (s *Screen) submitExaminee() tea.Cmd {
	if _, err := s.session.Submit(s.classification, s.scores); err != nil {
		s.message = err.Error()
		s.scores = s.scores[:0]
		return nil
	}
	s.examinee++
	return s.nextExaminee()
}

func (s *Screen) nextExaminee() tea.Cmd {
	if s.examinee >= s.count {
		return router.Replace(result.New(s.session))
	}
	s.phase = phaseClassification
	s.choice = newClassificationChoice()
	return nil
}

func (s *Screen) prompt() string {
	switch s.phase {
	case phaseCount:
		return "Enter the number of examinees:"
	case phaseScores:
		return fmt.Sprintf("Enter %s score:", s.session.Subjects()[len(s.scores)])
	}
	return ""
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	if s.phase != phaseCount {
		b.WriteString(theme.Title.Render(fmt.Sprintf("Examinee %d", s.examinee+1)))
		b.WriteString("\n")
		b.WriteString(components.NewProgressBar("Progress", s.examinee, s.count, 40).View())
		b.WriteString("\n\n")
	}

	if s.phase == phaseClassification {
		b.WriteString(s.choice.View())
	} else {
		b.WriteString(theme.Body.Render(s.prompt()))
		b.WriteString("\n")
		b.WriteString(s.input.View())
	}

	if s.message != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Error.Render(s.message))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(b.String()))
}

func (s *Screen) Title() string {
	return "Run Entrance Exam"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.phase == phaseClassification {
		return []layout.KeyHint{
			{Key: "s/l", Description: "Science/Humanities"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Abandon"},
	}
}
