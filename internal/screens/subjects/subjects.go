package subjects

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/examgate/internal/exam"
	"github.com/abhisek/examgate/internal/router"
	"github.com/abhisek/examgate/internal/ui/components"
	"github.com/abhisek/examgate/internal/ui/layout"
	"github.com/abhisek/examgate/internal/ui/theme"
)

// Mode selects whether the screen adds or deletes subjects.
type Mode int

const (
	Add Mode = iota
	Delete
)

// Screen edits the shared subject list one name at a time.
type Screen struct {
	cfg     *exam.Config
	mode    Mode
	input   components.TextInput
	message string
	failed  bool
}

var _ router.Screen = (*Screen)(nil)

func New(cfg *exam.Config, mode Mode) *Screen {
	return &Screen{
		cfg:   cfg,
		mode:  mode,
		input: components.NewTextInput("Subject name", false, 64),
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		s.apply(s.input.Value())
		s.input.Reset()
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) apply(name string) {
	var err error
	if s.mode == Add {
		err = s.cfg.AddSubject(name)
	} else {
		err = s.cfg.RemoveSubject(name)
	}
	if err != nil {
		s.message, s.failed = err.Error()+".", true
		return
	}

	verb := "added to"
	if s.mode == Delete {
		verb = "deleted from"
	}
	s.message, s.failed = fmt.Sprintf("%s %s the subjects list.", name, verb), false
}

// Message returns the outcome of the last submitted name.
func (s *Screen) Message() string {
	return s.message
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Body.Render("Current subjects: " + strings.Join(s.cfg.Subjects, ", ")))
	b.WriteString("\n\n")
	prompt := "Enter the subject to add:"
	if s.mode == Delete {
		prompt = "Enter the subject to delete:"
	}
	b.WriteString(theme.Body.Render(prompt))
	b.WriteString("\n")
	b.WriteString(s.input.View())
	if s.message != "" {
		b.WriteString("\n\n")
		if s.failed {
			b.WriteString(theme.Error.Render(s.message))
		} else {
			b.WriteString(theme.Passed.Render(s.message))
		}
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(b.String()))
}

func (s *Screen) Title() string {
	if s.mode == Delete {
		return "Delete Subject"
	}
	return "Add Subject"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}
