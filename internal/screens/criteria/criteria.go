package criteria

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/examgate/internal/exam"
	"github.com/abhisek/examgate/internal/router"
	"github.com/abhisek/examgate/internal/ui/components"
	"github.com/abhisek/examgate/internal/ui/layout"
	"github.com/abhisek/examgate/internal/ui/theme"
)

const updatedMessage = "Passing criteria updated successfully."

// Screen edits both thresholds. They are applied together, only when both parse.
type Screen struct {
	cfg     *exam.Config
	inputs  [2]components.TextInput
	focus   int
	message string
	failed  bool
}

var _ router.Screen = (*Screen)(nil)

func New(cfg *exam.Config) *Screen {
	s := &Screen{cfg: cfg}
	s.inputs[0] = components.NewTextInput("Total", true, 9)
	s.inputs[0].SetValue(strconv.Itoa(cfg.TotalThreshold))
	s.inputs[1] = components.NewTextInput("Per subject", true, 9)
	s.inputs[1].SetValue(strconv.Itoa(cfg.SubjectThreshold))
	s.inputs[1].Blur()
	return s
}

func (s *Screen) Init() tea.Cmd {
	return s.inputs[0].Init()
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down", "up", "shift+tab":
			return s, s.toggleFocus()
		case "enter":
			if s.focus == 0 {
				return s, s.toggleFocus()
			}
			s.apply()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *Screen) toggleFocus() tea.Cmd {
	s.inputs[s.focus].Blur()
	s.focus = 1 - s.focus
	return s.inputs[s.focus].Focus()
}

func (s *Screen) apply() {
	total, subject, err := exam.ParseThresholds(s.inputs[0].Value(), s.inputs[1].Value())
	if err != nil {
		s.message, s.failed = exam.InvalidNumberMessage, true
		return
	}
	s.cfg.SetThresholds(total, subject)
	s.message, s.failed = updatedMessage, false
}

// Message returns the outcome of the last submission.
func (s *Screen) Message() string {
	return s.message
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Body.Render("Passing total score:"))
	b.WriteString("\n")
	b.WriteString(s.inputs[0].View())
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Passing subject score:"))
	b.WriteString("\n")
	b.WriteString(s.inputs[1].View())
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
	return "Change Passing/Failing Criteria"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}
