package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/examgate/internal/exam"
	"github.com/abhisek/examgate/internal/router"
	"github.com/abhisek/examgate/internal/ui/layout"
	"github.com/abhisek/examgate/internal/ui/theme"
)

// maxRows caps the per-examinee breakdown so large runs still fit.
const maxRows = 10

// Screen shows the outcome of a finished examination run.
type Screen struct {
	session *exam.Session
}

var _ router.Screen = (*Screen)(nil)

func New(session *exam.Session) *Screen {
	return &Screen{session: session}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s, router.Pop()
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(exam.PassedSentence(s.session.PassCount())))

	results := s.session.Results()
	if len(results) > 0 {
		b.WriteString("\n\n")
	}
	for i, r := range results {
		if i == maxRows {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("… and %d more", len(results)-maxRows)))
			break
		}
		line := fmt.Sprintf("#%-3d %-10s total %4d", i+1, r.Classification, r.Total)
		if r.Passed {
			b.WriteString(theme.Body.Render(line) + "  " + theme.Passed.Render("PASS"))
		} else {
			b.WriteString(theme.Body.Render(line) + "  " + theme.Failed.Render("FAIL"))
		}
		b.WriteString("\n")
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(b.String()))
}

func (s *Screen) Title() string {
	return "Result"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to menu"},
	}
}
