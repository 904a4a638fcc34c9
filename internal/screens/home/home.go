package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/examgate/internal/exam"
	"github.com/abhisek/examgate/internal/router"
	"github.com/abhisek/examgate/internal/screens/criteria"
	"github.com/abhisek/examgate/internal/screens/examination"
	"github.com/abhisek/examgate/internal/screens/subjects"
	"github.com/abhisek/examgate/internal/ui/components"
	"github.com/abhisek/examgate/internal/ui/layout"
	"github.com/abhisek/examgate/internal/ui/theme"
)

// HomeScreen is the main menu. It shares the app's configuration with the
// admin screens it opens; examinations get a snapshot.
type HomeScreen struct {
	cfg  *exam.Config
	menu components.Menu
}

var _ router.Screen = (*HomeScreen)(nil)

func New(cfg *exam.Config) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Add Subject", Action: func() tea.Cmd {
			return router.Push(subjects.New(cfg, subjects.Add))
		}},
		{Label: "Delete Subject", Action: func() tea.Cmd {
			return router.Push(subjects.New(cfg, subjects.Delete))
		}},
		{Label: "Change Passing/Failing Criteria", Action: func() tea.Cmd {
			return router.Push(criteria.New(cfg))
		}},
		{Label: "Run Entrance Exam", Action: func() tea.Cmd {
			return router.Push(examination.New(*cfg))
		}},
		{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return &HomeScreen{cfg: cfg, menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := min(max(width-6, 20), 60)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Entrance Exam Menu"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Passing total score:   %d", h.cfg.TotalThreshold)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Passing subject score: %d", h.cfg.SubjectThreshold)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render("Subjects: "))
	if len(h.cfg.Subjects) == 0 {
		b.WriteString(theme.Hint.Render("(none)"))
	} else {
		b.WriteString(theme.Message.Render(strings.Join(h.cfg.Subjects, ", ")))
	}
	b.WriteString("\n\n")
	b.WriteString(h.menu.View())

	card := theme.Card.Width(cw).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-5", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
