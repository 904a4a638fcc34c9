package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examgate/internal/exam"
	"github.com/abhisek/examgate/internal/router"
)

// press sends msg and, if the resulting command navigates, applies the
// navigation. Other commands (cursor blinks) are not run.
func press(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch nav := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		next, _ = m.Update(nav)
		m = next.(AppModel)
	}
	return m
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// typeText sends text to the active input without running commands.
func typeText(m AppModel, text string) AppModel {
	for _, r := range text {
		next, _ := m.Update(key(r))
		m = next.(AppModel)
	}
	return m
}

func enter(t *testing.T, m AppModel) AppModel {
	return press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
}

func TestModelOwnsConfigCopy(t *testing.T) {
	cfg := exam.DefaultConfig()
	m := newAppModel(cfg)

	m = press(t, m, key('1'))
	require.Equal(t, 2, m.router.Depth())
	m = typeText(m, "Physics")
	m = enter(t, m)

	assert.True(t, m.cfg.HasSubject("Physics"))
	assert.False(t, cfg.HasSubject("Physics"), "caller's config must not change")
}

func TestEscPopsToHome(t *testing.T) {
	m := newAppModel(exam.DefaultConfig())
	m = press(t, m, key('3'))
	require.Equal(t, 2, m.router.Depth())

	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())

	// Esc at the root is a no-op.
	m = press(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())
}

func TestExamRunEndsOnResultThenHome(t *testing.T) {
	cfg := exam.Config{TotalThreshold: 10, SubjectThreshold: 5, Subjects: []string{"A", "B"}}
	m := newAppModel(cfg)

	m = press(t, m, key('4'))
	m = typeText(m, "1")
	m = enter(t, m)
	m = typeText(m, "s")
	m = typeText(m, "5")
	m = enter(t, m)
	m = typeText(m, "5")
	m = enter(t, m)

	require.Equal(t, 2, m.router.Depth())
	assert.Equal(t, "Result", m.router.Active().Title())

	m = enter(t, m)
	assert.Equal(t, 1, m.router.Depth())
	assert.Equal(t, "Home", m.router.Active().Title())
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(exam.DefaultConfig())
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestFrame(t *testing.T) {
	m := newAppModel(exam.DefaultConfig())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	frame := next.(AppModel).frame()
	assert.Contains(t, frame, "Entrance Exam Menu")
	assert.Contains(t, frame, "total ≥ 350")
	assert.Contains(t, frame, "1-5")
}

func TestFrameTooSmall(t *testing.T) {
	m := newAppModel(exam.DefaultConfig())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, next.(AppModel).frame(), "Terminal too small!")
}
