package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/examgate/internal/ui/theme"
)

// Choice is a single-answer selector. Options may also be picked by typing
// their shortcut key.
type Choice struct {
	Prompt   string
	Options  []ChoiceOption
	Selected int
	Chosen   int
}

// ChoiceOption is one option of a Choice.
type ChoiceOption struct {
	Key   string
	Label string
}

func NewChoice(prompt string, options []ChoiceOption) Choice {
	return Choice{Prompt: prompt, Options: options, Chosen: -1}
}

// Update handles navigation. Chosen is set once an option is picked.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Chosen = c.Selected
	default:
		for i, opt := range c.Options {
			if opt.Key == key {
				c.Selected = i
				c.Chosen = i
			}
		}
	}
	return c, nil
}

// Done reports whether an option has been chosen.
func (c Choice) Done() bool {
	return c.Chosen >= 0
}

// Value returns the key of the chosen option, or "" if none.
func (c Choice) Value() string {
	if !c.Done() {
		return ""
	}
	return c.Options[c.Chosen].Key
}

func (c Choice) View() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(c.Prompt))
	b.WriteString("\n\n")
	for i, opt := range c.Options {
		line := fmt.Sprintf("%s)  %s", opt.Key, opt.Label)
		if i == c.Selected {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
