package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nurlan/ubtprep/internal/ui/theme"
)

// OptionList is a labeled multiple-choice selector (A/B/C/D). The cursor
// moves independently of the chosen answer, so a choice can be reviewed
// and overwritten before moving on.
type OptionList struct {
	Labels  []string
	Texts   map[string]string
	Cursor  int
	Chosen  string // label of the committed answer, "" if none
	Reveal  bool   // show correctness instead of selection
	Correct string // only consulted when Reveal is set
}

// NewOptionList creates an option list over the given labels and texts.
func NewOptionList(labels []string, texts map[string]string) OptionList {
	return OptionList{
		Labels: labels,
		Texts:  texts,
	}
}

// Update handles cursor movement and direct label keys.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || o.Reveal {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Labels)-1 {
			o.Cursor++
		}
	case "a", "b", "c", "d":
		want := strings.ToUpper(kmsg.String())
		for i, label := range o.Labels {
			if label == want {
				o.Cursor = i
				o.Chosen = label
			}
		}
	case "enter", "space":
		if o.Cursor >= 0 && o.Cursor < len(o.Labels) {
			o.Chosen = o.Labels[o.Cursor]
		}
	}

	return o, nil
}

// View renders the options, one per line.
func (o OptionList) View() string {
	var s string
	for i, label := range o.Labels {
		text, ok := o.Texts[label]
		if !ok {
			continue
		}
		line := fmt.Sprintf("%s) %s", label, text)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		marker := "   "
		switch {
		case o.Reveal && label == o.Correct:
			style = theme.Correct
			marker = " ✓ "
		case o.Reveal && label == o.Chosen:
			style = theme.Incorrect
			marker = " ✗ "
		case !o.Reveal && label == o.Chosen:
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
			marker = " ● "
		}

		if !o.Reveal && i == o.Cursor {
			line = "▸ " + line
			if label != o.Chosen {
				style = theme.Selected
			}
		} else {
			line = "  " + line
		}

		s += marker + style.Render(line) + "\n"
	}
	return s
}
