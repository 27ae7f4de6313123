// Package materials implements the study materials browser.
package materials

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nurlan/ubtprep/internal/bank"
	"github.com/nurlan/ubtprep/internal/screen"
	"github.com/nurlan/ubtprep/internal/ui/layout"
	"github.com/nurlan/ubtprep/internal/ui/theme"
)

// MaterialsScreen browses the study resources per subject.
type MaterialsScreen struct {
	subjects []string
	subject  int
	selected int
}

var _ screen.Screen = (*MaterialsScreen)(nil)
var _ screen.KeyHintProvider = (*MaterialsScreen)(nil)

// New creates a MaterialsScreen.
func New() *MaterialsScreen {
	return &MaterialsScreen{subjects: bank.Subjects()}
}

func (m *MaterialsScreen) Init() tea.Cmd {
	return nil
}

func (m *MaterialsScreen) Title() string {
	return "Materials"
}

func (m *MaterialsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "Subject"},
		{Key: "↑↓", Description: "Browse"},
		{Key: "Esc", Description: "Back"},
	}
}

func (m *MaterialsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if m.subject > 0 {
			m.subject--
			m.selected = 0
		}
	case "right", "l":
		if m.subject < len(m.subjects)-1 {
			m.subject++
			m.selected = 0
		}
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.current())-1 {
			m.selected++
		}
	}
	return m, nil
}

func (m *MaterialsScreen) current() []bank.Material {
	if m.subject < 0 || m.subject >= len(m.subjects) {
		return nil
	}
	return bank.MaterialsFor(m.subjects[m.subject])
}

func (m *MaterialsScreen) View(width, height int) string {
	var tabs []string
	for i, subject := range m.subjects {
		name := bank.SubjectName(subject)
		if i == m.subject {
			tabs = append(tabs, theme.Selected.Render("[ "+name+" ]"))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+name+"  "))
		}
	}

	var rows []string
	for i, mat := range m.current() {
		icon := "📄"
		meta := fmt.Sprintf("%d pages", mat.Pages)
		if mat.Type == "video" {
			icon = "🎬"
			meta = mat.Duration
		}
		line := fmt.Sprintf("%s %s — %s (%s)", icon, mat.Title, mat.Topic, meta)

		if i == m.selected {
			rows = append(rows, theme.Selected.Render("▸ "+line))
			if mat.Description != "" {
				rows = append(rows, theme.Hint.Render("    "+mat.Description))
			}
		} else {
			rows = append(rows, theme.Body.Render("  "+line))
		}
	}
	if len(rows) == 0 {
		rows = append(rows, theme.Subtitle.Render("No materials for this subject yet."))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(tabs, " "),
		"",
		strings.Join(rows, "\n"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
