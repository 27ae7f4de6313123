// Package quests implements the quest progress screen.
package quests

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nurlan/ubtprep/internal/progress"
	"github.com/nurlan/ubtprep/internal/screen"
	"github.com/nurlan/ubtprep/internal/store"
	"github.com/nurlan/ubtprep/internal/ui/components"
	"github.com/nurlan/ubtprep/internal/ui/theme"
)

// QuestsScreen lists the active quests and their progress.
type QuestsScreen struct {
	quests []progress.Quest
	states map[string]store.QuestState
	errMsg string
}

var _ screen.Screen = (*QuestsScreen)(nil)

// New creates a QuestsScreen backed by st.
func New(st *store.Store) *QuestsScreen {
	q := &QuestsScreen{quests: progress.ActiveQuests()}
	states, err := st.QuestProgress()
	if err != nil {
		q.errMsg = err.Error()
		return q
	}
	q.states = states
	return q
}

func (q *QuestsScreen) Init() tea.Cmd {
	return nil
}

func (q *QuestsScreen) Title() string {
	return "Quests"
}

func (q *QuestsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return q, nil
}

func (q *QuestsScreen) View(width, height int) string {
	if q.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render(q.errMsg))
	}

	barWidth := width / 2
	if barWidth > 50 {
		barWidth = 50
	}
	if barWidth < 20 {
		barWidth = 20
	}

	var rows []string
	for _, quest := range q.quests {
		state := q.states[quest.ID]

		title := fmt.Sprintf("%s %s", quest.Icon, quest.Title)
		reward := fmt.Sprintf("+%d pts", quest.Reward)
		if state.Completed {
			rows = append(rows,
				theme.Correct.Render("✓ "+title)+"  "+
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(reward))
		} else {
			percent := float64(state.Progress) / float64(quest.Target)
			bar := components.NewProgressBar("", percent, false, barWidth)
			rows = append(rows,
				theme.Body.Render(title)+"  "+
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(reward),
				bar.View()+lipgloss.NewStyle().Foreground(theme.TextDim).Render(
					fmt.Sprintf("  %d/%d", state.Progress, quest.Target)))
		}
		rows = append(rows, theme.Hint.Render(quest.Description), "")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Quests"),
		"",
		strings.Join(rows, "\n"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
