// Package quizzes implements the subject selection screen.
package quizzes

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nurlan/ubtprep/internal/bank"
	"github.com/nurlan/ubtprep/internal/progress"
	"github.com/nurlan/ubtprep/internal/quiz"
	"github.com/nurlan/ubtprep/internal/router"
	"github.com/nurlan/ubtprep/internal/screen"
	quizscreen "github.com/nurlan/ubtprep/internal/screens/quiz"
	"github.com/nurlan/ubtprep/internal/ui/components"
	"github.com/nurlan/ubtprep/internal/ui/theme"
)

// QuizzesScreen lets the user pick a subject and start a test.
type QuizzesScreen struct {
	menu  components.Menu
	stats map[string]bank.DifficultyStats
}

var _ screen.Screen = (*QuizzesScreen)(nil)

// New creates a new QuizzesScreen.
func New(eng *progress.Engine) *QuizzesScreen {
	items := make([]components.MenuItem, 0, len(bank.Subjects()))
	for _, subject := range bank.Subjects() {
		subject := subject
		items = append(items, components.MenuItem{
			Label: bank.SubjectName(subject),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					session := quiz.New(subject, quiz.DefaultConfig())
					return router.PushScreenMsg{
						Screen: quizscreen.New(session, eng),
					}
				}
			},
		})
	}

	return &QuizzesScreen{
		menu:  components.NewMenu(items),
		stats: bank.SubjectStats(),
	}
}

func (q *QuizzesScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizzesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	q.menu, cmd = q.menu.Update(msg)
	return q, cmd
}

func (q *QuizzesScreen) View(width, height int) string {
	title := theme.Title.Render("Choose a subject")
	format := theme.Subtitle.Render(fmt.Sprintf(
		"%d questions • %d minutes • %d hints • %d skips",
		quiz.DefaultQuestionCount,
		int(quiz.DefaultTimeLimit.Minutes()),
		quiz.DefaultMaxHints,
		quiz.DefaultMaxSkips,
	))

	var statsView string
	if subject := q.selectedSubject(); subject != "" {
		if s, ok := q.stats[subject]; ok {
			statsView = lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(
				"%d questions in bank: %d easy, %d medium, %d hard",
				s.Total, s.Easy, s.Medium, s.Hard,
			))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		format,
		"",
		q.menu.View(),
		"",
		statsView,
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (q *QuizzesScreen) selectedSubject() string {
	subjects := bank.Subjects()
	if q.menu.Selected < 0 || q.menu.Selected >= len(subjects) {
		return ""
	}
	return subjects[q.menu.Selected]
}

func (q *QuizzesScreen) Title() string {
	return "Tests"
}
