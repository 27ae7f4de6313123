// Package home implements the main menu screen.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nurlan/ubtprep/internal/progress"
	"github.com/nurlan/ubtprep/internal/router"
	"github.com/nurlan/ubtprep/internal/screen"
	"github.com/nurlan/ubtprep/internal/screens/leaderboard"
	"github.com/nurlan/ubtprep/internal/screens/materials"
	profilescreen "github.com/nurlan/ubtprep/internal/screens/profile"
	"github.com/nurlan/ubtprep/internal/screens/quests"
	"github.com/nurlan/ubtprep/internal/screens/quizzes"
	"github.com/nurlan/ubtprep/internal/screens/schedule"
	"github.com/nurlan/ubtprep/internal/store"
	"github.com/nurlan/ubtprep/internal/ui/components"
	"github.com/nurlan/ubtprep/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu  components.Menu
	st    *store.Store
	stats homeStats
}

type homeStats struct {
	tests    int
	accuracy int
	points   int
	streak   int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(st *store.Store, eng *progress.Engine) *HomeScreen {
	items := []components.MenuItem{
		{Label: "📝 Take a Test", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizzes.New(eng)}
			}
		}},
		{Label: "📅 Study Schedule", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: schedule.New(st)}
			}
		}},
		{Label: "📚 Materials", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: materials.New()}
			}
		}},
		{Label: "🏆 Quests", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quests.New(st)}
			}
		}},
		{Label: "📊 Leaderboard", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: leaderboard.New(st)}
			}
		}},
		{Label: "👤 Profile", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profilescreen.New(st)}
			}
		}},
		{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h := &HomeScreen{
		menu: components.NewMenu(items),
		st:   st,
	}
	h.reloadStats()
	return h
}

func (h *HomeScreen) reloadStats() {
	p, err := h.st.Profile()
	if err != nil {
		return
	}
	h.stats = homeStats{
		tests:    p.TestsCompleted,
		accuracy: p.Accuracy,
		points:   p.Points,
		streak:   p.Streak,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Returning to home after a quiz must reflect the updated stats.
	if _, ok := msg.(router.ActivatedMsg); ok {
		h.reloadStats()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Render("UBT Prep") + "\n" +
		theme.Subtitle.Render("Unified National Testing practice")

	statsLine := strings.Join([]string{
		fmt.Sprintf("Tests %d", h.stats.tests),
		fmt.Sprintf("Accuracy %d%%", h.stats.accuracy),
		fmt.Sprintf("Points %d", h.stats.points),
		fmt.Sprintf("Streak %d", h.stats.streak),
	}, "   •   ")
	statsBar := theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(statsLine))

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		statsBar,
		"",
		h.menu.View(),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
