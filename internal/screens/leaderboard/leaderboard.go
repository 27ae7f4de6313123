// Package leaderboard implements the demo leaderboard screen. There is no
// server to rank against, so peers are generated around the user's own
// score the way the classroom demo does it.
package leaderboard

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nurlan/ubtprep/internal/screen"
	"github.com/nurlan/ubtprep/internal/store"
	"github.com/nurlan/ubtprep/internal/ui/theme"
)

var peerNames = []string{
	"Aruzhan", "Dias", "Aigerim", "Alikhan", "Madina",
	"Nurdaulet", "Zhanel", "Temirlan", "Kamila",
}

type entry struct {
	name   string
	points int
	level  int
	isUser bool
}

// LeaderboardScreen shows the user ranked among generated peers.
type LeaderboardScreen struct {
	entries []entry
}

var _ screen.Screen = (*LeaderboardScreen)(nil)

// New creates a LeaderboardScreen for the current profile.
func New(st *store.Store) *LeaderboardScreen {
	profile, err := st.Profile()
	if err != nil {
		profile = store.Profile{Name: "You", Level: 1}
	}

	name := profile.Name
	if name == "" {
		name = "You"
	}

	entries := []entry{{name: name, points: profile.Points, level: profile.Level, isUser: true}}
	for _, peer := range peerNames {
		// Peers land within ±200 points of the user, floored at zero.
		pts := profile.Points + rand.Intn(401) - 200
		if pts < 0 {
			pts = 0
		}
		entries = append(entries, entry{
			name:   peer,
			points: pts,
			level:  pts/1000 + 1,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].points > entries[j].points
	})

	return &LeaderboardScreen{entries: entries}
}

func (l *LeaderboardScreen) Init() tea.Cmd {
	return nil
}

func (l *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (l *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return l, nil
}

func (l *LeaderboardScreen) View(width, height int) string {
	medals := []string{"🥇", "🥈", "🥉"}

	var rows []string
	for i, e := range l.entries {
		rank := fmt.Sprintf("%2d.", i+1)
		if i < len(medals) {
			rank = medals[i]
		}
		line := fmt.Sprintf("%s %-12s Lv %-2d %6d pts", rank, e.name, e.level, e.points)

		if e.isUser {
			rows = append(rows, theme.Selected.Render("▸ "+line))
		} else {
			rows = append(rows, theme.Body.Render("  "+line))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("Leaderboard"),
		theme.Subtitle.Render("Demo ranking among practice peers"),
		"",
		strings.Join(rows, "\n"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
