// Package profile implements the profile screen: statistics,
// achievements and settings.
package profile

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nurlan/ubtprep/internal/progress"
	"github.com/nurlan/ubtprep/internal/screen"
	"github.com/nurlan/ubtprep/internal/store"
	"github.com/nurlan/ubtprep/internal/ui/components"
	"github.com/nurlan/ubtprep/internal/ui/layout"
	"github.com/nurlan/ubtprep/internal/ui/theme"
)

const (
	tabStats = iota
	tabAchievements
	tabSettings
	tabCount
)

var tabNames = [tabCount]string{"Stats", "Achievements", "Settings"}

// ProfileScreen shows the user profile across three tabs.
type ProfileScreen struct {
	st       *store.Store
	profile  store.Profile
	settings store.Settings
	tab      int
	selected int
	errMsg   string

	renaming bool
	input    components.TextInput
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a ProfileScreen backed by st.
func New(st *store.Store) *ProfileScreen {
	p := &ProfileScreen{st: st}
	p.reload()
	return p
}

func (p *ProfileScreen) reload() {
	profile, err := p.st.Profile()
	if err != nil {
		p.errMsg = err.Error()
		return
	}
	settings, err := p.st.Settings()
	if err != nil {
		p.errMsg = err.Error()
		return
	}
	p.profile = profile
	p.settings = settings
}

func (p *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfileScreen) Title() string {
	return "Profile"
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	if p.renaming {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save name"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{{Key: "←/→", Description: "Tab"}}
	switch p.tab {
	case tabStats:
		hints = append(hints, layout.KeyHint{Key: "N", Description: "Rename"})
	case tabSettings:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Setting"},
			layout.KeyHint{Key: "Enter", Description: "Change"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if p.renaming {
		return p.updateRename(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if p.tab > 0 {
			p.tab--
			p.selected = 0
		}
	case "right", "l":
		if p.tab < tabCount-1 {
			p.tab++
			p.selected = 0
		}
	case "up", "k":
		if p.tab == tabSettings && p.selected > 0 {
			p.selected--
		}
	case "down", "j":
		if p.tab == tabSettings && p.selected < len(settingRows)-1 {
			p.selected++
		}
	case "enter", " ":
		if p.tab == tabSettings {
			p.changeSetting()
		}
	case "n":
		if p.tab == tabStats {
			p.renaming = true
			p.input = components.NewTextInput("Your name", false, 30)
			p.input.Model.SetValue(p.profile.Name)
			return p, p.input.Init()
		}
	}
	return p, nil
}

func (p *ProfileScreen) updateRename(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			p.renaming = false
			return p, nil
		case "enter":
			name := strings.TrimSpace(p.input.Value())
			if name != "" {
				p.profile.Name = name
				if err := p.st.SaveProfile(p.profile); err != nil {
					p.errMsg = err.Error()
				}
			}
			p.renaming = false
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

type settingRow struct {
	label  string
	value  func(store.Settings) string
	change func(*store.Settings)
}

var settingRows = []settingRow{
	{
		label: "Notifications",
		value: func(s store.Settings) string { return onOff(s.Notifications) },
		change: func(s *store.Settings) {
			s.Notifications = !s.Notifications
		},
	},
	{
		label: "Sound",
		value: func(s store.Settings) string { return onOff(s.Sound) },
		change: func(s *store.Settings) {
			s.Sound = !s.Sound
		},
	},
	{
		label: "Difficulty",
		value: func(s store.Settings) string { return s.Difficulty },
		change: func(s *store.Settings) {
			s.Difficulty = cycle(s.Difficulty, []string{"easy", "medium", "hard"})
		},
	},
	{
		label: "Theme",
		value: func(s store.Settings) string { return s.Theme },
		change: func(s *store.Settings) {
			s.Theme = cycle(s.Theme, []string{"auto", "light", "dark"})
		},
	},
	{
		label: "Language",
		value: func(s store.Settings) string { return s.Language },
		change: func(s *store.Settings) {
			s.Language = cycle(s.Language, []string{"en", "kk", "ru"})
		},
	},
}

func (p *ProfileScreen) changeSetting() {
	if p.selected < 0 || p.selected >= len(settingRows) {
		return
	}
	settingRows[p.selected].change(&p.settings)
	if err := p.st.SaveSettings(p.settings); err != nil {
		p.errMsg = err.Error()
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func cycle(current string, values []string) string {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

func (p *ProfileScreen) View(width, height int) string {
	if p.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render(p.errMsg))
	}

	var tabs []string
	for i, name := range tabNames {
		if i == p.tab {
			tabs = append(tabs, theme.Selected.Render("[ "+name+" ]"))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+name+"  "))
		}
	}

	var body string
	switch p.tab {
	case tabStats:
		body = p.statsView(width)
	case tabAchievements:
		body = p.achievementsView()
	case tabSettings:
		body = p.settingsView()
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(tabs, " "),
		"",
		body,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (p *ProfileScreen) statsView(width int) string {
	if p.renaming {
		return theme.Body.Render("Name") + "\n" + p.input.View()
	}

	intoLevel := p.profile.Experience % progress.ExperiencePerLevel
	levelBar := components.NewProgressBar(
		fmt.Sprintf("Level %d", p.profile.Level),
		float64(intoLevel)/float64(progress.ExperiencePerLevel),
		false,
		40,
	)

	rows := []string{
		theme.Title.Render(p.profile.Name),
		"",
		levelBar.View() + lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("  %d/%d XP", intoLevel, progress.ExperiencePerLevel)),
		"",
		statRow("Points", fmt.Sprintf("%d", p.profile.Points)),
		statRow("Tests completed", fmt.Sprintf("%d", p.profile.TestsCompleted)),
		statRow("Physics tests", fmt.Sprintf("%d", p.profile.PhysicsTests)),
		statRow("Math tests", fmt.Sprintf("%d", p.profile.MathTests)),
		statRow("Accuracy", fmt.Sprintf("%d%%", p.profile.Accuracy)),
		statRow("Day streak", fmt.Sprintf("%d", p.profile.Streak)),
	}
	return strings.Join(rows, "\n")
}

func statRow(label, value string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Width(18).Render(label) +
		theme.Body.Render(value)
}

func (p *ProfileScreen) achievementsView() string {
	unlocked := make(map[string]bool, len(p.profile.Achievements))
	for _, id := range p.profile.Achievements {
		unlocked[id] = true
	}

	var rows []string
	for _, a := range progress.Achievements() {
		line := fmt.Sprintf("%s %s — %s (+%d)", a.Icon, a.Title, a.Description, a.Points)
		if unlocked[a.ID] {
			rows = append(rows, theme.Correct.Render("✓ "+line))
		} else {
			rows = append(rows, lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+line))
		}
	}
	return strings.Join(rows, "\n")
}

func (p *ProfileScreen) settingsView() string {
	var rows []string
	for i, row := range settingRows {
		line := fmt.Sprintf("%-15s %s", row.label, row.value(p.settings))
		if i == p.selected {
			rows = append(rows, theme.Selected.Render("▸ "+line))
		} else {
			rows = append(rows, theme.Body.Render("  "+line))
		}
	}
	return strings.Join(rows, "\n")
}
