// Package schedule implements the weekly study schedule screen.
package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/nurlan/ubtprep/internal/screen"
	"github.com/nurlan/ubtprep/internal/store"
	"github.com/nurlan/ubtprep/internal/ui/components"
	"github.com/nurlan/ubtprep/internal/ui/layout"
	"github.com/nurlan/ubtprep/internal/ui/theme"
)

var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// form fields, filled one at a time
const (
	fieldSubject = iota
	fieldDay
	fieldStart
	fieldEnd
	fieldClassroom
	fieldDescription
	fieldCount
)

var fieldPrompts = [fieldCount]string{
	"Subject",
	"Day (1=Mon .. 7=Sun)",
	"Start time (e.g. 14:00)",
	"End time (e.g. 15:30)",
	"Classroom (optional)",
	"Description (optional)",
}

// ScheduleScreen lists the saved lesson slots and adds new ones.
type ScheduleScreen struct {
	st       *store.Store
	items    []store.ScheduleItem
	selected int
	errMsg   string

	adding bool
	field  int
	values [fieldCount]string
	input  components.TextInput
}

var _ screen.Screen = (*ScheduleScreen)(nil)
var _ screen.KeyHintProvider = (*ScheduleScreen)(nil)

// New creates a ScheduleScreen backed by st.
func New(st *store.Store) *ScheduleScreen {
	s := &ScheduleScreen{st: st}
	s.reload()
	return s
}

func (s *ScheduleScreen) reload() {
	items, err := s.st.Schedule()
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].DayOfWeek != items[j].DayOfWeek {
			return items[i].DayOfWeek < items[j].DayOfWeek
		}
		return items[i].StartTime < items[j].StartTime
	})
	s.items = items
	if s.selected >= len(items) {
		s.selected = len(items) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func (s *ScheduleScreen) Init() tea.Cmd {
	return nil
}

func (s *ScheduleScreen) Title() string {
	return "Schedule"
}

func (s *ScheduleScreen) KeyHints() []layout.KeyHint {
	if s.adding {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next field"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "A", Description: "Add"},
		{Key: "X", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ScheduleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.adding {
		return s.updateForm(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.items)-1 {
			s.selected++
		}
	case "a":
		s.startForm()
		return s, s.input.Init()
	case "x", "d":
		if s.selected < len(s.items) {
			if err := s.st.DeleteScheduleItem(s.items[s.selected].ID); err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			s.reload()
		}
	}
	return s, nil
}

func (s *ScheduleScreen) startForm() {
	s.adding = true
	s.field = fieldSubject
	s.values = [fieldCount]string{}
	s.input = components.NewTextInput(fieldPrompts[fieldSubject], false, 40)
}

func (s *ScheduleScreen) updateForm(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.adding = false
			return s, nil
		case "enter":
			return s.submitField()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ScheduleScreen) submitField() (screen.Screen, tea.Cmd) {
	value := strings.TrimSpace(s.input.Value())

	switch s.field {
	case fieldSubject:
		if value == "" {
			return s, nil
		}
	case fieldDay:
		day, err := strconv.Atoi(value)
		if err != nil || day < 1 || day > 7 {
			return s, nil
		}
	case fieldStart, fieldEnd:
		if value == "" {
			return s, nil
		}
	}

	s.values[s.field] = value
	s.field++
	if s.field < fieldCount {
		numeric := s.field == fieldDay
		s.input = components.NewTextInput(fieldPrompts[s.field], numeric, 40)
		return s, s.input.Init()
	}

	day, _ := strconv.Atoi(s.values[fieldDay])
	item := store.ScheduleItem{
		ID:          uuid.New().String(),
		Subject:     s.values[fieldSubject],
		DayOfWeek:   day - 1,
		StartTime:   s.values[fieldStart],
		EndTime:     s.values[fieldEnd],
		Classroom:   s.values[fieldClassroom],
		Description: s.values[fieldDescription],
		CreatedAt:   time.Now().Format(time.RFC3339),
	}
	if err := s.st.AddScheduleItem(item); err != nil {
		s.errMsg = err.Error()
	}
	s.adding = false
	s.reload()
	return s, nil
}

func (s *ScheduleScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render(s.errMsg))
	}
	if s.adding {
		return s.formView(width, height)
	}
	return s.listView(width, height)
}

func (s *ScheduleScreen) formView(width, height int) string {
	var done []string
	for i := 0; i < s.field; i++ {
		done = append(done, lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("%s: %s", fieldPrompts[i], s.values[i])))
	}

	prompt := theme.Body.Render(fieldPrompts[s.field]) + "\n" + s.input.View()

	sections := []string{theme.Title.Render("New lesson"), ""}
	if len(done) > 0 {
		sections = append(sections, strings.Join(done, "\n"), "")
	}
	sections = append(sections, prompt)

	card := theme.Card.Render(strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *ScheduleScreen) listView(width, height int) string {
	title := theme.Title.Render("Study Schedule")

	if len(s.items) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Center,
			title,
			"",
			theme.Subtitle.Render("No lessons yet. Press A to add one."),
		)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	var rows []string
	for i, item := range s.items {
		day := "?"
		if item.DayOfWeek >= 0 && item.DayOfWeek < len(dayNames) {
			day = dayNames[item.DayOfWeek]
		}
		line := fmt.Sprintf("%-10s %s–%s  %s", day, item.StartTime, item.EndTime, item.Subject)
		if item.Classroom != "" {
			line += "  (" + item.Classroom + ")"
		}

		if i == s.selected {
			rows = append(rows, theme.Selected.Render("▸ "+line))
			if item.Description != "" {
				rows = append(rows, theme.Hint.Render("    "+item.Description))
			}
		} else {
			rows = append(rows, theme.Body.Render("  "+line))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		strings.Join(rows, "\n"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
