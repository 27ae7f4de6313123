// Package results implements the post-test summary and answer review.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nurlan/ubtprep/internal/bank"
	"github.com/nurlan/ubtprep/internal/progress"
	"github.com/nurlan/ubtprep/internal/screen"
	"github.com/nurlan/ubtprep/internal/ui/layout"
	"github.com/nurlan/ubtprep/internal/ui/theme"
)

// ResultsScreen shows the outcome of a finished test and lets the user
// walk through each question's correction.
type ResultsScreen struct {
	outcome   *progress.Outcome
	reviewing bool
	reviewIdx int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a recorded outcome.
func New(outcome *progress.Outcome) *ResultsScreen {
	return &ResultsScreen{outcome: outcome}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	if r.reviewing {
		return []layout.KeyHint{
			{Key: "←/→", Description: "Question"},
			{Key: "R", Description: "Summary"},
			{Key: "Esc", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Review answers"},
		{Key: "Esc", Description: "Done"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "r":
		r.reviewing = !r.reviewing
		r.reviewIdx = 0
	case "left", "h":
		if r.reviewing && r.reviewIdx > 0 {
			r.reviewIdx--
		}
	case "right", "l":
		if r.reviewing && r.reviewIdx < len(r.outcome.Record.Questions)-1 {
			r.reviewIdx++
		}
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	if r.reviewing {
		return r.reviewView(width, height)
	}
	return r.summaryView(width, height)
}

func (r *ResultsScreen) summaryView(width, height int) string {
	rec := r.outcome.Record

	grade := theme.Correct
	verdict := "Well done!"
	switch {
	case rec.Accuracy < 50:
		grade = theme.Incorrect
		verdict = "Keep practicing!"
	case rec.Accuracy < 80:
		grade = theme.Warning
		verdict = "Good effort!"
	}

	headline := grade.Render(fmt.Sprintf("%d%%", rec.Accuracy)) + "  " +
		theme.Body.Render(verdict)

	detail := lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join([]string{
		bank.SubjectName(rec.Subject),
		fmt.Sprintf("%d/%d correct", rec.CorrectAnswers, rec.TotalQuestions),
		fmt.Sprintf("%d:%02d", rec.TimeSpent/60, rec.TimeSpent%60),
		fmt.Sprintf("%d hints", rec.HintsUsed),
		fmt.Sprintf("%d skips", rec.SkipsUsed),
	}, "   •   "))

	points := theme.Selected.Render(fmt.Sprintf("+%d points", r.outcome.PointsEarned)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("   Level %d", r.outcome.Profile.Level))

	var extras []string
	for _, a := range r.outcome.NewAchievements {
		extras = append(extras, theme.Correct.Render(
			fmt.Sprintf("%s Achievement unlocked: %s (+%d)", a.Icon, a.Title, a.Points)))
	}
	for _, q := range r.outcome.CompletedQuests {
		extras = append(extras, theme.Correct.Render(
			fmt.Sprintf("%s Quest complete: %s (+%d)", q.Icon, q.Title, q.Reward)))
	}

	sections := []string{headline, "", detail, "", points}
	if len(extras) > 0 {
		sections = append(sections, "", strings.Join(extras, "\n"))
	}

	card := theme.Card.Render(strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (r *ResultsScreen) reviewView(width, height int) string {
	questions := r.outcome.Record.Questions
	if len(questions) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Subtitle.Render("Nothing to review"))
	}
	q := questions[r.reviewIdx]

	header := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Review %d/%d", r.reviewIdx+1, len(questions)))

	var verdict string
	switch {
	case q.Correct:
		verdict = theme.Correct.Render("✓ Correct — " + q.UserAnswer)
	case q.UserAnswer == "":
		verdict = theme.Incorrect.Render("✗ Not answered") + "   " +
			theme.Correct.Render("Answer: "+q.CorrectAnswer)
	default:
		verdict = theme.Incorrect.Render("✗ Your answer: "+q.UserAnswer) + "   " +
			theme.Correct.Render("Answer: "+q.CorrectAnswer)
	}

	body := []string{
		theme.Body.Render(q.Question),
		"",
		verdict,
	}
	if q.Explanation != "" {
		body = append(body, "", theme.Hint.Render(q.Explanation))
	}

	card := theme.Card.Width(reviewWidth(width)).Render(strings.Join(body, "\n"))
	content := lipgloss.JoinVertical(lipgloss.Left, header, "", card)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func reviewWidth(width int) int {
	w := width - 20
	if w > 76 {
		w = 76
	}
	if w < 40 {
		w = 40
	}
	return w
}
