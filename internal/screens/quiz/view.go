package quiz

import (
	"fmt"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/nurlan/ubtprep/internal/ui/components"
	"github.com/nurlan/ubtprep/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	if q.errMsg != "" {
		return renderError(width, height, q.errMsg)
	}
	if q.showQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	if q.applying {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Subtitle.Render("Scoring..."))
	}
	return q.renderQuestionView(width, height)
}

func (q *QuizScreen) renderQuestionView(width, height int) string {
	question, ok := q.session.Current()
	if !ok {
		return ""
	}

	status := fmt.Sprintf(
		"Question %d/%d   ⏱ %s   Hints %d   Skips %d",
		q.session.CurrentIndex()+1,
		q.session.Len(),
		formatDuration(q.remaining),
		q.session.HintsLeft(),
		q.session.SkipsLeft(),
	)
	statusStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if q.remaining <= time.Minute {
		statusStyle = theme.Warning
	}

	card := theme.Card.Width(cardWidth(width)).Render(
		theme.Body.Render(question.Text))

	var hintView string
	if q.hint != "" {
		hintView = theme.Hint.Render("💡 " + q.hint)
	}

	answered := components.NewProgressBar(
		"Answered",
		float64(q.session.Answered())/float64(q.session.Len()),
		false,
		cardWidth(width),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		statusStyle.Render(status),
		"",
		card,
		"",
		q.options.View(),
		hintView,
		"",
		answered.View(),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderQuitConfirm(width, height int) string {
	box := theme.Card.Render(
		theme.Body.Render("Abandon this test?") + "\n\n" +
			theme.Hint.Render("Progress will not be saved."))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func renderError(width, height int, msg string) string {
	box := theme.Card.Render(
		theme.Incorrect.Render("Something went wrong") + "\n\n" +
			theme.Body.Render(msg))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func cardWidth(width int) int {
	w := width - 20
	if w > 76 {
		w = 76
	}
	if w < 40 {
		w = 40
	}
	return w
}

// formatDuration renders a countdown as M:SS.
func formatDuration(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
