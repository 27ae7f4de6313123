// Package quiz implements the screen running a timed test session.
package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nurlan/ubtprep/internal/bank"
	"github.com/nurlan/ubtprep/internal/progress"
	sess "github.com/nurlan/ubtprep/internal/quiz"
	"github.com/nurlan/ubtprep/internal/router"
	"github.com/nurlan/ubtprep/internal/screen"
	"github.com/nurlan/ubtprep/internal/screens/results"
	"github.com/nurlan/ubtprep/internal/ui/components"
	"github.com/nurlan/ubtprep/internal/ui/layout"
)

// QuizScreen drives one quiz session from first question to scoring.
type QuizScreen struct {
	session *sess.Session
	engine  *progress.Engine

	options   components.OptionList
	remaining time.Duration
	hint      string
	applying  bool

	showQuitConfirm bool
	errMsg          string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Teardowner = (*QuizScreen)(nil)

// New creates a QuizScreen over a freshly created session.
func New(session *sess.Session, engine *progress.Engine) *QuizScreen {
	return &QuizScreen{
		session: session,
		engine:  engine,
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	if q.session.Len() == 0 {
		q.errMsg = "no questions available for this subject"
		return nil
	}
	q.session.Start()
	q.remaining = q.session.Remaining()
	q.loadQuestion()
	return tea.Batch(tickCmd(), q.waitExpiry())
}

func (q *QuizScreen) Title() string {
	return bank.SubjectName(q.session.Subject) + " Test"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon test"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if q.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓/A-D", Description: "Answer"},
		{Key: "←/→", Description: "Question"},
	}
	if q.session.HintsLeft() > 0 || q.hint != "" {
		hints = append(hints, layout.KeyHint{Key: "H", Description: "Hint"})
	}
	if q.session.SkipsLeft() > 0 {
		hints = append(hints, layout.KeyHint{Key: "S", Description: "Skip"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

// Teardown releases the countdown when the screen leaves the stack.
func (q *QuizScreen) Teardown() {
	q.session.Cleanup()
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return q.handleTick()

	case timeExpiredMsg:
		return q.handleExpiry()

	case resultAppliedMsg:
		return q.handleApplied(msg)

	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleTick() (screen.Screen, tea.Cmd) {
	if q.session.Phase() != sess.PhaseActive {
		return q, nil
	}
	q.remaining = q.session.Remaining()
	return q, tickCmd()
}

// handleExpiry fires when the countdown stops. The channel also closes on
// cancellation, so a finished session is left alone.
func (q *QuizScreen) handleExpiry() (screen.Screen, tea.Cmd) {
	if q.session.Phase() != sess.PhaseActive || q.session.Remaining() > 0 {
		return q, nil
	}
	q.remaining = 0
	if _, err := q.session.Finish(); err != nil {
		return q, nil
	}
	return q, q.applyResult()
}

func (q *QuizScreen) handleApplied(msg resultAppliedMsg) (screen.Screen, tea.Cmd) {
	q.applying = false
	if msg.Err != nil {
		q.errMsg = msg.Err.Error()
		return q, nil
	}
	return q, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(msg.Outcome)}
	}
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if q.errMsg != "" {
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if q.applying {
		return q, nil
	}

	if q.showQuitConfirm {
		switch key {
		case "y", "Y":
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			q.showQuitConfirm = false
		}
		return q, nil
	}

	switch key {
	case "esc":
		q.showQuitConfirm = true
		return q, nil

	case "right", "n":
		q.session.SelectAnswer(q.options.Chosen)
		if q.session.Next() {
			return q, q.applyResult()
		}
		q.loadQuestion()
		return q, nil

	case "left", "p":
		q.session.SelectAnswer(q.options.Chosen)
		q.session.Previous()
		q.loadQuestion()
		return q, nil

	case "h":
		if q.hint == "" && q.session.HintsLeft() > 0 {
			q.hint = q.session.UseHint()
		}
		return q, nil

	case "s":
		if q.session.SkipsLeft() == 0 {
			return q, nil
		}
		if q.session.Skip() {
			return q, q.applyResult()
		}
		q.loadQuestion()
		return q, nil
	}

	var cmd tea.Cmd
	q.options, cmd = q.options.Update(msg)
	if q.options.Chosen != "" {
		q.session.SelectAnswer(q.options.Chosen)
	}
	return q, cmd
}

// loadQuestion rebuilds the option list for the current question,
// restoring any answer already recorded for it.
func (q *QuizScreen) loadQuestion() {
	q.hint = ""
	question, ok := q.session.Current()
	if !ok {
		return
	}
	q.options = components.NewOptionList(bank.OptionLabels, question.Options)
	if chosen := q.session.Answer(q.session.CurrentIndex()); chosen != "" {
		q.options.Chosen = chosen
		for i, label := range bank.OptionLabels {
			if label == chosen {
				q.options.Cursor = i
			}
		}
	}
}

// applyResult records the finished session through the progression engine
// off the UI loop.
func (q *QuizScreen) applyResult() tea.Cmd {
	q.applying = true
	result, ok := q.session.Result()
	if !ok {
		q.applying = false
		return nil
	}
	engine := q.engine
	return func() tea.Msg {
		outcome, err := engine.ApplyResult(result)
		return resultAppliedMsg{Outcome: outcome, Err: err}
	}
}

// waitExpiry blocks until the session countdown stops.
func (q *QuizScreen) waitExpiry() tea.Cmd {
	expired := q.session.Expired()
	return func() tea.Msg {
		<-expired
		return timeExpiredMsg{}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
