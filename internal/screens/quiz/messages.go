package quiz

import (
	"time"

	"github.com/nurlan/ubtprep/internal/progress"
)

// timerTickMsg fires once per second to refresh the countdown display.
type timerTickMsg time.Time

// timeExpiredMsg is delivered when the session countdown stops.
type timeExpiredMsg struct{}

// resultAppliedMsg carries the progression outcome after a finished quiz
// has been recorded.
type resultAppliedMsg struct {
	Outcome *progress.Outcome
	Err     error
}
