// Package quiz implements the timed quiz session state machine: question
// sequencing, answer recording, hint/skip budgets and scoring.
package quiz

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nurlan/ubtprep/internal/bank"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseCreated Phase = iota
	PhaseActive
	PhaseFinished
)

// Session defaults, matching the product's test format.
const (
	DefaultQuestionCount = 10
	DefaultTimeLimit     = 600 * time.Second
	DefaultMaxHints      = 3
	DefaultMaxSkips      = 2
)

// ErrFinished is returned by Finish on an already finished session, so a
// result can never be produced twice.
var ErrFinished = errors.New("quiz: session already finished")

// Config tunes a session. The zero value is replaced by the defaults.
type Config struct {
	QuestionCount int
	TimeLimit     time.Duration
	MaxHints      int
	MaxSkips      int
}

// DefaultConfig returns the standard session configuration.
func DefaultConfig() Config {
	return Config{
		QuestionCount: DefaultQuestionCount,
		TimeLimit:     DefaultTimeLimit,
		MaxHints:      DefaultMaxHints,
		MaxSkips:      DefaultMaxSkips,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.QuestionCount <= 0 {
		c.QuestionCount = d.QuestionCount
	}
	if c.TimeLimit <= 0 {
		c.TimeLimit = d.TimeLimit
	}
	if c.MaxHints <= 0 {
		c.MaxHints = d.MaxHints
	}
	if c.MaxSkips <= 0 {
		c.MaxSkips = d.MaxSkips
	}
	return c
}

// Session is a single timed quiz attempt for one subject. At most one
// session is active per application instance; all mutations happen on the
// UI loop, so the struct needs no lock. The countdown runs as a separate
// task owned by the session and only signals expiry over a channel.
type Session struct {
	ID        string
	Subject   string
	Questions []bank.Question

	answers   []string // aligned by index, "" = unanswered
	current   int
	phase     Phase
	startedAt time.Time
	timeLimit time.Duration

	hintsUsed int
	skipsUsed int
	maxHints  int
	maxSkips  int

	result *Result

	now     func() time.Time
	cancel  context.CancelFunc
	expired chan struct{}
	release sync.Once
}

// New draws questions for the subject and returns a session in the
// Created phase. An unknown subject yields a session with no questions;
// callers should check Len before starting it.
func New(subject string, cfg Config) *Session {
	cfg = cfg.withDefaults()
	qs := bank.RandomQuestions(subject, cfg.QuestionCount)
	return &Session{
		ID:        uuid.New().String(),
		Subject:   subject,
		Questions: qs,
		answers:   make([]string, len(qs)),
		timeLimit: cfg.TimeLimit,
		maxHints:  cfg.MaxHints,
		maxSkips:  cfg.MaxSkips,
		now:       time.Now,
		expired:   make(chan struct{}),
	}
}

// Start transitions the session to Active, records the start time and
// acquires the countdown task. Starting twice is a no-op.
func (s *Session) Start() {
	if s.phase != PhaseCreated {
		return
	}
	s.phase = PhaseActive
	s.startedAt = s.now()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.countdown(ctx, s.startedAt.Add(s.timeLimit))
}

// countdown ticks once per second and closes the expired channel when the
// deadline passes. It never mutates session state itself.
func (s *Session) countdown(ctx context.Context, deadline time.Time) {
	defer close(s.expired)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case tick := <-ticker.C:
			if !tick.Before(deadline) {
				return
			}
		}
	}
}

// Expired returns a channel closed when the countdown stops, either at
// expiry or on cancellation. Receivers must confirm actual expiry via
// Phase and Remaining, and must finish the session themselves.
func (s *Session) Expired() <-chan struct{} {
	return s.expired
}

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Len returns the number of questions in the session.
func (s *Session) Len() int {
	return len(s.Questions)
}

// CurrentIndex returns the index of the current question.
func (s *Session) CurrentIndex() int {
	return s.current
}

// Current returns the current question.
func (s *Session) Current() (bank.Question, bool) {
	if s.current < 0 || s.current >= len(s.Questions) {
		return bank.Question{}, false
	}
	return s.Questions[s.current], true
}

// Answer returns the recorded answer label for index i, "" if unset.
func (s *Session) Answer(i int) string {
	if i < 0 || i >= len(s.answers) {
		return ""
	}
	return s.answers[i]
}

// Answered counts the slots with a recorded answer.
func (s *Session) Answered() int {
	n := 0
	for _, a := range s.answers {
		if a != "" {
			n++
		}
	}
	return n
}

// HintsLeft returns the remaining hint budget.
func (s *Session) HintsLeft() int {
	return s.maxHints - s.hintsUsed
}

// SkipsLeft returns the remaining skip budget.
func (s *Session) SkipsLeft() int {
	return s.maxSkips - s.skipsUsed
}

// SelectAnswer records label for the current question, overwriting any
// previous choice. Outside the Active phase this is a no-op.
func (s *Session) SelectAnswer(label string) {
	if s.phase != PhaseActive {
		return
	}
	s.answers[s.current] = label
}

// Next moves to the following question. On the last question it finishes
// the session instead and reports that it did.
func (s *Session) Next() bool {
	if s.phase != PhaseActive {
		return false
	}
	if s.current < len(s.Questions)-1 {
		s.current++
		return false
	}
	_, _ = s.Finish()
	return true
}

// Previous moves back one question, bounded at the first.
func (s *Session) Previous() {
	if s.phase != PhaseActive {
		return
	}
	if s.current > 0 {
		s.current--
	}
}

// UseHint returns the current question's hint text. The counter grows
// only while budget remains; past the budget the same hint is returned
// without a further increment.
func (s *Session) UseHint() string {
	if s.phase != PhaseActive {
		return ""
	}
	q, ok := s.Current()
	if !ok {
		return ""
	}
	if s.hintsUsed < s.maxHints {
		s.hintsUsed++
	}
	return q.Hint
}

// Skip advances past the current question, spending one skip. Past the
// budget it is a silent no-op. Skipping the last question finishes the
// session; the return value reports that.
func (s *Session) Skip() bool {
	if s.phase != PhaseActive {
		return false
	}
	if s.skipsUsed >= s.maxSkips {
		return false
	}
	s.skipsUsed++
	return s.Next()
}

// Remaining returns the time left on the countdown, floored at zero.
func (s *Session) Remaining() time.Duration {
	if s.phase != PhaseActive {
		return 0
	}
	left := s.timeLimit - s.now().Sub(s.startedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Finish scores the session and transitions it to Finished, releasing the
// countdown task. Unanswered slots score as incorrect. A second call
// returns ErrFinished.
func (s *Session) Finish() (*Result, error) {
	if s.phase == PhaseFinished {
		return nil, ErrFinished
	}
	s.phase = PhaseFinished
	s.stopCountdown()

	timeSpent := 0
	if !s.startedAt.IsZero() {
		timeSpent = int(s.now().Sub(s.startedAt) / time.Second)
		if limit := int(s.timeLimit / time.Second); timeSpent > limit {
			timeSpent = limit
		}
	}

	correct := 0
	reviews := make([]QuestionResult, 0, len(s.Questions))
	for i, q := range s.Questions {
		answer := s.answers[i]
		isCorrect := answer != "" && answer == q.Correct
		if isCorrect {
			correct++
		}
		reviews = append(reviews, QuestionResult{
			Question:      q.Text,
			UserAnswer:    answer,
			CorrectAnswer: q.Correct,
			Correct:       isCorrect,
			Explanation:   q.Explanation,
		})
	}

	s.result = &Result{
		ID:             s.ID,
		Subject:        s.Subject,
		TotalQuestions: len(s.Questions),
		CorrectAnswers: correct,
		Accuracy:       accuracyPercent(correct, len(s.Questions)),
		TimeSpent:      timeSpent,
		HintsUsed:      s.hintsUsed,
		SkipsUsed:      s.skipsUsed,
		Questions:      reviews,
	}
	return s.result, nil
}

// Result returns the finished session's result, if any.
func (s *Session) Result() (*Result, bool) {
	if s.result == nil {
		return nil, false
	}
	return s.result, true
}

// Cleanup releases the countdown task. It is safe to call in any phase
// and more than once; screen teardown must always call it.
func (s *Session) Cleanup() {
	s.stopCountdown()
}

func (s *Session) stopCountdown() {
	s.release.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}
