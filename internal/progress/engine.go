// Package progress derives the persisted progression state — points,
// level, streak, achievements and quest progress — from completed quiz
// results.
package progress

import (
	"fmt"
	"math"
	"time"

	"github.com/nurlan/ubtprep/internal/bank"
	"github.com/nurlan/ubtprep/internal/quiz"
	"github.com/nurlan/ubtprep/internal/store"
)

// ExperiencePerLevel is the experience span of one level.
const ExperiencePerLevel = 1000

// AccuracyBonusThreshold and AccuracyBonusPoints award a flat bonus for
// high-accuracy tests.
const (
	AccuracyBonusThreshold = 80
	AccuracyBonusPoints    = 50
	PointsPerCorrectAnswer = 10
)

// Engine applies quiz results to the persisted progression state. It is
// constructed with its store explicitly; nothing here reaches for
// ambient globals.
type Engine struct {
	store *store.Store
	now   func() time.Time
}

// NewEngine creates an Engine backed by st.
func NewEngine(st *store.Store) *Engine {
	return &Engine{store: st, now: time.Now}
}

// Outcome reports everything a single ApplyResult changed.
type Outcome struct {
	Profile         store.Profile
	Record          store.TestRecord
	PointsEarned    int
	NewAchievements []Achievement
	CompletedQuests []Quest
}

// LevelFor returns the level derived from experience. Levels never
// decrease because experience only grows.
func LevelFor(experience int) int {
	if experience < 0 {
		experience = 0
	}
	return experience/ExperiencePerLevel + 1
}

// ApplyResult records a completed quiz: appends it to the capped history,
// recomputes the profile aggregates, awards points, and evaluates
// achievements and quests. It must be invoked exactly once per result;
// results are produced exactly once by the quiz session.
func (e *Engine) ApplyResult(r *quiz.Result) (*Outcome, error) {
	now := e.now()
	rec := recordFromResult(r, now)

	history, err := e.store.AppendHistory(rec)
	if err != nil {
		return nil, fmt.Errorf("append history: %w", err)
	}

	profile, err := e.store.Profile()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	// Accuracy is the weighted average over the retained history only.
	profile.Accuracy = historyAccuracy(history)

	profile.TestsCompleted++
	switch r.Subject {
	case bank.SubjectPhysics:
		profile.PhysicsTests++
	case bank.SubjectMathematics:
		profile.MathTests++
	}

	profile.Streak = nextStreak(profile.Streak, profile.LastTestDate, now)
	profile.LastTestDate = now.Format(time.RFC3339)

	outcome := &Outcome{Record: rec}

	earned := r.CorrectAnswers * PointsPerCorrectAnswer
	if r.Accuracy >= AccuracyBonusThreshold {
		earned += AccuracyBonusPoints
	}
	addPoints(&profile, earned)
	outcome.PointsEarned = earned

	outcome.NewAchievements = unlockAchievements(&profile)
	for _, a := range outcome.NewAchievements {
		outcome.PointsEarned += a.Points
	}

	completed, err := e.advanceQuests(&profile, r.Subject, now)
	if err != nil {
		return nil, err
	}
	outcome.CompletedQuests = completed
	for _, q := range completed {
		outcome.PointsEarned += q.Reward
	}

	if err := e.store.SaveProfile(profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	outcome.Profile = profile
	return outcome, nil
}

// addPoints adds pts to points and experience and re-derives the level.
func addPoints(p *store.Profile, pts int) {
	p.Points += pts
	p.Experience += pts
	p.Level = LevelFor(p.Experience)
}

// unlockAchievements evaluates every locked achievement against the
// profile, unlocking and awarding each newly satisfied one.
func unlockAchievements(p *store.Profile) []Achievement {
	unlocked := make(map[string]bool, len(p.Achievements))
	for _, id := range p.Achievements {
		unlocked[id] = true
	}

	var fresh []Achievement
	for _, a := range achievements {
		if unlocked[a.ID] || !a.Unlocked(*p) {
			continue
		}
		p.Achievements = append(p.Achievements, a.ID)
		addPoints(p, a.Points)
		fresh = append(fresh, a)
	}
	return fresh
}

// advanceQuests updates every active quest for one completed test and
// completes those that reached their target, awarding their reward once.
func (e *Engine) advanceQuests(p *store.Profile, subject string, now time.Time) ([]Quest, error) {
	states, err := e.store.QuestProgress()
	if err != nil {
		return nil, fmt.Errorf("load quest progress: %w", err)
	}

	var completed []Quest
	for _, q := range ActiveQuests() {
		state := states[q.ID]
		if state.Completed {
			continue
		}

		switch q.Type {
		case QuestDaily:
			state.Progress++
		case QuestSubject:
			if q.Subject != subject {
				states[q.ID] = state
				continue
			}
			state.Progress++
		case QuestStreak:
			state.Progress = p.Streak
		}

		if state.Progress >= q.Target {
			state.Completed = true
			state.CompletedAt = now.Format(time.RFC3339)
			state.Reward = q.Reward
			addPoints(p, q.Reward)
			completed = append(completed, q)
		}
		states[q.ID] = state
	}

	if err := e.store.SaveQuestProgress(states); err != nil {
		return nil, fmt.Errorf("save quest progress: %w", err)
	}
	return completed, nil
}

// nextStreak advances the consecutive-day counter: a test yesterday
// extends it, a test earlier today leaves it, anything else (including no
// prior test) resets it to 1.
func nextStreak(current int, lastTestDate string, now time.Time) int {
	last, err := time.Parse(time.RFC3339, lastTestDate)
	if err != nil {
		return 1
	}
	switch {
	case sameDay(last, now):
		return current
	case sameDay(last, now.AddDate(0, 0, -1)):
		return current + 1
	default:
		return 1
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// historyAccuracy is round(100 * Σcorrect / Σtotal) over the retained
// history, 0 when empty.
func historyAccuracy(history []store.TestRecord) int {
	totalCorrect, totalQuestions := 0, 0
	for _, rec := range history {
		totalCorrect += rec.CorrectAnswers
		totalQuestions += rec.TotalQuestions
	}
	if totalQuestions == 0 {
		return 0
	}
	return int(math.Round(float64(totalCorrect) / float64(totalQuestions) * 100))
}

func recordFromResult(r *quiz.Result, now time.Time) store.TestRecord {
	reviews := make([]store.QuestionReview, 0, len(r.Questions))
	for _, q := range r.Questions {
		reviews = append(reviews, store.QuestionReview{
			Question:      q.Question,
			UserAnswer:    q.UserAnswer,
			CorrectAnswer: q.CorrectAnswer,
			Correct:       q.Correct,
			Explanation:   q.Explanation,
		})
	}
	return store.TestRecord{
		ID:             r.ID,
		Subject:        r.Subject,
		TotalQuestions: r.TotalQuestions,
		CorrectAnswers: r.CorrectAnswers,
		Accuracy:       r.Accuracy,
		TimeSpent:      r.TimeSpent,
		HintsUsed:      r.HintsUsed,
		SkipsUsed:      r.SkipsUsed,
		Date:           now.Format(time.RFC3339),
		Questions:      reviews,
	}
}
