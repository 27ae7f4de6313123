package progress

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurlan/ubtprep/internal/bank"
	"github.com/nurlan/ubtprep/internal/quiz"
	"github.com/nurlan/ubtprep/internal/store"
)

func newTestEngine(t *testing.T) (*Engine, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewEngine(st), st
}

func physicsResult(correct, total int) *quiz.Result {
	accuracy := 0
	if total > 0 {
		accuracy = correct * 100 / total
	}
	return &quiz.Result{
		ID:             "result-1",
		Subject:        bank.SubjectPhysics,
		TotalQuestions: total,
		CorrectAnswers: correct,
		Accuracy:       accuracy,
		TimeSpent:      300,
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		experience int
		want       int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{2500, 3},
		{-5, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.experience), "experience %d", tt.experience)
	}
}

func TestApplyResultFirstTest(t *testing.T) {
	e, _ := newTestEngine(t)

	outcome, err := e.ApplyResult(physicsResult(7, 10))
	require.NoError(t, err)

	// 7 correct * 10, no accuracy bonus, plus the first_step unlock
	assert.Equal(t, 80, outcome.PointsEarned)
	assert.Equal(t, 80, outcome.Profile.Points)
	assert.Equal(t, 1, outcome.Profile.Level)
	assert.Equal(t, 1, outcome.Profile.TestsCompleted)
	assert.Equal(t, 1, outcome.Profile.PhysicsTests)
	assert.Equal(t, 0, outcome.Profile.MathTests)
	assert.Equal(t, 70, outcome.Profile.Accuracy)
	assert.Equal(t, 1, outcome.Profile.Streak)

	require.Len(t, outcome.NewAchievements, 1)
	assert.Equal(t, "first_step", outcome.NewAchievements[0].ID)
}

func TestApplyResultAccuracyBonus(t *testing.T) {
	e, _ := newTestEngine(t)

	outcome, err := e.ApplyResult(physicsResult(9, 10))
	require.NoError(t, err)

	// 90 base + 50 bonus, plus first_step (10) and sharp_eye (200)
	assert.Equal(t, 350, outcome.PointsEarned)

	ids := make([]string, 0, len(outcome.NewAchievements))
	for _, a := range outcome.NewAchievements {
		ids = append(ids, a.ID)
	}
	assert.ElementsMatch(t, []string{"first_step", "sharp_eye"}, ids)
}

func TestApplyResultRecordsHistory(t *testing.T) {
	e, st := newTestEngine(t)

	_, err := e.ApplyResult(physicsResult(5, 10))
	require.NoError(t, err)

	history, err := st.History()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "result-1", history[0].ID)
	assert.Equal(t, bank.SubjectPhysics, history[0].Subject)
	assert.NotEmpty(t, history[0].Date)
}

func TestApplyResultAchievementAwardedOnce(t *testing.T) {
	e, _ := newTestEngine(t)

	first, err := e.ApplyResult(physicsResult(7, 10))
	require.NoError(t, err)
	require.Len(t, first.NewAchievements, 1)

	second, err := e.ApplyResult(physicsResult(7, 10))
	require.NoError(t, err)
	assert.Empty(t, second.NewAchievements)
	assert.Equal(t, 70, second.PointsEarned)
}

func TestApplyResultQuestCompletion(t *testing.T) {
	e, st := newTestEngine(t)

	// the daily quest needs 5 tests
	for i := 0; i < 4; i++ {
		outcome, err := e.ApplyResult(physicsResult(5, 10))
		require.NoError(t, err)
		assert.Empty(t, outcome.CompletedQuests, "test %d", i+1)
	}

	outcome, err := e.ApplyResult(physicsResult(5, 10))
	require.NoError(t, err)
	require.Len(t, outcome.CompletedQuests, 1)
	assert.Equal(t, "daily_test", outcome.CompletedQuests[0].ID)
	assert.Equal(t, 50, outcome.CompletedQuests[0].Reward)

	// a completed quest never advances or pays out again
	outcome, err = e.ApplyResult(physicsResult(5, 10))
	require.NoError(t, err)
	assert.Empty(t, outcome.CompletedQuests)

	states, err := st.QuestProgress()
	require.NoError(t, err)
	assert.True(t, states["daily_test"].Completed)
	assert.Equal(t, 5, states["daily_test"].Progress)
}

func TestApplyResultSubjectQuestIgnoresOtherSubject(t *testing.T) {
	e, st := newTestEngine(t)

	mathResult := physicsResult(5, 10)
	mathResult.Subject = bank.SubjectMathematics
	_, err := e.ApplyResult(mathResult)
	require.NoError(t, err)

	states, err := st.QuestProgress()
	require.NoError(t, err)
	assert.Equal(t, 0, states["physics_expert"].Progress)
	assert.Equal(t, 1, states["math_champion"].Progress)
}

func TestApplyResultStreak(t *testing.T) {
	e, _ := newTestEngine(t)

	day1 := time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return day1 }

	outcome, err := e.ApplyResult(physicsResult(5, 10))
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Profile.Streak)

	// second test the same day leaves the streak
	e.now = func() time.Time { return day1.Add(5 * time.Hour) }
	outcome, err = e.ApplyResult(physicsResult(5, 10))
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Profile.Streak)

	// next day extends it
	e.now = func() time.Time { return day1.AddDate(0, 0, 1) }
	outcome, err = e.ApplyResult(physicsResult(5, 10))
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Profile.Streak)

	// a gap resets it
	e.now = func() time.Time { return day1.AddDate(0, 0, 4) }
	outcome, err = e.ApplyResult(physicsResult(5, 10))
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Profile.Streak)
}

func TestNextStreak(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		current  int
		lastDate string
		want     int
	}{
		{"no prior test", 0, "", 1},
		{"garbage date", 4, "not-a-date", 1},
		{"same day", 3, now.Add(-2 * time.Hour).Format(time.RFC3339), 3},
		{"yesterday", 3, now.AddDate(0, 0, -1).Format(time.RFC3339), 4},
		{"two days ago", 6, now.AddDate(0, 0, -2).Format(time.RFC3339), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextStreak(tt.current, tt.lastDate, now))
		})
	}
}

func TestHistoryAccuracy(t *testing.T) {
	tests := []struct {
		name    string
		history []store.TestRecord
		want    int
	}{
		{"empty", nil, 0},
		{
			"single record",
			[]store.TestRecord{{CorrectAnswers: 7, TotalQuestions: 10}},
			70,
		},
		{
			"weighted across records",
			[]store.TestRecord{
				{CorrectAnswers: 10, TotalQuestions: 10},
				{CorrectAnswers: 0, TotalQuestions: 10},
				{CorrectAnswers: 5, TotalQuestions: 10},
			},
			50,
		},
		{
			"rounds to nearest",
			[]store.TestRecord{
				{CorrectAnswers: 2, TotalQuestions: 3},
			},
			67,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, historyAccuracy(tt.history))
		})
	}
}

func TestSubjectQuestCompletesAtTarget(t *testing.T) {
	e, _ := newTestEngine(t)

	// physics_expert completes exactly on the 10th physics test
	for i := 1; i <= 9; i++ {
		outcome, err := e.ApplyResult(physicsResult(5, 10))
		require.NoError(t, err)
		for _, q := range outcome.CompletedQuests {
			assert.NotEqual(t, "physics_expert", q.ID, "completed early at test %d", i)
		}
	}

	outcome, err := e.ApplyResult(physicsResult(5, 10))
	require.NoError(t, err)

	ids := make([]string, 0, len(outcome.CompletedQuests))
	for _, q := range outcome.CompletedQuests {
		ids = append(ids, q.ID)
	}
	assert.Contains(t, ids, "physics_expert")

	// the reward was paid exactly once
	before := outcome.Profile.Points
	outcome, err = e.ApplyResult(physicsResult(0, 10))
	require.NoError(t, err)
	assert.Empty(t, outcome.CompletedQuests)
	assert.Equal(t, before, outcome.Profile.Points)
}

func TestAddPointsLevelMonotonic(t *testing.T) {
	p := store.Profile{Level: 1}
	last := p.Level
	for _, pts := range []int{0, 10, 140, 350, 0, 990, 5} {
		addPoints(&p, pts)
		assert.GreaterOrEqual(t, p.Level, last)
		assert.Equal(t, LevelFor(p.Experience), p.Level)
		last = p.Level
	}
}

func TestLevelAdvancesWithExperience(t *testing.T) {
	e, _ := newTestEngine(t)

	var last *Outcome
	var err error
	// 9/10 with bonus yields 140 base per test; achievements add more
	for i := 0; i < 8; i++ {
		last, err = e.ApplyResult(physicsResult(9, 10))
		require.NoError(t, err)
	}

	assert.GreaterOrEqual(t, last.Profile.Experience, 1000)
	assert.Equal(t, LevelFor(last.Profile.Experience), last.Profile.Level)
	assert.GreaterOrEqual(t, last.Profile.Level, 2)
}
