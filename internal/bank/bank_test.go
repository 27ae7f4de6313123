package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomQuestions(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		count   int
		wantLen int
	}{
		{"physics full draw", SubjectPhysics, 10, 10},
		{"math partial draw", SubjectMathematics, 4, 4},
		{"count above bank size", SubjectPhysics, 50, 10},
		{"unknown subject", "chemistry", 10, 0},
		{"zero count", SubjectPhysics, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RandomQuestions(tt.subject, tt.count)
			assert.Len(t, got, tt.wantLen)

			seen := make(map[int]bool, len(got))
			for _, q := range got {
				assert.False(t, seen[q.ID], "question %d drawn twice", q.ID)
				seen[q.ID] = true
			}
		})
	}
}

func TestRandomQuestionsDoesNotMutateBank(t *testing.T) {
	before := make([]int, 0, len(questions[SubjectPhysics]))
	for _, q := range questions[SubjectPhysics] {
		before = append(before, q.ID)
	}

	for i := 0; i < 10; i++ {
		RandomQuestions(SubjectPhysics, 10)
	}

	for i, q := range questions[SubjectPhysics] {
		assert.Equal(t, before[i], q.ID, "bank order changed at %d", i)
	}
}

func TestQuestionsWellFormed(t *testing.T) {
	for subject, pool := range questions {
		for _, q := range pool {
			require.NotEmpty(t, q.Text, "%s/%d has no text", subject, q.ID)
			require.Len(t, q.Options, len(OptionLabels), "%s/%d option count", subject, q.ID)
			_, ok := q.Options[q.Correct]
			require.True(t, ok, "%s/%d correct label %q not among options", subject, q.ID, q.Correct)
			require.NotEmpty(t, q.Hint, "%s/%d has no hint", subject, q.ID)
		}
	}
}

func TestByID(t *testing.T) {
	q, ok := ByID(SubjectPhysics, 1)
	require.True(t, ok)
	assert.Equal(t, 1, q.ID)

	_, ok = ByID(SubjectPhysics, 999)
	assert.False(t, ok)

	_, ok = ByID("chemistry", 1)
	assert.False(t, ok)
}

func TestSubjectName(t *testing.T) {
	assert.Equal(t, "Physics", SubjectName(SubjectPhysics))
	assert.Equal(t, "Mathematics", SubjectName(SubjectMathematics))
	assert.Equal(t, "biology", SubjectName("biology"))
}

func TestSubjectStats(t *testing.T) {
	stats := SubjectStats()
	for _, subject := range Subjects() {
		s, ok := stats[subject]
		require.True(t, ok, "no stats for %s", subject)
		assert.Equal(t, s.Total, s.Easy+s.Medium+s.Hard, "%s tiers must sum to total", subject)
		assert.Equal(t, len(questions[subject]), s.Total)
	}
}

func TestMaterialsFor(t *testing.T) {
	for _, subject := range Subjects() {
		assert.NotEmpty(t, MaterialsFor(subject), "no materials for %s", subject)
	}
	assert.Empty(t, MaterialsFor("chemistry"))
}
