package bank

import (
	"math/rand"
)

// Subject identifiers known to the bank.
const (
	SubjectPhysics     = "physics"
	SubjectMathematics = "mathematics"
)

// Question is a single multiple-choice question. Questions are immutable
// and defined at load time.
type Question struct {
	ID          int
	Text        string
	Options     map[string]string
	Correct     string
	Explanation string
	Hint        string
	Difficulty  int // 1..3
}

// OptionLabels is the display order for answer options.
var OptionLabels = []string{"A", "B", "C", "D"}

// Material is a study resource attached to a subject.
type Material struct {
	ID          int
	Title       string
	Type        string // "video" | "pdf"
	Topic       string
	Description string
	Duration    string // videos
	Pages       int    // pdfs
	Difficulty  int
}

// DifficultyStats counts questions per difficulty tier.
type DifficultyStats struct {
	Total  int
	Easy   int
	Medium int
	Hard   int
}

// Subjects returns the subject identifiers with at least one question,
// in display order.
func Subjects() []string {
	return []string{SubjectPhysics, SubjectMathematics}
}

// SubjectName returns the display name for a subject identifier.
func SubjectName(subject string) string {
	switch subject {
	case SubjectPhysics:
		return "Physics"
	case SubjectMathematics:
		return "Mathematics"
	default:
		return subject
	}
}

// RandomQuestions samples up to count questions for the subject without
// replacement, in uniformly random order. Unknown subjects yield an empty
// slice; a bank smaller than count yields the whole bank shuffled.
func RandomQuestions(subject string, count int) []Question {
	pool, ok := questions[subject]
	if !ok || count <= 0 {
		return nil
	}

	shuffled := make([]Question, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

// ByID returns the question with the given id, or false if the subject or
// id is unknown.
func ByID(subject string, id int) (Question, bool) {
	for _, q := range questions[subject] {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// MaterialsFor returns the study materials for a subject.
func MaterialsFor(subject string) []Material {
	return materials[subject]
}

// SubjectStats returns per-difficulty question counts keyed by subject.
func SubjectStats() map[string]DifficultyStats {
	stats := make(map[string]DifficultyStats, len(questions))
	for subject, pool := range questions {
		var s DifficultyStats
		s.Total = len(pool)
		for _, q := range pool {
			switch q.Difficulty {
			case 1:
				s.Easy++
			case 2:
				s.Medium++
			case 3:
				s.Hard++
			}
		}
		stats[subject] = s
	}
	return stats
}
