package progress

import "github.com/nurlan/ubtprep/internal/store"

// Achievement is a one-time unlockable milestone. Unlock conditions are a
// closed set of typed predicates over the profile's counters; no
// condition is ever evaluated from data.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Points      int
	Unlocked    func(p store.Profile) bool
}

// achievements is the full milestone catalog, in display order.
var achievements = []Achievement{
	{
		ID:          "first_step",
		Title:       "First Step",
		Description: "Complete your first test",
		Icon:        "🎯",
		Points:      10,
		Unlocked:    func(p store.Profile) bool { return p.TestsCompleted >= 1 },
	},
	{
		ID:          "test_expert",
		Title:       "Test Expert",
		Description: "Complete 10 tests",
		Icon:        "📝",
		Points:      100,
		Unlocked:    func(p store.Profile) bool { return p.TestsCompleted >= 10 },
	},
	{
		ID:          "physics_fan",
		Title:       "Physics Fan",
		Description: "Complete 5 physics tests",
		Icon:        "🔬",
		Points:      50,
		Unlocked:    func(p store.Profile) bool { return p.PhysicsTests >= 5 },
	},
	{
		ID:          "math_talent",
		Title:       "Math Talent",
		Description: "Complete 5 mathematics tests",
		Icon:        "📐",
		Points:      50,
		Unlocked:    func(p store.Profile) bool { return p.MathTests >= 5 },
	},
	{
		ID:          "sharp_eye",
		Title:       "Sharp Eye",
		Description: "Reach 80% overall accuracy",
		Icon:        "⭐",
		Points:      200,
		Unlocked:    func(p store.Profile) bool { return p.Accuracy >= 80 },
	},
}

// Achievements returns the milestone catalog.
func Achievements() []Achievement {
	return achievements
}

// AchievementByID returns the achievement with the given id.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
