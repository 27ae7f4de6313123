package progress

import "github.com/nurlan/ubtprep/internal/bank"

// QuestType classifies how a quest's progress advances.
type QuestType string

const (
	QuestDaily   QuestType = "daily"   // +1 per completed test
	QuestSubject QuestType = "subject" // +1 per completed test of Subject
	QuestStreak  QuestType = "streak"  // tracks the profile streak
)

// Quest is a configured progress goal awarding points on completion.
type Quest struct {
	ID          string
	Title       string
	Description string
	Type        QuestType
	Target      int
	Reward      int
	Subject     string // QuestSubject only
	Icon        string
	Active      bool
}

// quests is the static quest configuration.
var quests = []Quest{
	{
		ID:          "daily_test",
		Title:       "Daily Test",
		Description: "Answer a test in any subject, 5 times",
		Type:        QuestDaily,
		Target:      5,
		Reward:      50,
		Icon:        "📝",
		Active:      true,
	},
	{
		ID:          "physics_expert",
		Title:       "Physics Expert",
		Description: "Complete 10 physics tests",
		Type:        QuestSubject,
		Target:      10,
		Reward:      200,
		Subject:     bank.SubjectPhysics,
		Icon:        "🔬",
		Active:      true,
	},
	{
		ID:          "math_champion",
		Title:       "Math Champion",
		Description: "Complete 15 mathematics tests",
		Type:        QuestSubject,
		Target:      15,
		Reward:      300,
		Subject:     bank.SubjectMathematics,
		Icon:        "📐",
		Active:      true,
	},
	{
		ID:          "weekly_marathon",
		Title:       "Weekly Marathon",
		Description: "Take a test 7 days in a row",
		Type:        QuestStreak,
		Target:      7,
		Reward:      500,
		Icon:        "🔥",
		Active:      true,
	},
}

// ActiveQuests returns the quests currently offered.
func ActiveQuests() []Quest {
	active := make([]Quest, 0, len(quests))
	for _, q := range quests {
		if q.Active {
			active = append(active, q)
		}
	}
	return active
}

// QuestByID returns the quest with the given id.
func QuestByID(id string) (Quest, bool) {
	for _, q := range quests {
		if q.ID == id {
			return q, true
		}
	}
	return Quest{}, false
}
