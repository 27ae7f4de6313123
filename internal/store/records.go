package store

import (
	"fmt"
	"time"
)

// Record keys. Each value is a JSON document matching the types below.
const (
	KeyProfile       = "user_profile"
	KeyAdminIDs      = "admin_ids"
	KeyHistory       = "test_history"
	KeySchedule      = "schedule"
	KeyQuestProgress = "quest_progress"
	KeySettings      = "settings"
)

// HistoryLimit caps the retained test history; older entries are dropped.
const HistoryLimit = 100

// Roles a profile can hold.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Profile is the mutable user aggregate.
type Profile struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Username       string   `json:"username"`
	Language       string   `json:"language"`
	Role           string   `json:"role"`
	Level          int      `json:"level"`
	Points         int      `json:"points"`
	Experience     int      `json:"experience"`
	TestsCompleted int      `json:"testsCompleted"`
	PhysicsTests   int      `json:"physicsTests"`
	MathTests      int      `json:"mathTests"`
	Accuracy       int      `json:"accuracy"`
	Streak         int      `json:"streak"`
	LastTestDate   string   `json:"lastTestDate,omitempty"` // RFC 3339
	Achievements   []string `json:"achievements"`
	CreatedAt      string   `json:"createdAt"`
}

// QuestionReview is a per-question entry of a stored test result.
type QuestionReview struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation"`
}

// TestRecord is one completed quiz in the history, newest first.
type TestRecord struct {
	ID             string           `json:"id"`
	Subject        string           `json:"subject"`
	TotalQuestions int              `json:"totalQuestions"`
	CorrectAnswers int              `json:"correctAnswers"`
	Accuracy       int              `json:"accuracy"`
	TimeSpent      int              `json:"timeSpent"` // seconds
	HintsUsed      int              `json:"hintsUsed"`
	SkipsUsed      int              `json:"skipsUsed"`
	Date           string           `json:"date"` // RFC 3339
	Questions      []QuestionReview `json:"questions"`
}

// ScheduleItem is one lesson slot in the weekly study schedule.
type ScheduleItem struct {
	ID          string `json:"id"`
	Subject     string `json:"subject"`
	DayOfWeek   int    `json:"dayOfWeek"` // 0 = Monday
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Classroom   string `json:"classroom"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

// QuestState tracks progress for a single quest.
type QuestState struct {
	Progress    int    `json:"progress"`
	Completed   bool   `json:"completed"`
	CompletedAt string `json:"completedAt,omitempty"`
	Reward      int    `json:"reward,omitempty"`
}

// Settings holds user preferences.
type Settings struct {
	Notifications bool   `json:"notifications"`
	Sound         bool   `json:"sound"`
	Theme         string `json:"theme"`
	Language      string `json:"language"`
	Difficulty    string `json:"difficulty"`
}

// DefaultProfile returns the profile seeded on first run.
func DefaultProfile(now time.Time) Profile {
	return Profile{
		ID:           "local",
		Name:         "Student",
		Language:     "en",
		Role:         RoleStudent,
		Level:        1,
		Achievements: []string{},
		CreatedAt:    now.Format(time.RFC3339),
	}
}

// DefaultSettings returns the settings seeded on first run.
func DefaultSettings() Settings {
	return Settings{
		Notifications: true,
		Sound:         true,
		Theme:         "auto",
		Language:      "en",
		Difficulty:    "medium",
	}
}

// seedDefaults writes any record that does not exist yet.
func (s *Store) seedDefaults() error {
	var probe any
	seeds := []struct {
		key   string
		value func() any
	}{
		{KeyProfile, func() any { return DefaultProfile(time.Now()) }},
		{KeyAdminIDs, func() any { return []string{} }},
		{KeyHistory, func() any { return []TestRecord{} }},
		{KeySchedule, func() any { return []ScheduleItem{} }},
		{KeyQuestProgress, func() any { return map[string]QuestState{} }},
		{KeySettings, func() any { return DefaultSettings() }},
	}
	for _, seed := range seeds {
		ok, err := s.Get(seed.key, &probe)
		if err != nil {
			return err
		}
		if !ok {
			if err := s.Set(seed.key, seed.value()); err != nil {
				return err
			}
		}
	}
	return nil
}

// Profile loads the user profile.
func (s *Store) Profile() (Profile, error) {
	var p Profile
	ok, err := s.Get(KeyProfile, &p)
	if err != nil {
		return Profile{}, err
	}
	if !ok {
		return DefaultProfile(time.Now()), nil
	}
	return p, nil
}

// SaveProfile stores the user profile.
func (s *Store) SaveProfile(p Profile) error {
	return s.Set(KeyProfile, p)
}

// History loads the test history, newest first.
func (s *Store) History() ([]TestRecord, error) {
	var h []TestRecord
	if _, err := s.Get(KeyHistory, &h); err != nil {
		return nil, err
	}
	return h, nil
}

// AppendHistory prepends rec to the history and trims it to HistoryLimit
// entries, returning the retained history.
func (s *Store) AppendHistory(rec TestRecord) ([]TestRecord, error) {
	h, err := s.History()
	if err != nil {
		return nil, err
	}
	h = append([]TestRecord{rec}, h...)
	if len(h) > HistoryLimit {
		h = h[:HistoryLimit]
	}
	if err := s.Set(KeyHistory, h); err != nil {
		return nil, err
	}
	return h, nil
}

// Schedule loads the study schedule.
func (s *Store) Schedule() ([]ScheduleItem, error) {
	var items []ScheduleItem
	if _, err := s.Get(KeySchedule, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddScheduleItem appends an item to the schedule.
func (s *Store) AddScheduleItem(item ScheduleItem) error {
	items, err := s.Schedule()
	if err != nil {
		return err
	}
	return s.Set(KeySchedule, append(items, item))
}

// DeleteScheduleItem removes the item with the given id. Unknown ids are
// a no-op.
func (s *Store) DeleteScheduleItem(id string) error {
	items, err := s.Schedule()
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return s.Set(KeySchedule, kept)
}

// QuestProgress loads quest progress keyed by quest id.
func (s *Store) QuestProgress() (map[string]QuestState, error) {
	progress := map[string]QuestState{}
	if _, err := s.Get(KeyQuestProgress, &progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// SaveQuestProgress stores quest progress.
func (s *Store) SaveQuestProgress(progress map[string]QuestState) error {
	return s.Set(KeyQuestProgress, progress)
}

// Settings loads the user settings.
func (s *Store) Settings() (Settings, error) {
	settings := DefaultSettings()
	if _, err := s.Get(KeySettings, &settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// SaveSettings stores the user settings.
func (s *Store) SaveSettings(settings Settings) error {
	return s.Set(KeySettings, settings)
}

// AdminIDs loads the admin allowlist.
func (s *Store) AdminIDs() ([]string, error) {
	var ids []string
	if _, err := s.Get(KeyAdminIDs, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IsAdmin reports whether the profile holds the admin role or appears in
// the admin allowlist.
func (s *Store) IsAdmin(p Profile) (bool, error) {
	if p.Role == RoleAdmin {
		return true, nil
	}
	ids, err := s.AdminIDs()
	if err != nil {
		return false, fmt.Errorf("load admin ids: %w", err)
	}
	for _, id := range ids {
		if id != "" && id == p.ID {
			return true, nil
		}
	}
	return false, nil
}
