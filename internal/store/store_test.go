package store

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestOpenSeedsDefaults(t *testing.T) {
	st := openTestStore(t)

	p, err := st.Profile()
	require.NoError(t, err)
	assert.Equal(t, "Student", p.Name)
	assert.Equal(t, RoleStudent, p.Role)
	assert.Equal(t, 1, p.Level)
	assert.NotNil(t, p.Achievements)

	settings, err := st.Settings()
	require.NoError(t, err)
	assert.Equal(t, "medium", settings.Difficulty)

	history, err := st.History()
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestGetSetRoundTrip(t *testing.T) {
	st := openTestStore(t)

	require.NoError(t, st.Set("some_key", map[string]int{"a": 1}))

	var got map[string]int
	ok, err := st.Get("some_key", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, map[string]int{"a": 1}, got)

	require.NoError(t, st.Set("some_key", map[string]int{"a": 2}))
	_, err = st.Get("some_key", &got)
	require.NoError(t, err)
	assert.Equal(t, 2, got["a"])
}

func TestGetMissingKey(t *testing.T) {
	st := openTestStore(t)

	var v map[string]int
	ok, err := st.Get("never_set", &v)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	st := openTestStore(t)

	require.NoError(t, st.Set("some_key", 42))
	require.NoError(t, st.Remove("some_key"))

	var v int
	ok, err := st.Get("some_key", &v)
	require.NoError(t, err)
	assert.False(t, ok)

	// removing again is a no-op
	assert.NoError(t, st.Remove("some_key"))
}

func TestClearReseeds(t *testing.T) {
	st := openTestStore(t)

	p, err := st.Profile()
	require.NoError(t, err)
	p.Points = 500
	p.Name = "Aizhan"
	require.NoError(t, st.SaveProfile(p))

	require.NoError(t, st.Clear())

	p, err = st.Profile()
	require.NoError(t, err)
	assert.Equal(t, "Student", p.Name)
	assert.Equal(t, 0, p.Points)
}

func TestAppendHistoryNewestFirst(t *testing.T) {
	st := openTestStore(t)

	for i := 1; i <= 3; i++ {
		_, err := st.AppendHistory(TestRecord{ID: fmt.Sprintf("rec-%d", i)})
		require.NoError(t, err)
	}

	history, err := st.History()
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "rec-3", history[0].ID)
	assert.Equal(t, "rec-1", history[2].ID)
}

func TestAppendHistoryCap(t *testing.T) {
	st := openTestStore(t)

	var retained []TestRecord
	var err error
	for i := 1; i <= HistoryLimit+5; i++ {
		retained, err = st.AppendHistory(TestRecord{ID: fmt.Sprintf("rec-%d", i)})
		require.NoError(t, err)
	}

	assert.Len(t, retained, HistoryLimit)
	assert.Equal(t, fmt.Sprintf("rec-%d", HistoryLimit+5), retained[0].ID)
	// the oldest five fell off
	assert.Equal(t, "rec-6", retained[HistoryLimit-1].ID)
}

func TestScheduleAddDelete(t *testing.T) {
	st := openTestStore(t)

	item := ScheduleItem{
		ID:        "slot-1",
		Subject:   "Physics",
		DayOfWeek: 2,
		StartTime: "14:00",
		EndTime:   "15:30",
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	require.NoError(t, st.AddScheduleItem(item))

	items, err := st.Schedule()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Physics", items[0].Subject)

	require.NoError(t, st.DeleteScheduleItem("slot-1"))
	items, err = st.Schedule()
	require.NoError(t, err)
	assert.Empty(t, items)

	// deleting an unknown id is a no-op
	assert.NoError(t, st.DeleteScheduleItem("slot-404"))
}

func TestQuestProgressRoundTrip(t *testing.T) {
	st := openTestStore(t)

	states := map[string]QuestState{
		"daily_test": {Progress: 3},
		"weekly_marathon": {
			Progress:    7,
			Completed:   true,
			CompletedAt: time.Now().Format(time.RFC3339),
			Reward:      500,
		},
	}
	require.NoError(t, st.SaveQuestProgress(states))

	got, err := st.QuestProgress()
	require.NoError(t, err)
	assert.Equal(t, 3, got["daily_test"].Progress)
	assert.True(t, got["weekly_marathon"].Completed)
	assert.Equal(t, 500, got["weekly_marathon"].Reward)
}

func TestIsAdmin(t *testing.T) {
	st := openTestStore(t)

	p, err := st.Profile()
	require.NoError(t, err)

	admin, err := st.IsAdmin(p)
	require.NoError(t, err)
	assert.False(t, admin)

	// allowlisted id
	require.NoError(t, st.Set(KeyAdminIDs, []string{p.ID}))
	admin, err = st.IsAdmin(p)
	require.NoError(t, err)
	assert.True(t, admin)

	// admin role wins regardless of the list
	require.NoError(t, st.Set(KeyAdminIDs, []string{}))
	p.Role = RoleAdmin
	admin, err = st.IsAdmin(p)
	require.NoError(t, err)
	assert.True(t, admin)
}
