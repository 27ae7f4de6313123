package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := openTestStore(t)

	p, err := src.Profile()
	require.NoError(t, err)
	p.Name = "Aizhan"
	p.Points = 730
	p.Level = 1
	require.NoError(t, src.SaveProfile(p))

	_, err = src.AppendHistory(TestRecord{ID: "rec-1", Subject: "physics", CorrectAnswers: 7, TotalQuestions: 10})
	require.NoError(t, err)
	require.NoError(t, src.AddScheduleItem(ScheduleItem{ID: "slot-1", Subject: "Math", DayOfWeek: 1}))
	require.NoError(t, src.SaveQuestProgress(map[string]QuestState{"daily_test": {Progress: 2}}))

	blob, err := src.Export()
	require.NoError(t, err)

	dst := openTestStore(t)
	require.NoError(t, dst.Import(blob))

	gotProfile, err := dst.Profile()
	require.NoError(t, err)
	assert.Equal(t, "Aizhan", gotProfile.Name)
	assert.Equal(t, 730, gotProfile.Points)

	history, err := dst.History()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "rec-1", history[0].ID)

	schedule, err := dst.Schedule()
	require.NoError(t, err)
	require.Len(t, schedule, 1)
	assert.Equal(t, "Math", schedule[0].Subject)

	quests, err := dst.QuestProgress()
	require.NoError(t, err)
	assert.Equal(t, 2, quests["daily_test"].Progress)
}

func TestImportPartialDocument(t *testing.T) {
	st := openTestStore(t)

	p, err := st.Profile()
	require.NoError(t, err)
	p.Points = 999
	require.NoError(t, st.SaveProfile(p))

	// only a schedule section: the profile must survive
	blob := []byte(`{"schedule":[{"id":"slot-9","subject":"Physics","dayOfWeek":4}]}`)
	require.NoError(t, st.Import(blob))

	gotProfile, err := st.Profile()
	require.NoError(t, err)
	assert.Equal(t, 999, gotProfile.Points)

	schedule, err := st.Schedule()
	require.NoError(t, err)
	require.Len(t, schedule, 1)
	assert.Equal(t, "slot-9", schedule[0].ID)
}

func TestImportRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"not JSON", `{{{`},
		{"not an object", `[1,2,3]`},
		{"no known section", `{"exportDate":"2026-08-29T00:00:00Z"}`},
		{"wrong section type", `{"profile":[1,2]}`},
		{"history not an array", `{"history":{"id":"x"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := openTestStore(t)

			p, err := st.Profile()
			require.NoError(t, err)
			p.Points = 123
			require.NoError(t, st.SaveProfile(p))

			require.Error(t, st.Import([]byte(tt.blob)))

			// a rejected import must not have touched anything
			got, err := st.Profile()
			require.NoError(t, err)
			assert.Equal(t, 123, got.Points)
		})
	}
}
