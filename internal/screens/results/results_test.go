package results

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nurlan/ubtprep/internal/bank"
	"github.com/nurlan/ubtprep/internal/progress"
	"github.com/nurlan/ubtprep/internal/store"
)

func testOutcome() *progress.Outcome {
	return &progress.Outcome{
		Profile: store.Profile{Name: "Student", Level: 1, Points: 130},
		Record: store.TestRecord{
			Subject:        bank.SubjectPhysics,
			TotalQuestions: 2,
			CorrectAnswers: 1,
			Accuracy:       50,
			TimeSpent:      125,
			Questions: []store.QuestionReview{
				{Question: "q1", UserAnswer: "A", CorrectAnswer: "A", Correct: true, Explanation: "e1"},
				{Question: "q2", UserAnswer: "", CorrectAnswer: "B", Correct: false, Explanation: "e2"},
			},
		},
		PointsEarned: 10,
		NewAchievements: []progress.Achievement{
			{ID: "first_step", Title: "First Step", Icon: "🎯", Points: 10},
		},
	}
}

func TestResultsScreen_Summary(t *testing.T) {
	s := New(testOutcome())
	view := s.View(100, 30)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
}

func TestResultsScreen_ReviewToggle(t *testing.T) {
	s := New(testOutcome())

	s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if !s.reviewing {
		t.Fatal("expected review mode after R")
	}
	if view := s.View(100, 30); view == "" {
		t.Error("expected non-empty review view")
	}

	s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if s.reviewing {
		t.Error("expected summary mode after second R")
	}
}

func TestResultsScreen_ReviewNavigation(t *testing.T) {
	s := New(testOutcome())
	s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.reviewIdx != 1 {
		t.Errorf("review index = %d, want 1", s.reviewIdx)
	}

	// bounded at the last question
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.reviewIdx != 1 {
		t.Errorf("review index = %d, want 1", s.reviewIdx)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.reviewIdx != 0 {
		t.Errorf("review index = %d, want 0", s.reviewIdx)
	}
}

func TestResultsScreen_KeyHints(t *testing.T) {
	s := New(testOutcome())
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}
