package quiz

import (
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nurlan/ubtprep/internal/bank"
	"github.com/nurlan/ubtprep/internal/progress"
	sess "github.com/nurlan/ubtprep/internal/quiz"
	"github.com/nurlan/ubtprep/internal/router"
	"github.com/nurlan/ubtprep/internal/screen"
	"github.com/nurlan/ubtprep/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestScreen(t *testing.T) *QuizScreen {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })

	session := sess.New(bank.SubjectPhysics, sess.DefaultConfig())
	s := New(session, progress.NewEngine(st))
	s.Init()
	t.Cleanup(s.Teardown)
	return s
}

func TestQuizScreenStartsSession(t *testing.T) {
	s := newTestScreen(t)
	if s.session.Phase() != sess.PhaseActive {
		t.Fatalf("expected active session after Init, got phase %d", s.session.Phase())
	}
	if view := s.View(100, 30); view == "" {
		t.Error("expected non-empty question view")
	}
}

func TestQuizScreenAnswerKeyRecordsChoice(t *testing.T) {
	s := newTestScreen(t)

	s.Update(keyPress('b'))

	if got := s.session.Answer(0); got != "B" {
		t.Errorf("answer = %q, want B", got)
	}
}

func TestQuizScreenNextAdvances(t *testing.T) {
	s := newTestScreen(t)

	s.Update(specialKey(tea.KeyRight))

	if s.session.CurrentIndex() != 1 {
		t.Errorf("index = %d, want 1", s.session.CurrentIndex())
	}
}

func TestQuizScreenHintKey(t *testing.T) {
	s := newTestScreen(t)

	s.Update(keyPress('h'))

	if s.hint == "" {
		t.Error("expected a hint after pressing h")
	}
	if left := s.session.HintsLeft(); left != sess.DefaultMaxHints-1 {
		t.Errorf("hints left = %d, want %d", left, sess.DefaultMaxHints-1)
	}

	// same question, same hint: no second charge
	s.Update(keyPress('h'))
	if left := s.session.HintsLeft(); left != sess.DefaultMaxHints-1 {
		t.Errorf("hints left after repeat = %d, want %d", left, sess.DefaultMaxHints-1)
	}
}

func TestQuizScreenSkipKey(t *testing.T) {
	s := newTestScreen(t)

	s.Update(keyPress('s'))

	if s.session.CurrentIndex() != 1 {
		t.Errorf("index = %d, want 1", s.session.CurrentIndex())
	}
	if left := s.session.SkipsLeft(); left != sess.DefaultMaxSkips-1 {
		t.Errorf("skips left = %d, want %d", left, sess.DefaultMaxSkips-1)
	}
}

func TestQuizScreenQuitConfirm(t *testing.T) {
	s := newTestScreen(t)

	s.Update(specialKey(tea.KeyEscape))
	if !s.showQuitConfirm {
		t.Fatal("expected quit confirmation after Esc")
	}

	_, cmd := s.Update(keyPress('n'))
	if s.showQuitConfirm || cmd != nil {
		t.Error("expected N to dismiss the confirmation")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd = s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command on Y")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestQuizScreenFinishFlow(t *testing.T) {
	s := newTestScreen(t)

	var scr screen.Screen = s
	var cmd tea.Cmd
	for i := 0; i < s.session.Len(); i++ {
		scr, cmd = scr.Update(specialKey(tea.KeyRight))
	}

	if cmd == nil {
		t.Fatal("expected a scoring command after the last question")
	}
	applied, ok := cmd().(resultAppliedMsg)
	if !ok {
		t.Fatalf("expected resultAppliedMsg, got %T", cmd())
	}
	if applied.Err != nil {
		t.Fatalf("apply result: %v", applied.Err)
	}
	if applied.Outcome.Profile.TestsCompleted != 1 {
		t.Errorf("tests completed = %d, want 1", applied.Outcome.Profile.TestsCompleted)
	}

	_, cmd = scr.Update(applied)
	if cmd == nil {
		t.Fatal("expected a navigation command after scoring")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Errorf("expected ReplaceScreenMsg, got %T", cmd())
	}
}

func TestQuizScreenExpiryFinishes(t *testing.T) {
	s := newTestScreen(t)

	// expiry with time left is ignored (covers cancellation close)
	_, cmd := s.Update(timeExpiredMsg{})
	if cmd != nil {
		t.Error("expected no command while time remains")
	}
	if s.session.Phase() != sess.PhaseActive {
		t.Error("session must stay active while time remains")
	}
}
