package quiz

import (
	"testing"

	"github.com/typedrill/typedrill/internal/catalog"
	"github.com/typedrill/typedrill/internal/quiz"
)

// finish drives the session from its first question to the result phase.
func finish(s *QuizScreen) {
	for s.session.Phase == quiz.PhaseActive {
		s.session.Advance()
	}
}

func TestRestartRepeatsCategory(t *testing.T) {
	c := catalog.Default()
	s := NewCategory(c, catalog.CategoryBasics)
	if s.startErr != "" {
		t.Fatalf("unexpected start error: %s", s.startErr)
	}

	finish(s)
	if s.session.Phase != quiz.PhaseResult {
		t.Fatalf("Phase = %v, want PhaseResult", s.session.Phase)
	}

	s.restart()

	if s.session.Phase != quiz.PhaseActive {
		t.Errorf("Phase after restart = %v, want PhaseActive", s.session.Phase)
	}
	if s.session.Category != catalog.CategoryBasics {
		t.Errorf("Category after restart = %q, want %q", s.session.Category, catalog.CategoryBasics)
	}
	if s.session.Index != 0 {
		t.Errorf("Index after restart = %d, want 0", s.session.Index)
	}
	if got := s.session.Tracker.Len(); got != 0 {
		t.Errorf("Answered after restart = %d, want 0 (fresh tracker)", got)
	}
}

func TestRestartRandomResamplesSameSize(t *testing.T) {
	c := catalog.Default()
	s := NewRandom(c, 5)
	if s.startErr != "" {
		t.Fatalf("unexpected start error: %s", s.startErr)
	}

	finish(s)
	s.restart()

	if s.session.Phase != quiz.PhaseActive {
		t.Errorf("Phase after restart = %v, want PhaseActive", s.session.Phase)
	}
	if len(s.session.Questions) != 5 {
		t.Errorf("len(Questions) after restart = %d, want 5", len(s.session.Questions))
	}
}

func TestBackToMenuResetsSession(t *testing.T) {
	c := catalog.Default()
	s := NewCategory(c, catalog.CategoryAdvanced)
	finish(s)

	s.backToMenu()

	if s.session.Phase != quiz.PhaseMenu {
		t.Errorf("Phase after backToMenu = %v, want PhaseMenu", s.session.Phase)
	}
	if s.cursor != 0 {
		t.Errorf("cursor after backToMenu = %d, want 0", s.cursor)
	}
	if s.resultFocus != 0 {
		t.Errorf("resultFocus after backToMenu = %d, want 0", s.resultFocus)
	}
}

func TestResultButtonsPressRetry(t *testing.T) {
	c := catalog.Default()
	s := NewCategory(c, catalog.CategoryBasics)
	finish(s)

	s.resultFocus = 0
	retry, menu := s.resultButtons()
	if !retry.Active || menu.Active {
		t.Fatalf("focus 0: retry.Active=%v menu.Active=%v, want true/false", retry.Active, menu.Active)
	}

	retry.OnPress()

	if s.session.Phase != quiz.PhaseActive {
		t.Errorf("Phase after retry press = %v, want PhaseActive", s.session.Phase)
	}
}

func TestResultButtonsPressMenu(t *testing.T) {
	c := catalog.Default()
	s := NewCategory(c, catalog.CategoryBasics)
	finish(s)

	s.resultFocus = 1
	retry, menu := s.resultButtons()
	if retry.Active || !menu.Active {
		t.Fatalf("focus 1: retry.Active=%v menu.Active=%v, want false/true", retry.Active, menu.Active)
	}

	menu.OnPress()

	if s.session.Phase != quiz.PhaseMenu {
		t.Errorf("Phase after menu press = %v, want PhaseMenu", s.session.Phase)
	}
}
