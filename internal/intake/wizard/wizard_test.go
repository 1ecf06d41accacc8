package wizard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lifeos/governance/internal/intake"
)

func typeAndEnter(m *Model, text string) tea.Cmd {
	if text != "" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

// Test 1: typed answers land in the session and the last enter quits.
func TestWizard_CompletesSession(t *testing.T) {
	s := intake.NewSession("CLI")
	m := New(s)

	var last tea.Cmd
	for !s.Done() {
		step, _ := s.Current()
		answer := "50"
		switch step.Key {
		case "description":
			answer = "Abrir filial"
		case "type":
			answer = "structural"
		case "impact":
			answer = "high"
		}
		last = typeAndEnter(m, answer)
	}
	if last == nil {
		t.Fatalf("expected quit command after final step")
	}
	if _, ok := last().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}

	in, err := s.Input()
	if err != nil {
		t.Fatalf("input: %v", err)
	}
	if in.Assessment.Energy != 50 || in.Decision.Description != "Abrir filial" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if m.Aborted() {
		t.Fatalf("completed wizard must not report aborted")
	}
}

// Test 2: an invalid choice shows an error and stays on the step.
func TestWizard_InvalidChoice(t *testing.T) {
	s := intake.NewSession("CLI")
	m := New(s)
	for {
		step, _ := s.Current()
		if step.Key == "type" {
			break
		}
		typeAndEnter(m, "1")
	}
	typeAndEnter(m, "whatever")
	step, _ := s.Current()
	if step.Key != "type" {
		t.Fatalf("expected to stay on type, got %s", step.Key)
	}
	if !strings.Contains(m.View(), "not one of") {
		t.Fatalf("expected error in view")
	}
}

// Test 3: esc aborts, ctrl+b goes back.
func TestWizard_BackAndAbort(t *testing.T) {
	s := intake.NewSession("CLI")
	m := New(s)
	typeAndEnter(m, "10")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	if done, _ := s.Progress(); done != 0 {
		t.Fatalf("expected back to first step, at %d", done)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !m.Aborted() || cmd == nil {
		t.Fatalf("expected abort with quit command")
	}
}

// Test 4: the view shows the current prompt and progress.
func TestWizard_View(t *testing.T) {
	m := New(intake.NewSession("CLI"))
	v := m.View()
	if !strings.Contains(v, "energia") {
		t.Fatalf("expected first prompt in view, got %q", v)
	}
	if !strings.Contains(v, "1/24") {
		t.Fatalf("expected progress counter in view")
	}
}
