package failure

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edgequiz/internal/session"
)

func TestFailureScreen_DefaultMessage(t *testing.T) {
	s := New("")
	if s.message != session.FetchFailedMessage {
		t.Fatalf("message = %q", s.message)
	}
}

func TestFailureScreen_Display(t *testing.T) {
	view := New("").View(100, 30)
	for _, want := range []string{"MATCH ABANDONED", "Rain stopped play.", "Return to Pavilion"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestFailureScreen_Restart(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: 'r', Text: "r"},
	} {
		_, cmd := New("").Update(key)
		if cmd == nil {
			t.Fatalf("expected a command for %q", key.String())
		}
		if _, ok := cmd().(session.Restart); !ok {
			t.Errorf("key %q: expected session.Restart", key.String())
		}
	}
}

func TestFailureScreen_IgnoresOtherKeys(t *testing.T) {
	if _, cmd := New("").Update(tea.KeyPressMsg{Code: 'q', Text: "q"}); cmd != nil {
		t.Error("q should not leave the screen")
	}
}

func TestFailureScreen_Title(t *testing.T) {
	if New("").Title() != "Abandoned" {
		t.Error("unexpected title")
	}
}
