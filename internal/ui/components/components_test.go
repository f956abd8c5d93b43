package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

type pickedMsg int

func testMenu() Menu {
	item := func(i int) MenuItem {
		return MenuItem{Label: string(rune('A' + i)), Action: func() tea.Cmd {
			return func() tea.Msg { return pickedMsg(i) }
		}}
	}
	items := []MenuItem{item(0), item(1), {Label: "off", Disabled: true}, item(3)}
	return NewMenu(items)
}

func TestMenuNavigationSkipsDisabled(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("down"))
	if m.Selected != 3 {
		t.Fatalf("expected disabled item to be skipped, selected = %d", m.Selected)
	}
	m, _ = m.Update(key("down"))
	if m.Selected != 3 {
		t.Fatalf("expected selection to stop at the bottom, selected = %d", m.Selected)
	}
	m, _ = m.Update(key("up"))
	if m.Selected != 1 {
		t.Fatalf("expected selection 1, got %d", m.Selected)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(key("down"))
	_, cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if got := cmd(); got != pickedMsg(1) {
		t.Fatalf("expected pickedMsg(1), got %v", got)
	}
}

func TestMenuChoose(t *testing.T) {
	m := testMenu()
	m, cmd := m.Choose(3)
	if m.Selected != 3 || cmd == nil || cmd() != pickedMsg(3) {
		t.Fatalf("expected item 3 chosen, selected = %d", m.Selected)
	}
	if _, cmd := m.Choose(2); cmd != nil {
		t.Fatal("disabled item should not run")
	}
	if _, cmd := m.Choose(9); cmd != nil {
		t.Fatal("out of range item should not run")
	}
}

func TestMultiChoiceCursorAndEnter(t *testing.T) {
	mc := NewMultiChoice([]string{"Lord's", "The Oval", "MCG", "Eden Gardens"}, 2)
	mc, _ = mc.Update(key("up"))
	if mc.Selected != 0 {
		t.Fatalf("cursor should not move above the first option")
	}
	mc, _ = mc.Update(key("down"))
	mc, _ = mc.Update(key("down"))
	mc, _ = mc.Update(key("enter"))

	if !mc.Submitted || mc.ChosenIndex != 2 || !mc.IsCorrect() {
		t.Fatalf("expected option 2 submitted and correct: %+v", mc)
	}

	mc, _ = mc.Update(key("up"))
	if mc.Selected != 2 {
		t.Fatal("cursor should be frozen after submit")
	}
}

func TestMultiChoiceChoose(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b", "c", "d"}, 0)
	mc = mc.Choose(7)
	if mc.Submitted {
		t.Fatal("out of range choice should be ignored")
	}
	mc = mc.Choose(3)
	if !mc.Submitted || mc.IsCorrect() {
		t.Fatalf("expected wrong answer submitted: %+v", mc)
	}
	mc = mc.Choose(0)
	if mc.ChosenIndex != 3 {
		t.Fatal("a second choice must not replace the first")
	}
}

func TestMultiChoiceReveal(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b", "c", "d"}, 1).Reveal()
	if !mc.Submitted || mc.ChosenIndex != -1 || mc.IsCorrect() {
		t.Fatalf("unexpected state after reveal: %+v", mc)
	}
	view := mc.View(40)
	if !strings.Contains(view, "B)  b  ✓") {
		t.Fatalf("expected correct option marked, got:\n%s", view)
	}
	if strings.Contains(view, "✗") {
		t.Fatal("no option should be marked wrong on timeout")
	}
}

func TestProgressBarClamps(t *testing.T) {
	for _, pct := range []float64{-0.5, 0, 0.5, 1, 1.5} {
		view := NewProgressBar("", pct, true, 30).View()
		if view == "" {
			t.Errorf("empty view for %v", pct)
		}
	}
	if !strings.Contains(NewProgressBar("Acc", 0.8, true, 30).View(), "80%") {
		t.Error("expected percentage label")
	}
}

func TestContentWidth(t *testing.T) {
	tests := []struct{ in, want int }{
		{10, 20}, {60, 54}, {200, 72},
	}
	for _, tt := range tests {
		if got := ContentWidth(tt.in); got != tt.want {
			t.Errorf("ContentWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
