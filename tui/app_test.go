package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jdoucet/csvt"
)

func testState(tags ...string) *csvt.SheetState {
	s := &csvt.SheetState{Version: csvt.CurrentVersion}
	for i, tag := range tags {
		s.Data = append(s.Data, csvt.Line{
			RawContent: []string{"raw"},
			Dates:      map[string]csvt.Date{"date": csvt.NewDate(2024, time.March, i+1)},
			Tag:        tag,
			Infos:      map[string]string{"label": "line"},
		})
	}
	return s
}

func typeAndEnter(t *testing.T, m Model, input string) Model {
	t.Helper()
	var model tea.Model = m
	if input != "" {
		model, _ = model.(Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(input)})
	}
	model, _ = model.(Model).Update(tea.KeyMsg{Type: tea.KeyEnter})
	return model.(Model)
}

func TestAssignAndPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.csvt")
	state := testState("", "")
	m := typeAndEnter(t, New(state, path, "EUR"), "food")

	if state.Data[0].Tag != "food" {
		t.Errorf("tag = %q, want %q", state.Data[0].Tag, "food")
	}
	if state.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", state.Cursor)
	}
	if m.statusErr {
		t.Errorf("unexpected error status %q", m.status)
	}

	// The action was persisted before the next prompt.
	saved, err := csvt.LoadState(path)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if saved.Data[0].Tag != "food" || saved.Cursor != 1 {
		t.Errorf("saved tag, cursor = %q, %d, want food, 1", saved.Data[0].Tag, saved.Cursor)
	}
}

func TestEmptyInputAdvances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.csvt")
	state := testState("", "")
	typeAndEnter(t, New(state, path, "EUR"), "")
	if state.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", state.Cursor)
	}
}

func TestTypoHint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.csvt")
	state := testState("food", "")
	state.Cursor = 1
	m := typeAndEnter(t, New(state, path, "EUR"), "fod")

	if !strings.Contains(m.status, `"food"`) {
		t.Errorf("status = %q, want a hint about the existing tag", m.status)
	}
	if m.statusErr {
		t.Error("the hint must not be an error status")
	}
	// The tag is recorded as typed, the hint is advisory.
	if state.Data[1].Tag != "fod" {
		t.Errorf("tag = %q, want %q", state.Data[1].Tag, "fod")
	}
}

func TestQuit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.csvt")
	for _, input := range []string{"q", "quit"} {
		state := testState("")
		var model tea.Model = New(state, path, "EUR")
		model, _ = model.(Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(input)})
		model, cmd := model.(Model).Update(tea.KeyMsg{Type: tea.KeyEnter})
		if cmd == nil {
			t.Errorf("%q did not quit", input)
		}
		if !model.(Model).quitting {
			t.Errorf("%q did not set quitting", input)
		}
		if state.Data[0].Tagged() {
			t.Errorf("%q was recorded as a tag", input)
		}
	}
}

func TestHelpToggle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.csvt")
	m := typeAndEnter(t, New(testState(""), path, "EUR"), "?")
	if !m.showHelp {
		t.Error("? did not show the help")
	}
	if !strings.Contains(m.View(), "previous untagged item") {
		t.Error("View() does not include the help text")
	}
	m = typeAndEnter(t, m, "?")
	if m.showHelp {
		t.Error("? did not hide the help again")
	}
}

func TestBackspace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.csvt")
	var model tea.Model = New(testState(""), path, "EUR")
	model, _ = model.(Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("fooz")})
	model, _ = model.(Model).Update(tea.KeyMsg{Type: tea.KeyBackspace})
	model, _ = model.(Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	if got := string(model.(Model).input); got != "food" {
		t.Errorf("input = %q, want %q", got, "food")
	}
}

func TestView(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.csvt")
	state := testState("", "food")
	v := New(state, path, "EUR").View()

	for _, want := range []string{"csvt tagging session", "N: 1 / 2.", "[label]", "Action: ", "March 2024"} {
		if !strings.Contains(v, want) {
			t.Errorf("View() = %q, missing %q", v, want)
		}
	}
}
