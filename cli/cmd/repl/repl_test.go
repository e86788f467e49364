package repl

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/pcomb/kv"
	"github.com/ardnew/pcomb/log"
	"github.com/ardnew/pcomb/parse"
	"github.com/ardnew/pcomb/query"
)

func newTestModel(t *testing.T, seed kv.Document) model {
	t.Helper()

	return newModel(context.Background(), seed, NewHistory(""), log.Logger{})
}

// typeLine sends line followed by Enter through Update.
func typeLine(t *testing.T, m model, line string) model {
	t.Helper()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})

	return next.(model)
}

func TestEvaluate(t *testing.T) {
	m := newTestModel(t, kv.Document{{Key: "id", Value: 16}})

	tests := []struct {
		input   string
		want    string
		wantErr error
	}{
		{input: "targetHeight: 45", want: "✔ targetHeight: 45"},
		{input: "maxTemperature : 31", want: "✔ maxTemperature: 31"},
		{input: "targetHeight > maxTemperature", want: "true"},
		{input: "id * 2", want: "32"},
		{input: "len(keys())", want: "3"},
		{input: "id: 16 apples", wantErr: parse.ErrIncomplete},
		{input: "Hello Kotlin", wantErr: query.ErrCompile},
	}

	for _, tt := range tests {
		got, err := m.evaluate(tt.input)

		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("evaluate(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}

			continue
		}

		if err != nil || got != tt.want {
			t.Errorf("evaluate(%q) = %q, %v, want %q", tt.input, got, err, tt.want)
		}
	}

	want := kv.Document{
		{Key: "id", Value: 16},
		{Key: "targetHeight", Value: 45},
		{Key: "maxTemperature", Value: 31},
	}
	if diff := cmp.Diff(want, m.doc); diff != "" {
		t.Errorf("session mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdate_EnterAddsEntry(t *testing.T) {
	m := typeLine(t, newTestModel(t, nil), "id: 16")

	if diff := cmp.Diff(kv.Document{{Key: "id", Value: 16}}, m.doc); diff != "" {
		t.Errorf("session mismatch (-want +got):\n%s", diff)
	}

	if m.input.Value() != "" {
		t.Errorf("input = %q after Enter, want empty", m.input.Value())
	}

	entry, err := m.history.GetEntry(0)
	if err != nil || entry != (HistoryEntry{Line: "id: 16", Mode: modeEval}) {
		t.Errorf("history[0] = %+v, %v", entry, err)
	}
}

func TestUpdate_ResetCommand(t *testing.T) {
	seed := kv.Document{{Key: "id", Value: 16}}

	m := typeLine(t, newTestModel(t, seed), "id: 17")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(model).mode != modeCtrl {
		t.Fatal("Esc did not switch to command mode")
	}

	m = typeLine(t, next.(model), "reset")

	if diff := cmp.Diff(seed, m.doc); diff != "" {
		t.Errorf("session after reset mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	if !next.(model).quitting || cmd == nil {
		t.Error("Ctrl+D on empty input did not quit")
	}

	if next.View() != "" {
		t.Errorf("View() after quit = %q, want empty", next.View())
	}
}

func TestUpdate_HistoryNavigation(t *testing.T) {
	m := newTestModel(t, nil)
	for _, line := range []string{"a: 1", "b: 2"} {
		m = typeLine(t, m, line)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = typeLine(t, next.(model), "list")

	steps := []struct {
		key      tea.KeyType
		wantLine string
		wantMode inputMode
	}{
		{tea.KeyUp, "list", modeCtrl},
		{tea.KeyUp, "b: 2", modeEval},
		{tea.KeyUp, "a: 1", modeEval},
		{tea.KeyUp, "a: 1", modeEval},
		{tea.KeyDown, "b: 2", modeEval},
		{tea.KeyShiftDown, "", modeEval},
	}

	for i, s := range steps {
		next, _ := m.Update(tea.KeyMsg{Type: s.key})
		m = next.(model)

		if m.input.Value() != s.wantLine || m.mode != s.wantMode {
			t.Errorf("step %d: input %q mode %d, want %q mode %d",
				i, m.input.Value(), m.mode, s.wantLine, s.wantMode)
		}
	}
}

func TestUpdate_TabCompletion(t *testing.T) {
	m := newTestModel(t, kv.Document{{Key: "targetHeight", Value: 45}})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("targetH")})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyTab})

	m = next.(model)
	if got := m.input.Value(); got != "targetHeight" {
		t.Errorf("input after Tab = %q, want %q", got, "targetHeight")
	}
}

func TestUpdate_TabCompletionAfterMultibyteKey(t *testing.T) {
	m := newTestModel(t, kv.Document{
		{Key: "größe", Value: 3},
		{Key: "xLimit", Value: 1},
	})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("größe + xLi")})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyTab})

	m = next.(model)
	if got, want := m.input.Value(), "größe + xLimit"; got != want {
		t.Errorf("input after Tab = %q, want %q", got, want)
	}

	if got, want := m.input.Position(), utf8.RuneCountInString("größe + xLimit"); got != want {
		t.Errorf("cursor after Tab = %d, want %d", got, want)
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t, nil)

	if view := m.View(); !strings.Contains(view, "press Esc for commands") {
		t.Errorf("empty View() = %q, want hint", view)
	}

	for input, want := range map[string]string{
		"id: 16":       "entry id: 16",
		"id: 16 extra": "entry ends at column 7",
		"1 + 2":        "query",
	} {
		if got := lineStatus(input); got != want {
			t.Errorf("lineStatus(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestListEntries(t *testing.T) {
	m := newTestModel(t, kv.Document{
		{Key: "id", Value: 16},
		{Key: "depth", Value: 2},
		{Key: "id", Value: 17},
	})

	got := m.listEntries()

	if strings.Count(got, "\n") != 1 || !strings.Contains(got, "17") || strings.Contains(got, "16") {
		t.Errorf("listEntries() = %q, want two lines with the effective id", got)
	}
}
