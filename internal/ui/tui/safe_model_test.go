package tui

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
)

func TestSafeModel_RecoversUpdatePanic(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	m := newModel(Deps{})
	m.scr = screenPoints
	m.person = domain.PersonB
	m.busy = true
	m.session = nil // Points on a nil session panics

	tm, cmd := wrapSafe(m, log).Update(tea.KeyMsg{Type: tea.KeyDown})
	if cmd != nil {
		t.Fatalf("expected no command after recovery")
	}
	s, ok := tm.(safeModel)
	if !ok {
		t.Fatalf("expected safeModel, got %T", tm)
	}
	if s.m.scr != screenHome || s.m.busy || s.m.toast != panicToast {
		t.Fatalf("unexpected state: scr=%v busy=%v toast=%q", s.m.scr, s.m.busy, s.m.toast)
	}

	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	if rec["msg"] != "panic.recovered" || rec["where"] != "tui.update" || rec["person"] != "B" {
		t.Fatalf("unexpected log record: %v", rec)
	}
	if _, ok := rec["points_a"]; ok {
		t.Fatalf("did not expect point counts without a session")
	}
	if !strings.Contains(rec["stack"].(string), "runtime/debug") {
		t.Fatalf("expected stack in log record")
	}
}

func TestModelRecovered_KeepsSession(t *testing.T) {
	m := newModel(Deps{})
	m.session.RegisterPoint(domain.PersonA, "Sun", domain.Position{Sign: domain.Aries})
	m.scr = screenPoints
	m.cursor = 3
	m.input.SetValue("Moon Cancer 1")
	m.input.Focus()

	r := m.recovered()
	if r.scr != screenHome || r.cursor != 0 || r.input.Value() != "" || r.input.Focused() {
		t.Fatalf("expected transient state reset: scr=%v cursor=%d input=%q", r.scr, r.cursor, r.input.Value())
	}
	if got := len(r.session.Points(domain.PersonA)); got != 1 {
		t.Fatalf("expected session points kept, got %d", got)
	}
}

func TestSafeModel_PassesThrough(t *testing.T) {
	s := wrapSafe(newModel(Deps{}), nil)

	tm, _ := s.Update(exportDoneMsg{id: "rep-9"})
	got := tm.(safeModel)
	if got.m.toast != "Exported report rep-9" {
		t.Fatalf("unexpected toast %q", got.m.toast)
	}
}
