package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
)

const panicToast = "Unexpected error (see logs)"

// safeModel keeps a panic in Update or View from tearing down the terminal.
// Entered points survive; the screen drops back to the menu.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.report("update", r)
			s.m = s.m.recovered()
			tm, cmd = s, nil
		}
	}()

	inner, c := s.m.Update(msg)
	switch v := inner.(type) {
	case model:
		s.m = v
	case safeModel:
		s = v
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.report("view", r)
			out = panicToast
		}
	}()
	return s.m.View()
}

func (s safeModel) report(where string, r any) {
	attrs := []any{
		"where", "tui." + where,
		"panic", fmt.Sprint(r),
		"screen", int(s.m.scr),
		"person", string(s.m.person),
	}
	if s.m.session != nil {
		attrs = append(attrs,
			"points_a", len(s.m.session.Points(domain.PersonA)),
			"points_b", len(s.m.session.Points(domain.PersonB)),
		)
	}
	attrs = append(attrs, "stack", string(debug.Stack()))
	s.log.Error("panic.recovered", attrs...)
}

// recovered resets transient UI state and keeps the session.
func (m model) recovered() model {
	m.scr = screenHome
	m.busy = false
	m.cursor = 0
	m.input.Reset()
	m.input.Blur()
	m.toast = panicToast
	return m
}

var _ tea.Model = (*safeModel)(nil)
