package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/usecase"
)

type screen int

const (
	screenHome screen = iota
	screenPoints
	screenResults
)

const (
	itemPersonA = "Person A"
	itemPersonB = "Person B"
	itemLoad    = "Load charts"
	itemCompute = "Compute"
	itemExport  = "Export"
	itemInit    = "Init workspace"
	itemQuit    = "Quit"
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model

	workspaceFound bool
	workspaceRoot  string
	ws             *workspace

	session *domain.Session
	person  domain.Person
	input   textinput.Model
	cursor  int

	report *domain.Report
	busy   bool
	toast  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{itemPersonA, "Enter or remove Person A's points"},
		menuItem{itemPersonB, "Enter or remove Person B's points"},
		menuItem{itemLoad, "Replace both point lists with the default chart files"},
		menuItem{itemCompute, "Find aspects between A and B"},
		menuItem{itemExport, "Save the last result as JSON and CSV under exports/"},
		menuItem{itemInit, "Scaffold a workspace in the current directory"},
		menuItem{itemQuit, "Exit"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Synastry"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	in := textinput.New()
	in.Placeholder = "Sun Aries 10 46  or  Moon ♋ 12°30′"
	in.CharLimit = 64
	in.Width = 40

	return model{
		theme:   t,
		deps:    deps,
		scr:     screenHome,
		menu:    l,
		session: domain.NewSession(),
		person:  domain.PersonA,
		input:   in,
	}
}

func (m model) Init() tea.Cmd { return cmdRefreshWorkspace(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		if !msg.found {
			m.ws = nil
			return m, nil
		}
		m.busy = true
		return m, cmdOpenWorkspace(msg.root, m.deps.Logger)

	case workspaceLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.ws = msg.ws
		m.toast = fmt.Sprintf("Reference table loaded (%d rows)", msg.ws.rows)
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace created at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case chartsLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.loadCharts(msg.a, msg.b)
		return m, nil

	case exportDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		if m.report != nil {
			m.report.ID = msg.id
		}
		m.toast = "Exported report " + msg.id
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenPoints:
			return m.updatePoints(msg)
		case screenResults:
			return m.updateResults(msg)
		default:
			return m.updateHome(msg)
		}
	}

	if m.scr == screenPoints {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		return m.activate(it.title)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) activate(item string) (tea.Model, tea.Cmd) {
	m.toast = ""

	switch item {
	case itemPersonA:
		return m.openPoints(domain.PersonA)
	case itemPersonB:
		return m.openPoints(domain.PersonB)

	case itemLoad:
		if m.ws == nil {
			m.toast = "No workspace loaded"
			return m, nil
		}
		m.busy = true
		return m, cmdLoadCharts(m.ws.charts, m.ws.cfg.Charts.DefaultA, m.ws.cfg.Charts.DefaultB)

	case itemCompute:
		if !m.compute() {
			return m, nil
		}
		m.scr = screenResults
		return m, nil

	case itemExport:
		return m.export()

	case itemInit:
		wd, err := os.Getwd()
		if err != nil {
			m.toast = userMessage(err)
			return m, nil
		}
		return m, cmdInitWorkspaceHere(m.deps, wd)

	case itemQuit:
		return m, tea.Quit
	}
	return m, nil
}

func (m model) openPoints(p domain.Person) (tea.Model, tea.Cmd) {
	m.scr = screenPoints
	m.person = p
	m.cursor = 0
	m.input.SetValue("")
	return m, m.input.Focus()
}

func (m model) updatePoints(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.scr = screenHome
		return m, nil
	case "enter":
		m.submitEntry()
		return m, nil
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(m.session.Points(m.person))-1 {
			m.cursor++
		}
		return m, nil
	case "ctrl+d":
		m.removeSelected()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		m.scr = screenHome
		return m, nil
	case "q":
		return m, tea.Quit
	case "e":
		return m.export()
	}
	return m, nil
}

// submitEntry registers the typed point for the current person.
func (m *model) submitEntry() {
	label, pos, err := parseEntry(m.input.Value())
	if err != nil {
		m.toast = userMessage(err)
		return
	}

	lp, ok := m.session.RegisterPoint(m.person, label, pos)
	if !ok {
		m.toast = "Label is required"
		return
	}

	m.input.SetValue("")
	m.cursor = len(m.session.Points(m.person)) - 1
	m.toast = fmt.Sprintf("Registered %s: %s (coordinate %d)", lp.Label, pos, int(lp.Coordinate))
}

func (m *model) removeSelected() {
	lp, err := m.session.RemovePoint(m.person, m.cursor)
	if err != nil {
		m.toast = userMessage(err)
		return
	}
	if n := len(m.session.Points(m.person)); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
	m.toast = "Removed " + lp.Label
}

func (m *model) loadCharts(a, b domain.Chart) {
	for _, pair := range []struct {
		person domain.Person
		chart  domain.Chart
	}{{domain.PersonA, a}, {domain.PersonB, b}} {
		m.session.Clear(pair.person)
		for _, p := range pair.chart.Points {
			m.session.RegisterPoint(pair.person, p.Label, p.Coordinate.Position())
		}
	}
	m.toast = fmt.Sprintf("Loaded %s (%d) and %s (%d)", a.Name, len(a.Points), b.Name, len(b.Points))
}

// compute runs the matcher over the current session. It reports false and
// sets a toast when there is nothing to compute with.
func (m *model) compute() bool {
	if m.ws == nil || m.ws.matcher == nil {
		m.toast = "No reference table loaded"
		return false
	}

	a := domain.Chart{Name: itemPersonA, Points: m.session.Points(domain.PersonA)}
	b := domain.Chart{Name: itemPersonB, Points: m.session.Points(domain.PersonB)}

	report := usecase.BuildReport(m.ws.matcher, a, b, time.Now)
	report.ReferencePath = m.ws.referencePath
	report.ReferenceRows = m.ws.rows
	m.report = &report

	if m.deps.Logger != nil {
		m.deps.Logger.Info("tui.compute",
			"points_a", report.PointsA,
			"points_b", report.PointsB,
			"aspects", len(report.Results),
		)
	}
	m.toast = fmt.Sprintf("%d aspect(s) found", len(report.Results))
	return true
}

func (m model) export() (tea.Model, tea.Cmd) {
	if m.report == nil {
		m.toast = "Nothing to export: compute first"
		return m, nil
	}
	if m.ws == nil || m.ws.store == nil {
		m.toast = "No workspace loaded"
		return m, nil
	}
	m.busy = true
	return m, cmdExport(m.ws.store, *m.report, m.deps.Logger)
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Synastry") + "\n" +
		m.theme.Subtitle.Render("Aspects between two charts, from a reference table") + "\n"

	var workspaceBanner string
	switch {
	case m.workspaceFound && m.ws != nil:
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s • table: %d rows", m.workspaceRoot, m.ws.rows))
	case m.workspaceFound:
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	default:
		workspaceBanner = m.theme.Card.Render(
			"⚠ No workspace found.\n\nCreate one with Init workspace.",
		)
	}

	footer := ""
	if m.busy {
		footer = "\n" + m.theme.Help.Render("working…")
	}
	if m.toast != "" {
		footer += "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		counts := m.theme.Help.Render(fmt.Sprintf("A: %d points • B: %d points",
			len(m.session.Points(domain.PersonA)), len(m.session.Points(domain.PersonB))))
		help := m.theme.Help.Render("↑/↓ navigate • enter open • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + "\n" + counts + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help + footer)

	case screenPoints:
		title := personTitle(m.person)
		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n\n%s\n\n%s",
				m.theme.Title.Render(title),
				renderPoints(m.theme, m.session.Points(m.person), m.cursor),
				m.input.View(),
			),
		)
		help := m.theme.Help.Render("enter add • ↑/↓ select • ctrl+d remove • esc back")
		return wrap.Render(header + "\n" + card + "\n" + help + footer)

	case screenResults:
		body := "(nothing computed)"
		if m.report != nil {
			body = renderResultsTable(m.report.Results)
			if n := len(m.report.MissingAspects); n > 0 {
				body += "\n" + m.theme.Help.Render(fmt.Sprintf("%d aspect variant(s) not in the reference table", n))
			}
		}
		help := m.theme.Help.Render("e export • esc/b back • q quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(body) + "\n" + help + footer)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func personTitle(p domain.Person) string {
	if p == domain.PersonB {
		return itemPersonB
	}
	return itemPersonA
}
