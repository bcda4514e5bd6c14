package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/tidytab/render"
	"github.com/katalvlaran/tidytab/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// viewChrome is the number of screen lines around the data window:
// title, blank, header, kinds, blank, filter and help.
const viewChrome = 7

type viewModel struct {
	err       error
	action    *Action
	src       string
	full      *table.Table
	rows      *table.Table
	filter    textinput.Model
	query     string
	filtering bool
	cursor    int
	offset    int
	height    int
}

func newViewModel(action *Action, src string) *viewModel {
	ti := textinput.New()
	ti.Placeholder = "substring"
	ti.Prompt = "/"
	ti.Width = 40
	return &viewModel{
		action: action,
		src:    src,
		filter: ti,
		height: 20,
	}
}

type tableLoadedMsg struct {
	err error
	t   *table.Table
}

func (m *viewModel) Init() tea.Cmd {
	return m.loadTable
}

func (m *viewModel) loadTable() tea.Msg {
	t, err := m.action.read(m.src)
	return tableLoadedMsg{t: t, err: err}
}

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height - viewChrome
		if m.height < 1 {
			m.height = 1
		}
		m.scrollToCursor()

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			m.moveCursor(-1)

		case "down", "j":
			m.moveCursor(1)

		case "pgup":
			m.moveCursor(-m.height)

		case "pgdown":
			m.moveCursor(m.height)

		case "g":
			m.cursor = 0
			m.scrollToCursor()

		case "G":
			m.cursor = m.lastRow()
			m.scrollToCursor()

		case "/":
			m.filtering = true
			m.filter.Focus()

		case "esc":
			if m.query != "" {
				m.query = ""
				m.filter.SetValue("")
				m.applyFilter()
			}
		}

	case tableLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.full = msg.t
		m.rows = msg.t
	}

	return m, nil
}

// updateFilter routes keys to the filter input while it has focus.
func (m *viewModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue(m.query)
		return m, nil

	case "enter":
		m.filtering = false
		m.filter.Blur()
		m.query = m.filter.Value()
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

// applyFilter recomputes the visible rows: those with any cell whose
// display form contains the query, case-insensitively.
func (m *viewModel) applyFilter() {
	if m.full == nil {
		return
	}
	if m.query == "" {
		m.rows = m.full
	} else {
		m.rows = filterRows(m.full, m.query)
	}
	m.cursor = 0
	m.offset = 0
}

func filterRows(t *table.Table, query string) *table.Table {
	q := strings.ToLower(query)
	vals := make([][]table.Value, t.Width())
	for c := range vals {
		col, _ := t.ColumnAt(c)
		vals[c] = col.Values()
	}
	var keep []int
	for r := 0; r < t.Len(); r++ {
		for c := range vals {
			if strings.Contains(strings.ToLower(vals[c][r].String()), q) {
				keep = append(keep, r)
				break
			}
		}
	}
	sub, err := t.Take(keep)
	if err != nil {
		return t
	}
	return sub
}

func (m *viewModel) lastRow() int {
	if m.rows == nil || m.rows.Len() == 0 {
		return 0
	}
	return m.rows.Len() - 1
}

func (m *viewModel) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if last := m.lastRow(); m.cursor > last {
		m.cursor = last
	}
	m.scrollToCursor()
}

// scrollToCursor keeps the cursor row inside the visible window.
func (m *viewModel) scrollToCursor() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m *viewModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.rows == nil {
		return "Loading table..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("tidytab"))
	b.WriteString(" ")
	b.WriteString(m.src)
	b.WriteString("\n\n")

	total := m.rows.Len()
	vis := m.height
	if m.offset+vis > total {
		vis = total - m.offset
	}
	if vis < 0 {
		vis = 0
	}

	window := make([]int, vis)
	for i := range window {
		window[i] = m.offset + i
	}
	sub, err := m.rows.Take(window)
	if err == nil {
		body, ferr := render.Format(sub, render.Options{ShowKinds: true})
		if ferr != nil {
			err = ferr
		} else {
			for i, line := range strings.Split(body, "\n") {
				// Lines 0 and 1 are the header and the kind row.
				if i == m.cursor-m.offset+2 {
					line = selectedStyle.Render(line)
				}
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
	}
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.filtering {
		b.WriteString(m.filter.View())
	} else {
		status := fmt.Sprintf("rows %d-%d of %d", m.offset+1, m.offset+vis, total)
		if total == 0 {
			status = "no rows"
		}
		if m.query != "" {
			status += fmt.Sprintf(" • filter %q", m.query)
		}
		b.WriteString(statusStyle.Render(status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move • pgup/pgdn page • g/G ends • / filter • q quit"))

	return b.String()
}

func runView(action *Action, src string) error {
	p := tea.NewProgram(newViewModel(action, src), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func view(cmd *cobra.Command, args []string) {
	// assert len(args) == 1
	action := newAction(cmd)
	// The browser needs the terminal; stdin input would fight it for keys.
	if args[0] == "-" || !term.IsTerminal(int(os.Stdout.Fd())) {
		t := action.readTable(args[0])
		out, err := render.Format(t, render.DefaultOptions())
		if err != nil {
			fatal("%v", err)
		}
		fmt.Println(out)
		return
	}
	if err := runView(action, args[0]); err != nil {
		fatal("%v", err)
	}
}
