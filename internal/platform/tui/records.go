package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/robojobs/internal/core"
	"github.com/vovakirdan/robojobs/internal/registry"
	"github.com/vovakirdan/robojobs/internal/storage"
)

const maxRecords = 100

// RecordsKeyMap defines the key bindings for the records screen.
type RecordsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextGen key.Binding
	PrevGen key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGen, k.PrevGen, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextGen, k.PrevGen, k.Quit}}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGen: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next generator"),
		),
		PrevGen: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev generator"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordsModel lists cleared levels, one generator at a time.
type RecordsModel struct {
	generators []registry.GeneratorInfo
	cursor     int
	records    []storage.LevelRecord
	shown      []storage.LevelRecord
	table      table.Model
	help       help.Model
	keys       RecordsKeyMap
	width      int
	height     int
	quitting   bool
}

// NewRecordsModel loads the most recent records from store.
func NewRecordsModel(store *storage.Store, width, height int) (RecordsModel, error) {
	records, err := store.Records(maxRecords)
	if err != nil {
		return RecordsModel{}, err
	}

	m := RecordsModel{
		generators: registry.List(),
		records:    records,
		help:       help.New(),
		keys:       DefaultRecordsKeyMap(),
		width:      width,
		height:     height,
	}
	m.table = m.createTable()
	m.filter()
	return m, nil
}

func (m *RecordsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Size", Width: 7},
		{Title: "Seed", Width: 20},
		{Title: "Cycles", Width: 8},
		{Title: "Jobs", Width: 5},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// filter keeps the records of the selected generator.
func (m *RecordsModel) filter() {
	m.shown = m.shown[:0]
	for _, r := range m.records {
		if len(m.generators) == 0 || r.Generator == m.generators[m.cursor].ID {
			m.shown = append(m.shown, r)
		}
	}

	rows := make([]table.Row, len(m.shown))
	for i, r := range m.shown {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			fmt.Sprintf("%d", r.Seed),
			fmt.Sprintf("%d", r.Cycles),
			fmt.Sprintf("%d", r.Jobs),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Shown returns the records currently in the table.
func (m RecordsModel) Shown() []storage.LevelRecord {
	return m.shown
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records screen.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGen):
			if len(m.generators) > 0 {
				m.cursor = (m.cursor + 1) % len(m.generators)
				m.filter()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGen):
			if len(m.generators) > 0 {
				m.cursor = (m.cursor + len(m.generators) - 1) % len(m.generators)
				m.filter()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.filter()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the records screen.
func (m RecordsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "CLEARED LEVELS"
	if len(m.generators) > 0 {
		title = fmt.Sprintf("CLEARED LEVELS - %s", m.generators[m.cursor].Title)
	}
	b.WriteString(titleStyle.MarginBottom(1).Render(title))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.shown) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(empty.Render("No levels cleared yet.\nWin one with robojobs play!")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(Style(core.ColorHint).Render(m.help.View(m.keys)))
	return b.String()
}

// RunRecords runs the records screen.
func RunRecords(store *storage.Store, width, height int) error {
	model, err := NewRecordsModel(store, width, height)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
