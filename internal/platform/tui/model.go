package tui

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/robojobs/internal/config"
	"github.com/vovakirdan/robojobs/internal/core"
	"github.com/vovakirdan/robojobs/internal/game"
	"github.com/vovakirdan/robojobs/internal/shell"
	"github.com/vovakirdan/robojobs/internal/storage"
)

// Options configures a play session.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Levels  game.LevelSource
	Store   *storage.Store    // nil disables saving
	Jobs    map[string]string // job sources loaded before play, by name
	Logger  *log.Logger
}

// Model is the Bubble Tea model for a play session.
type Model struct {
	reducer *game.Reducer
	world   game.World
	store   *storage.Store
	config  config.Config
	runtime core.RuntimeConfig
	logger  *log.Logger

	screen     *core.Screen
	keys       KeyMap
	mapper     *KeyMapper
	inputFrame core.InputFrame
	mode       mode

	terminal textinput.Model
	jobName  textinput.Model
	editor   textarea.Model
	help     help.Model

	quitting bool
}

// NewModel creates a model, loads the job sources and the first level.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sh := shell.New(opts.Config.Shell, logger)
	reducer := game.NewReducer(sh, opts.Levels, logger)

	world, errs := reducer.LoadSources(game.NewWorld(), loadJobs(opts.Store, opts.Jobs, logger))
	for name, err := range errs {
		logger.Warn("job did not build", "job", name, "err", err)
	}
	world = reducer.Reduce(world, game.Loaded{})

	terminal := textinput.New()
	terminal.Prompt = "> "
	terminal.Placeholder = "type an instruction, tab completes"
	terminal.Focus()

	jobName := textinput.New()
	jobName.Prompt = "job name: "
	jobName.CharLimit = 32

	editor := textarea.New()
	editor.ShowLineNumbers = true
	editor.Placeholder = "one instruction per line"

	keys := DefaultKeyMap()

	return Model{
		reducer:    reducer,
		world:      world,
		store:      opts.Store,
		config:     opts.Config,
		runtime:    opts.Runtime,
		logger:     logger,
		screen:     core.NewScreen(opts.Config.Viewport.Width, opts.Config.Viewport.Height),
		keys:       keys,
		mapper:     NewKeyMapper(keys),
		inputFrame: core.NewInputFrame(),
		terminal:   terminal,
		jobName:    jobName,
		editor:     editor,
		help:       help.New(),
	}
}

// loadJobs merges stored sources with the given ones; the given ones win.
func loadJobs(store *storage.Store, jobs map[string]string, logger *log.Logger) map[string]string {
	sources := map[string]string{}
	if store != nil {
		saved, err := store.Jobs()
		if err != nil {
			logger.Error("cannot load saved jobs", "err", err)
		}
		for _, j := range saved {
			sources[j.Name] = j.Source
		}
	}
	for name, src := range jobs {
		sources[name] = src
	}
	return sources
}

// World returns the current game state.
func (m Model) World() game.World {
	return m.world
}

// Init starts the clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd(tickInterval(m.runtime.TickRate)))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m.updateFocused(msg)
}

// handleKey maps bound keys into the input frame and hands the rest to the
// focused input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mapper.MapKeyToFrame(msg, m.mode, m.world.Phase == game.PhaseCutscene, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if len(m.inputFrame.Actions) > 0 {
		return m.applyInput(), nil
	}

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeTerminal:
		before := m.terminal.Value()
		m.terminal, cmd = m.terminal.Update(msg)
		if m.terminal.Value() != before {
			m.world = m.reducer.Reduce(m.world, game.EditTerminalLine{Line: m.terminal.Value()})
		}
	case modeNaming:
		m.jobName, cmd = m.jobName.Update(msg)
	case modeEditing:
		m.editor, cmd = m.editor.Update(msg)
	}
	return m, cmd
}

// applyInput runs the actions collected in the input frame.
func (m Model) applyInput() Model {
	defer m.inputFrame.Clear()

	switch {
	case m.inputFrame.Has(core.ActionHalt):
		m.dispatch(game.Halt{})
	case m.inputFrame.Has(core.ActionAdvance):
		m.dispatch(game.Advance{})
	case m.inputFrame.Has(core.ActionComplete):
		m.complete()
	case m.inputFrame.Has(core.ActionNewJob):
		m.mode = modeNaming
		m.jobName.Reset()
		m.jobName.Focus()
		m.terminal.Blur()
	case m.inputFrame.Has(core.ActionCancel):
		m.closeEditor()
	case m.inputFrame.Has(core.ActionSubmit):
		m.submit()
	}
	return m
}

func (m *Model) submit() {
	switch m.mode {
	case modeTerminal:
		line := m.terminal.Value()
		if strings.TrimSpace(line) == "" {
			return
		}
		m.dispatch(game.NewCommand{Text: line + "\n"})
		if m.world.CommandError == nil && len(m.world.Completions) == 0 {
			m.terminal.Reset()
		}

	case modeNaming:
		name := strings.TrimSpace(m.jobName.Value())
		m.dispatch(game.CreateNewJob{Name: name})
		if m.world.CommandError != nil {
			return
		}
		m.mode = modeEditing
		m.jobName.Blur()
		m.editor.SetValue(m.world.Sources[name].Text)
		m.editor.Focus()

	case modeEditing:
		name, text := m.world.EditJob, m.editor.Value()
		m.dispatch(game.BuildJob{Name: name, Text: text})
		if m.world.CommandError != nil {
			return
		}
		if m.store != nil {
			if err := m.store.SaveJob(name, text); err != nil {
				m.logger.Error("cannot save job", "job", name, "err", err)
			}
		}
		m.closeEditor()
	}
}

// complete accepts the first completion. A completion that ends the line is
// run straight away.
func (m *Model) complete() {
	if m.mode != modeTerminal || len(m.world.Completions) == 0 {
		return
	}
	first := m.world.Completions[0]
	if strings.HasSuffix(first, "\n") {
		m.terminal.SetValue(strings.TrimSuffix(first, "\n"))
		m.submit()
		return
	}
	m.terminal.SetValue(first + " ")
	m.terminal.CursorEnd()
	m.dispatch(game.EditTerminalLine{Line: m.terminal.Value()})
}

func (m *Model) closeEditor() {
	if m.mode == modeEditing {
		name := m.world.EditJob
		if text := m.editor.Value(); text != m.world.Sources[name].Text {
			m.dispatch(game.EditJob{Name: name, Text: text})
		}
		m.dispatch(game.SetEditJob{})
	}
	m.mode = modeTerminal
	m.editor.Blur()
	m.jobName.Blur()
	m.terminal.Focus()
}

// dispatch reduces an action and records a win if it caused one.
func (m *Model) dispatch(action game.Action) {
	before := m.world
	m.world = m.reducer.Reduce(m.world, action)

	if m.world.Cleared > before.Cleared {
		m.recordWin()
	}
}

func (m *Model) recordWin() {
	if m.store == nil {
		return
	}
	rec := storage.LevelRecord{
		Generator: m.world.Info.Generator,
		Seed:      m.world.Info.Seed,
		Width:     m.world.Info.Width,
		Height:    m.world.Info.Height,
		Cycles:    m.world.Cycles,
		Jobs:      len(m.world.CPU.Jobs),
	}
	if _, err := m.store.RecordLevel(rec); err != nil {
		m.logger.Error("cannot record level", "err", err)
	}
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height

	w := core.Min(m.config.Viewport.Width, core.Max(1, msg.Width-sidebarWidth-4))
	h := core.Min(m.config.Viewport.Height, core.Max(1, msg.Height-footerHeight))
	m.screen.Resize(w, h)

	m.help.Width = msg.Width
	m.terminal.Width = core.Max(10, msg.Width-4)
	m.editor.SetWidth(core.Max(20, msg.Width-sidebarWidth-6))
	m.editor.SetHeight(core.Max(3, h-2))
	return m, nil
}

// handleTick advances the game clock.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.dispatch(game.Tick{Now: now})
	return m, tickCmd(tickInterval(m.runtime.TickRate))
}

// jobNames lists the job sources in display order.
func (m Model) jobNames() []string {
	names := make([]string, 0, len(m.world.Sources))
	for name := range m.world.Sources {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Run starts the Bubble Tea program and returns the final world.
func Run(opts Options) (game.World, error) {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return game.World{}, err
	}
	m, ok := final.(Model)
	if !ok {
		return game.World{}, nil
	}
	return m.world, nil
}
