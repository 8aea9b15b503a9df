package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/robojobs/internal/core"
	"github.com/vovakirdan/robojobs/internal/game"
	"github.com/vovakirdan/robojobs/internal/level"
	"github.com/vovakirdan/robojobs/internal/shell"
)

// Play screen layout constants
const (
	sidebarWidth = 22 // job list and status column
	footerHeight = 6  // terminal line, completions, error and help
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var center string
	if m.mode == modeEditing {
		center = m.editorView()
	} else {
		center = m.mapView()
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, panelStyle.Render(center), " ", m.sidebarView())

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")

	switch {
	case m.world.Phase == game.PhaseCutscene:
		b.WriteString(bannerStyle.Render(fmt.Sprintf("Level %d cleared in %d cycles. Press enter for the next one.",
			m.world.Cleared, m.world.Cycles)))
	case m.mode == modeNaming:
		b.WriteString(m.jobName.View())
	default:
		b.WriteString(m.terminal.View())
	}
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(Style(core.ColorHint).Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) mapView() string {
	m.screen.Clear()
	if m.world.Phase != game.PhaseStart {
		v := level.NewViewport(m.world.Level, m.screen.Width(), m.screen.Height())
		level.Draw(m.screen, m.world.Level, v, core.Point{})
	}
	return RenderScreen(m.screen)
}

func (m Model) editorView() string {
	return titleStyle.Render("job "+m.world.EditJob) + "\n" + m.editor.View()
}

func (m Model) sidebarView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Jobs"))
	b.WriteString("\n")

	names := m.jobNames()
	if len(names) == 0 {
		b.WriteString(Style(core.ColorHint).Render("none yet, C-n"))
		b.WriteString("\n")
	}
	for _, name := range names {
		marker := "  "
		if name == m.world.EditJob {
			marker = "> "
		}
		if m.world.Sources[name].Dirty {
			name += "*"
		}
		b.WriteString(marker + name + "\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "phase   %s\n", m.world.Phase)
	fmt.Fprintf(&b, "cycles  %d\n", m.world.Cycles)
	fmt.Fprintf(&b, "cleared %d\n", m.world.Cleared)
	fmt.Fprintf(&b, "stack   %d\n", len(m.world.CPU.Stack))
	fmt.Fprintf(&b, "yes %v  no %v\n", m.world.CPU.Registers.Yes, m.world.CPU.Registers.No)

	return panelStyle.Width(sidebarWidth).Padding(0, 1).Render(b.String())
}

// statusLine shows the command error if any, else the completions, else the
// last actuator issue.
func (m Model) statusLine() string {
	w := m.world
	switch {
	case w.CommandError != nil:
		return Style(core.ColorError).Render(errorText(w))
	case len(w.Completions) > 0:
		shown := make([]string, len(w.Completions))
		for i, c := range w.Completions {
			shown[i] = strings.TrimSuffix(c, "\n")
		}
		return Style(core.ColorHint).Render("tab: " + strings.Join(shown, "  "))
	case w.Issue != "":
		return Style(core.ColorError).Render(w.Issue)
	}
	return ""
}

func errorText(w game.World) string {
	e := w.CommandError
	if e.Site == shell.SiteJobBody {
		return fmt.Sprintf("line %d: %s", e.Line+1, e.Message)
	}
	return e.Message
}
