package game

import (
	"errors"
	"io"
	"maps"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"

	"github.com/vovakirdan/robojobs/internal/grammar"
	"github.com/vovakirdan/robojobs/internal/level"
	"github.com/vovakirdan/robojobs/internal/robot"
	"github.com/vovakirdan/robojobs/internal/shell"
)

// Reducer applies actions to worlds. It holds no game state itself.
type Reducer struct {
	shell  *shell.Shell
	levels LevelSource
	logger *log.Logger
}

// NewReducer creates a reducer. A nil logger discards output.
func NewReducer(sh *shell.Shell, levels LevelSource, logger *log.Logger) *Reducer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Reducer{shell: sh, levels: levels, logger: logger}
}

// Reduce returns the world after action. Phase changes are driven only by
// the processor's idle and busy edges and by victory.
func (r *Reducer) Reduce(w World, action Action) World {
	before := w
	w = r.apply(w, action)
	return r.transition(before, w)
}

func (r *Reducer) apply(w World, action Action) World {
	switch a := action.(type) {
	case Loaded:
		w.Loaded = true
		if w.Phase == PhaseStart {
			return r.advance(w)
		}
		return w

	case Advance:
		return r.advance(w)

	case NewCommand:
		if !w.Playing() {
			return w
		}
		cpu, err := r.shell.RunCommand(a.Text, w.CPU)
		if err != nil {
			w.CommandError = asCommandError(err)
			return w
		}
		w.Completions = r.shell.Complete(a.Text, w.CPU)
		w.CommandError = nil
		if len(cpu.Stack) == len(w.CPU.Stack) {
			// incomplete: keep the line for further typing
			w.TerminalLine = a.Text
			return w
		}
		w.CPU = cpu
		w.TerminalLine = strings.TrimRight(a.Text, "\n")
		return w

	case EditTerminalLine:
		w.TerminalLine = a.Line
		w.Completions = r.shell.Complete(a.Line, w.CPU)
		w.CommandError = nil
		if f, ok := shell.Parser(w.CPU).ParseInstruction(a.Line).(grammar.Fail); ok && a.Line != "" {
			w.CommandError = &shell.CommandError{Site: shell.SiteCommand, Message: f.Message}
		}
		return w

	case CreateNewJob:
		if err := grammar.ValidateJobName(a.Name); err != nil {
			w.CommandError = &shell.CommandError{Site: shell.SiteJobName, Message: err.Error(), Line: -1}
			return w
		}
		if _, exists := w.Sources[a.Name]; !exists {
			// an empty job lets other bodies call it before it is written
			if _, defined := w.CPU.Jobs[a.Name]; !defined {
				w.CPU = w.CPU.AddJob(robot.Job{Name: a.Name, Work: []robot.Instruction{}})
			}
			w.Sources = withSource(w.Sources, Source{Name: a.Name})
		}
		w.EditJob = a.Name
		w.CommandError = nil
		return w

	case SetEditJob:
		if _, exists := w.Sources[a.Name]; exists || a.Name == "" {
			w.EditJob = a.Name
		}
		return w

	case EditJob:
		w.Sources = withSource(w.Sources, Source{Name: a.Name, Text: a.Text, Dirty: true})
		return w

	case BuildJob:
		cpu, err := r.shell.DefineJob(w.CPU, a.Name, a.Text)
		if err != nil {
			w.CommandError = asCommandError(err)
			return w
		}
		w.CPU = cpu
		w.CommandError = nil
		w.Sources = withSource(w.Sources, Source{Name: a.Name, Text: a.Text})
		return w

	case RunJob:
		if !w.Playing() {
			return w
		}
		if _, ok := w.CPU.Jobs[a.Name]; !ok {
			w.CommandError = &shell.CommandError{
				Site:    shell.SiteCommand,
				Message: gotext.Get("%s isn't the name of a job.", a.Name),
			}
			return w
		}
		w.CPU = w.CPU.PushJob(a.Name)
		w.TerminalLine = "do " + a.Name
		w.CommandError = nil
		return w

	case Tick:
		if !w.Playing() {
			w.LastTick = a.Now
			return w
		}
		hero, ok := w.Level.Hero()
		if !ok {
			return w
		}
		exec := r.shell.ContinueExecution(w.LastTick, a.Now, hero, w.CPU, w.Level)
		w.LastTick = exec.LastTick
		w.CPU = exec.CPU
		w.Level = exec.Level
		if exec.Cycled {
			w.Cycles++
			w.Issue = exec.Issue
		}
		return w

	case Halt:
		w.CPU = r.shell.Halt(w.CPU)
		return w
	}

	r.logger.Warn("unknown action", "action", action)
	return w
}

func (r *Reducer) transition(before, w World) World {
	if w.Playing() && level.Victory(w.Level) {
		w.Phase = PhaseCutscene
		w.CPU = w.CPU.Halt()
		w.TerminalLine = ""
		w.Cleared++
		r.logger.Info("level cleared", "cleared", w.Cleared, "cycles", w.Cycles)
		return w
	}

	switch {
	case w.Phase == PhaseComposing && Running(before.CPU, w.CPU):
		w.Phase = PhaseRunning
	case w.Phase == PhaseRunning && Halted(before.CPU, w.CPU):
		w.Phase = PhaseComposing
		w.TerminalLine = ""
	}
	return w
}

// advance follows the script: start and cutscene lead to a new level,
// composing and running lead to a cutscene.
func (r *Reducer) advance(w World) World {
	switch w.Phase {
	case PhaseComposing, PhaseRunning:
		w.Phase = PhaseCutscene
		w.CPU = w.CPU.Halt()
		w.TerminalLine = ""
		return w
	}

	lvl, info, err := r.levels.Next(w.Cleared)
	if err != nil {
		r.logger.Error("level generation failed", "err", err)
		return w
	}
	r.logger.Info("new level", "generator", info.Generator, "seed", info.Seed,
		"width", info.Width, "height", info.Height)

	w.Phase = PhaseComposing
	w.Level = lvl
	w.Info = info
	w.Cycles = 0
	w.CPU = w.CPU.Halt()
	w.TerminalLine = ""
	w.CommandError = nil
	w.Completions = nil
	w.Issue = ""
	return w
}

func withSource(sources map[string]Source, src Source) map[string]Source {
	out := maps.Clone(sources)
	if out == nil {
		out = map[string]Source{}
	}
	out[src.Name] = src
	return out
}

func asCommandError(err error) *shell.CommandError {
	var cmdErr *shell.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr
	}
	return &shell.CommandError{Site: shell.SiteCommand, Message: err.Error()}
}
