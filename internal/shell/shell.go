// Package shell connects typed text to the robot: it compiles jobs, queues
// commands and steps the processor against the level at a limited rate.
package shell

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/robojobs/internal/config"
	"github.com/vovakirdan/robojobs/internal/grammar"
	"github.com/vovakirdan/robojobs/internal/level"
	"github.com/vovakirdan/robojobs/internal/robot"
)

// Shell is stateless apart from its settings; every call takes and returns
// processor and level snapshots.
type Shell struct {
	cfg    config.ShellConfig
	logger *log.Logger
}

// New creates a shell. A nil logger discards output.
func New(cfg config.ShellConfig, logger *log.Logger) *Shell {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Shell{cfg: cfg, logger: logger}
}

// Parser returns a parser that knows the processor's jobs.
func Parser(cpu robot.Processor) *grammar.Parser {
	return grammar.New(cpu.JobNames())
}

// DefineJob compiles text as the body of job name and registers it. The job
// may call itself. On error the processor is returned unchanged.
func (s *Shell) DefineJob(cpu robot.Processor, name, text string) (robot.Processor, error) {
	if err := grammar.ValidateJobName(name); err != nil {
		return cpu, &CommandError{Site: SiteJobName, Message: err.Error(), Line: -1}
	}

	parser := grammar.New(append(cpu.JobNames(), name))
	switch r := parser.ParseInstructionList(text).(type) {
	case grammar.Fail:
		return cpu, &CommandError{Site: SiteJobBody, Message: r.Message, Line: r.Line}
	case grammar.Continue:
		return cpu, &CommandError{Site: SiteJobBody, Message: incomplete(r.Completions), Line: r.Line}
	case grammar.Success[[]robot.Instruction]:
		s.logger.Debug("job defined", "name", name, "instructions", len(r.Value))
		return cpu.AddJob(robot.Job{Name: name, Work: r.Value}), nil
	}
	return cpu, nil
}

// RunCommand parses one typed line and queues it as an immediate frame; the
// next tick executes it. Incomplete input is neither an error nor a change.
func (s *Shell) RunCommand(text string, cpu robot.Processor) (robot.Processor, error) {
	switch r := Parser(cpu).ParseInstruction(text).(type) {
	case grammar.Fail:
		return cpu, &CommandError{Site: SiteCommand, Message: r.Message}
	case grammar.Success[robot.Instruction]:
		s.logger.Debug("command queued", "instruction", r.Value.String())
		return cpu.PushInstruction(r.Value), nil
	}
	return cpu, nil
}

// Complete returns the completions offered for a partly typed command.
func (s *Shell) Complete(text string, cpu robot.Processor) []string {
	return grammar.Completions[robot.Instruction](Parser(cpu).ParseInstruction(text))
}

// Execution is the outcome of one ContinueExecution call.
type Execution struct {
	LastTick time.Time
	CPU      robot.Processor
	Level    level.State
	Cycled   bool
	Issue    string
}

// ContinueExecution runs at most one processor cycle. Nothing happens until
// the cycle interval has passed since last; an idle processor only moves the
// clock forward.
func (s *Shell) ContinueExecution(last, now time.Time, hero level.Actor, cpu robot.Processor, lvl level.State) Execution {
	if now.Sub(last) < s.cfg.CycleInterval() {
		return Execution{LastTick: last, CPU: cpu, Level: lvl}
	}
	if cpu.Idle() {
		return Execution{LastTick: now, CPU: cpu, Level: lvl}
	}

	if inst, ok := cpu.Current(); ok {
		s.logger.Debug("cycle", "instruction", inst.String(), "depth", len(cpu.Stack))
	}

	w := newWorld(lvl, hero, s.cfg.VisionDistance, s.logger)
	next := cpu.Cycle(w, w)
	if w.issue != "" {
		s.logger.Warn("actuator issue", "issue", w.issue)
	}

	return Execution{
		LastTick: now,
		CPU:      next,
		Level:    w.next,
		Cycled:   true,
		Issue:    w.issue,
	}
}

// Halt clears the processor's stack.
func (s *Shell) Halt(cpu robot.Processor) robot.Processor {
	if cpu.Running() {
		s.logger.Info("halted", "frames", len(cpu.Stack))
	}
	return cpu.Halt()
}
