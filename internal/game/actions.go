package game

import "time"

// Action is something the player or the clock did.
type Action interface {
	action()
}

// Loaded signals that the front end is ready.
type Loaded struct{}

// NewCommand submits the terminal line.
type NewCommand struct {
	Text string
}

// EditTerminalLine reports the terminal line as currently typed.
type EditTerminalLine struct {
	Line string
}

// CreateNewJob starts a job with an empty body and opens it.
type CreateNewJob struct {
	Name string
}

// SetEditJob opens an existing job in the editor; an empty name closes it.
type SetEditJob struct {
	Name string
}

// EditJob records unsaved changes to a job body.
type EditJob struct {
	Name string
	Text string
}

// BuildJob compiles a job body and installs it on the robot.
type BuildJob struct {
	Name string
	Text string
}

// RunJob starts a job from its first instruction.
type RunJob struct {
	Name string
}

// Tick is the clock.
type Tick struct {
	Now time.Time
}

// Halt stops the robot.
type Halt struct{}

// Advance moves the script on: to a fresh level from start or a cutscene,
// to a cutscene otherwise.
type Advance struct{}

func (Loaded) action()           {}
func (NewCommand) action()       {}
func (EditTerminalLine) action() {}
func (CreateNewJob) action()     {}
func (SetEditJob) action()       {}
func (EditJob) action()          {}
func (BuildJob) action()         {}
func (RunJob) action()           {}
func (Tick) action()             {}
func (Halt) action()             {}
func (Advance) action()          {}
