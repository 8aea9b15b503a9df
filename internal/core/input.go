package core

// Action represents a semantic front-end action, abstracted from physical key presses.
// The TUI maps keys to actions so the game flow works with intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionSubmit          // Enter - run the terminal line, or save the job being edited
	ActionComplete        // Tab - accept the first completion
	ActionHalt            // Ctrl+X - stop the robot
	ActionNewJob          // Ctrl+N - start defining a job
	ActionCancel          // Escape - leave the job editor
	ActionAdvance         // Enter in a cutscene - next level
	ActionQuit            // Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSubmit:
		return "Submit"
	case ActionComplete:
		return "Complete"
	case ActionHalt:
		return "Halt"
	case ActionNewJob:
		return "NewJob"
	case ActionCancel:
		return "Cancel"
	case ActionAdvance:
		return "Advance"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two UI updates.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
