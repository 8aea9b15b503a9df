package game

import "github.com/vovakirdan/robojobs/internal/robot"

// Running reports the idle to busy edge.
func Running(before, after robot.Processor) bool {
	return before.Idle() && after.Running()
}

// Halted reports the busy to idle edge.
func Halted(before, after robot.Processor) bool {
	return before.Running() && after.Idle()
}
