package game

import "time"

// Simulate drives the clock at the given interval until the robot stops, the
// level is won, or maxTicks ticks have passed. It returns the final world and
// the number of ticks used.
func (r *Reducer) Simulate(w World, interval time.Duration, maxTicks int) (World, int) {
	now := w.LastTick
	ticks := 0
	for ticks < maxTicks && w.Phase == PhaseRunning {
		now = now.Add(interval)
		w = r.Reduce(w, Tick{Now: now})
		ticks++
	}
	return w, ticks
}
