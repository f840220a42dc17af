package game

// Report summarises a headless run
type Report struct {
	Frames           int
	SimulatedSeconds float64
	Collisions       int

	// Eliminated in the order they dropped out
	Eliminated []*Entity

	// Entities left in the roster when the run stopped
	Remaining []*Entity
}

// RunHeadless steps sim with a fixed dt for up to frames frames, compacting
// the roster after each one. Combat runs stop as soon as at most one
// health-bearing entity is left.
func RunHeadless(sim *Simulator, frames int, dt float64, combat bool) Report {
	var report Report
	start := sim.Collisions()

	for report.Frames < frames {
		if combat && len(sim.Survivors()) <= 1 {
			break
		}
		sim.Step(dt)
		report.Frames++
		report.SimulatedSeconds += dt
		report.Eliminated = append(report.Eliminated, sim.RemoveEliminated()...)
	}

	report.Collisions = sim.Collisions() - start
	report.Remaining = append([]*Entity(nil), sim.Entities()...)
	return report
}
