package engine

// Stats counts executor activity, mirroring meta.Engine's internal Stats
// in the teacher engine — useful for tuning Config.MaxLivePaths the same
// way the teacher's stats exist to tune DFA cache sizing.
type Stats struct {
	// AdvanceCycles counts calls to the fixed-point advance loop (one per
	// Push plus one at Finish).
	AdvanceCycles uint64

	// Forks counts Path clones created at Alt and Rep choice points.
	Forks uint64

	// Prunes counts Paths that transitioned to StatusDead.
	Prunes uint64

	// PeakLivePaths is the high-water mark of |L| seen so far.
	PeakLivePaths int

	// PeakNodeCoverage is the high-water mark of distinct schema Syntax
	// nodes simultaneously occupied by a live Path's cursor, across all
	// advances so far. A grammar whose live paths repeatedly collapse
	// onto a small number of distinct nodes (heavy ambiguity converging
	// back onto shared structure) shows a low ratio of this against
	// PeakLivePaths; tracked with a sparse.SparseSet sized to the
	// schema's node count.
	PeakNodeCoverage int
}

// ResetStats zeroes the executor's counters without otherwise disturbing
// its state.
func (e *Executor[S, I]) ResetStats() { e.stats = Stats{} }

// Stats returns a snapshot of the executor's activity counters.
func (e *Executor[S, I]) Stats() Stats { return e.stats }
