package model

// Cell is a single automaton unit owned by a Grid.
type Cell struct {
	// Alive is the cell's current life state.
	Alive bool

	// LiveNeighborCount is scratch state written during the count phase of a
	// generation transition and consumed by the apply phase. It is fully
	// recomputed every generation and is not meaningful at rest.
	LiveNeighborCount int

	// Frequency is an optional payload for external collaborators (e.g. an
	// audio renderer mapping cells to tones). The simulation core never
	// reads it.
	Frequency float64
}
