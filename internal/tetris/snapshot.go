package tetris

// Phase represents the session state machine phase.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "game_over"
)

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Score      int
	Lines      int
	Level      int
	FallTicks  int
	Current    Kind
	CurrentRot int
	CurrentCol int
	CurrentRow int
	Next       Kind
	Occupied   int // Number of locked cells in the well
	Phase      Phase
}

// Snapshot returns the current session snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.gameOver:
		phase = PhaseGameOver
	case g.paused:
		phase = PhasePaused
	}

	return Snapshot{
		Tick:       g.tick,
		Score:      g.score,
		Lines:      g.lines,
		Level:      g.level,
		FallTicks:  g.fallTicks,
		Current:    g.current.Kind,
		CurrentRot: g.current.rot,
		CurrentCol: g.current.Col,
		CurrentRow: g.current.Row,
		Next:       g.next.Kind,
		Occupied:   g.board.CellCount(),
		Phase:      phase,
	}
}
