package core

// Game is the interface the platform drives once per tick. The game contains
// pure simulation logic with no external dependencies (especially no Bubble
// Tea); the platform handles input mapping, timing and terminal rendering.
type Game interface {
	// ID returns a stable identifier for the game (used in file paths).
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick, applying the frame's
	// actions in arrival order before the gravity update.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state (score, lines, level, flags).
	State() GameState
}
