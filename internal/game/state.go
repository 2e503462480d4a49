// Package game provides the simulation session and the terminal game loop.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode: the player moves and fights.
	StateExplore State = iota
	// StateDead means the player has died; only quitting is possible.
	StateDead
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}
