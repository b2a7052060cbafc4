package entity

const (
	GridSize   = 20
	WinLength  = 5
	TurnBudget = 15 // seconds per turn
)

// Mark is the content of a single cell.
type Mark string

const (
	Empty   Mark = ""
	PlayerX Mark = "X"
	PlayerO Mark = "O"
)

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Phase is the coarse state of a game.
type Phase string

const (
	PhaseInProgress Phase = "in_progress"
	PhaseWon        Phase = "won"
	PhaseTimedOut   Phase = "timed_out"
)

func (that Phase) IsTerminal() bool {
	return that == PhaseWon || that == PhaseTimedOut
}

// Cell addresses a grid position.
type Cell struct {
	Row int
	Col int
}
