package caro

import (
	"github.com/rocketscienceinc/caro-engine/internal/apperror"
	"github.com/rocketscienceinc/caro-engine/internal/entity"
)

// Engine owns one game: the board, whose turn it is, the turn countdown and
// the phase. It is not safe for concurrent use; callers serialize access.
type Engine struct {
	board         *entity.Board
	activePlayer  entity.Mark
	phase         entity.Phase
	timeRemaining int
	winner        entity.Mark
	loser         entity.Mark
	lastMove      *entity.Cell
	moves         int
}

func NewEngine() *Engine {
	engine := &Engine{board: entity.NewBoard()}
	engine.Reset()

	return engine
}

// AttemptMove places the active player's mark at (row, col).
func (that *Engine) AttemptMove(row, col int) Result {
	if err := that.validateMove(row, col); err != nil {
		return rejected(err)
	}

	if err := that.board.Place(row, col, that.activePlayer); err != nil {
		return rejected(err)
	}

	that.moves++
	that.lastMove = &entity.Cell{Row: row, Col: col}

	if hasWinningRun(that.board, row, col) {
		that.phase = entity.PhaseWon
		that.winner = that.activePlayer
		that.loser = that.activePlayer.Opponent()

		return Result{Outcome: OutcomeWin, Winner: that.winner, Loser: that.loser}
	}

	that.activePlayer = that.activePlayer.Opponent()
	that.timeRemaining = entity.TurnBudget

	return proceed()
}

// OnTick consumes one second of the active player's turn. Ticks outside of a
// running game are ignored.
func (that *Engine) OnTick() Result {
	if that.phase != entity.PhaseInProgress {
		return rejected(apperror.ErrGameNotInProgress)
	}

	that.timeRemaining--
	if that.timeRemaining > 0 {
		return proceed()
	}

	that.timeRemaining = 0
	that.phase = entity.PhaseTimedOut
	that.loser = that.activePlayer
	that.winner = that.activePlayer.Opponent()

	return Result{Outcome: OutcomeTimeout, Winner: that.winner, Loser: that.loser}
}

// Reset starts a new game in place. It may be called in any phase.
func (that *Engine) Reset() Snapshot {
	that.board.Clear()
	that.activePlayer = entity.PlayerX
	that.phase = entity.PhaseInProgress
	that.timeRemaining = entity.TurnBudget
	that.winner = entity.Empty
	that.loser = entity.Empty
	that.lastMove = nil
	that.moves = 0

	return that.Snapshot()
}

func (that *Engine) Snapshot() Snapshot {
	snapshot := Snapshot{
		Board:         *that.board,
		ActivePlayer:  that.activePlayer,
		TimeRemaining: that.timeRemaining,
		Phase:         that.phase,
		Winner:        that.winner,
		Loser:         that.loser,
		Moves:         that.moves,
	}

	if that.lastMove != nil {
		last := *that.lastMove
		snapshot.LastMove = &last
	}

	return snapshot
}

// validateMove - checks that a move can be made before touching the board.
func (that *Engine) validateMove(row, col int) error {
	switch that.phase {
	case entity.PhaseWon:
		return apperror.ErrGameFinished
	case entity.PhaseTimedOut:
		return apperror.ErrGameTimedOut
	}

	if !that.board.InBounds(row, col) {
		return apperror.ErrOutOfBounds
	}

	if !that.board.IsEmpty(row, col) {
		return apperror.ErrCellOccupied
	}

	return nil
}
