package caro

import (
	"fmt"

	"github.com/rocketscienceinc/caro-engine/internal/entity"
)

type Outcome string

const (
	OutcomeRejected Outcome = "rejected"
	OutcomeContinue Outcome = "continue"
	OutcomeWin      Outcome = "win"
	OutcomeTimeout  Outcome = "timeout"
)

// Result is what every engine call reports. Rejected calls carry the reason
// and never change state.
type Result struct {
	Outcome Outcome
	Winner  entity.Mark
	Loser   entity.Mark
	Reason  error
}

func (that Result) IsTerminal() bool {
	return that.Outcome == OutcomeWin || that.Outcome == OutcomeTimeout
}

// Message is the announcement shown to the players when a game ends.
func (that Result) Message() string {
	switch that.Outcome {
	case OutcomeWin:
		return fmt.Sprintf("Player %s wins!", that.Winner)
	case OutcomeTimeout:
		return fmt.Sprintf("Player %s ran out of time! Player %s wins!", that.Loser, that.Winner)
	default:
		return ""
	}
}

func rejected(reason error) Result {
	return Result{Outcome: OutcomeRejected, Reason: reason}
}

func proceed() Result {
	return Result{Outcome: OutcomeContinue}
}

// Snapshot is a copy of the engine state for rendering.
type Snapshot struct {
	Board         entity.Board
	ActivePlayer  entity.Mark
	TimeRemaining int
	Phase         entity.Phase
	Winner        entity.Mark
	Loser         entity.Mark
	LastMove      *entity.Cell
	Moves         int
}

// ClockFor returns the seconds displayed for mark: the running countdown for
// the active player and a full budget for the waiting one.
func (that Snapshot) ClockFor(mark entity.Mark) int {
	if mark == that.ActivePlayer {
		return that.TimeRemaining
	}

	return entity.TurnBudget
}
