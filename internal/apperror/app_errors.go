package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameTimedOut      = errors.New("game ended by timeout")
	ErrGameNotInProgress = errors.New("game is not in progress")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrOutOfBounds       = errors.New("cell is out of bounds")
	ErrInvalidMark       = errors.New("invalid mark")
	ErrManagerStopped    = errors.New("game manager is stopped")
)
