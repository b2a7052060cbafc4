package entity

import (
	"fmt"

	"github.com/rocketscienceinc/caro-engine/internal/apperror"
)

// Board is a GridSize x GridSize grid stored row-major. It is a value type:
// assigning a Board copies every cell. All methods have pointer receivers, so
// reads need an addressable Board: bind a returned Snapshot to a variable
// before calling Board methods on it.
type Board struct {
	cells [GridSize * GridSize]Mark
}

func NewBoard() *Board {
	return &Board{}
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < GridSize && col >= 0 && col < GridSize
}

func (that *Board) IsEmpty(row, col int) bool {
	if !that.InBounds(row, col) {
		return false
	}

	return that.cells[index(row, col)] == Empty
}

// MarkAt returns the mark at (row, col), or Empty outside the grid.
func (that *Board) MarkAt(row, col int) Mark {
	if !that.InBounds(row, col) {
		return Empty
	}

	return that.cells[index(row, col)]
}

// Place puts mark on an empty cell. The board is left untouched on error.
func (that *Board) Place(row, col int, mark Mark) error {
	if !that.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if that.cells[index(row, col)] != Empty {
		return apperror.ErrCellOccupied
	}

	that.cells[index(row, col)] = mark

	return nil
}

func (that *Board) Clear() {
	for i := range that.cells {
		that.cells[i] = Empty
	}
}

// Occupied counts the cells holding a player's mark.
func (that *Board) Occupied() int {
	count := 0
	for _, cell := range that.cells {
		if cell != Empty {
			count++
		}
	}

	return count
}

// Rows returns a copy of the grid as a slice of rows.
func (that *Board) Rows() [][]Mark {
	rows := make([][]Mark, GridSize)
	for r := range rows {
		rows[r] = make([]Mark, GridSize)
		copy(rows[r], that.cells[r*GridSize:(r+1)*GridSize])
	}

	return rows
}

func index(row, col int) int {
	return row*GridSize + col
}
