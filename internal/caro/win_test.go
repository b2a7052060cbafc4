package caro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/caro-engine/internal/entity"
)

// boardWith builds a board holding mark at every given cell.
func boardWith(t *testing.T, mark entity.Mark, cells ...entity.Cell) *entity.Board {
	t.Helper()

	board := entity.NewBoard()
	for _, cell := range cells {
		require.NoError(t, board.Place(cell.Row, cell.Col, mark))
	}

	return board
}

func line(row, col, dRow, dCol, length int) []entity.Cell {
	cells := make([]entity.Cell, 0, length)
	for i := 0; i < length; i++ {
		cells = append(cells, entity.Cell{Row: row + dRow*i, Col: col + dCol*i})
	}

	return cells
}

func TestHasWinningRun(t *testing.T) {
	tests := []struct {
		name   string
		cells  []entity.Cell
		anchor entity.Cell
		want   bool
	}{
		{"Horizontal five", line(5, 0, 0, 1, 5), entity.Cell{Row: 5, Col: 4}, true},
		{"Horizontal five anchored in the middle", line(5, 3, 0, 1, 5), entity.Cell{Row: 5, Col: 5}, true},
		{"Vertical five", line(0, 7, 1, 0, 5), entity.Cell{Row: 0, Col: 7}, true},
		{"Diagonal five", line(0, 0, 1, 1, 5), entity.Cell{Row: 4, Col: 4}, true},
		{"Anti-diagonal five", line(2, 10, 1, -1, 5), entity.Cell{Row: 4, Col: 8}, true},
		{"Overline of six", line(9, 9, 0, 1, 6), entity.Cell{Row: 9, Col: 11}, true},
		{"Edge to edge vertical five", line(15, 19, 1, 0, 5), entity.Cell{Row: 19, Col: 19}, true},
		{"Four is not enough", line(5, 0, 0, 1, 4), entity.Cell{Row: 5, Col: 3}, false},
		{"Diagonal four is not enough", line(10, 10, 1, 1, 4), entity.Cell{Row: 10, Col: 10}, false},
		{"Lone mark", line(0, 0, 0, 1, 1), entity.Cell{Row: 0, Col: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board holding the X cells
			board := boardWith(t, entity.PlayerX, tt.cells...)

			// When: checking from the anchor cell
			got := hasWinningRun(board, tt.anchor.Row, tt.anchor.Col)

			// Then: the result matches
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasWinningRun_BrokenByOpponent(t *testing.T) {
	// Given: X X O X X X on one row
	board := boardWith(t, entity.PlayerX,
		entity.Cell{Row: 0, Col: 0}, entity.Cell{Row: 0, Col: 1},
		entity.Cell{Row: 0, Col: 3}, entity.Cell{Row: 0, Col: 4}, entity.Cell{Row: 0, Col: 5},
	)
	require.NoError(t, board.Place(0, 2, entity.PlayerO))

	// When: checking from either side of the gap
	// Then: neither side reaches five
	assert.False(t, hasWinningRun(board, 0, 1))
	assert.False(t, hasWinningRun(board, 0, 3))
}

func TestHasWinningRun_MixedDirectionsDoNotAdd(t *testing.T) {
	// Given: three X horizontally and three X vertically through (10, 10)
	cells := append(line(10, 8, 0, 1, 3), line(8, 10, 1, 0, 3)...)
	board := entity.NewBoard()
	for _, cell := range cells {
		if board.IsEmpty(cell.Row, cell.Col) {
			require.NoError(t, board.Place(cell.Row, cell.Col, entity.PlayerX))
		}
	}

	// Then: runs on different axes are not combined
	assert.False(t, hasWinningRun(board, 10, 10))
}

func TestHasWinningRun_EmptyAnchor(t *testing.T) {
	assert.False(t, hasWinningRun(entity.NewBoard(), 3, 3))
}
