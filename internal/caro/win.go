package caro

import "github.com/rocketscienceinc/caro-engine/internal/entity"

// directions are the four axes a line can run along: horizontal, vertical
// and both diagonals. Each axis is walked both ways.
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// hasWinningRun reports whether the mark at (row, col) is part of a run of at
// least WinLength identical marks. Only cells within WinLength-1 steps are
// inspected, so the cost does not depend on the board size.
func hasWinningRun(board *entity.Board, row, col int) bool {
	mark := board.MarkAt(row, col)
	if mark == entity.Empty {
		return false
	}

	for _, dir := range directions {
		length := 1 +
			countRun(board, row, col, dir[0], dir[1], mark) +
			countRun(board, row, col, -dir[0], -dir[1], mark)

		if length >= entity.WinLength {
			return true
		}
	}

	return false
}

// countRun counts consecutive cells equal to mark starting one step away from
// (row, col). MarkAt returns Empty off the grid, which ends the run.
func countRun(board *entity.Board, row, col, dRow, dCol int, mark entity.Mark) int {
	count := 0
	for step := 1; step < entity.WinLength; step++ {
		if board.MarkAt(row+dRow*step, col+dCol*step) != mark {
			break
		}
		count++
	}

	return count
}
