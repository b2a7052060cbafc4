package terminal

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/rocketscienceinc/caro-engine/internal/caro"
	"github.com/rocketscienceinc/caro-engine/internal/entity"
)

const (
	cellWidth  = 2 // terminal columns per grid cell
	panelLeft  = entity.GridSize*cellWidth + 3
	activeAttr = termbox.ColorBlue | termbox.AttrBold
)

var help = []string{
	"arrows/hjkl  move",
	"space/enter  place",
	"click        place",
	"r            reset",
	"q/esc        quit",
}

// cellAt maps a terminal position to the grid cell drawn there.
func cellAt(x, y int) (entity.Cell, bool) {
	if x < 0 || y < 0 {
		return entity.Cell{}, false
	}

	row, col := y, x/cellWidth
	if row >= entity.GridSize || col >= entity.GridSize {
		return entity.Cell{}, false
	}

	return entity.Cell{Row: row, Col: col}, true
}

func cellRune(mark entity.Mark) rune {
	switch mark {
	case entity.PlayerX:
		return 'X'
	case entity.PlayerO:
		return 'O'
	default:
		return '.'
	}
}

func markColor(mark entity.Mark) termbox.Attribute {
	switch mark {
	case entity.PlayerX:
		return termbox.ColorBlue
	case entity.PlayerO:
		return termbox.ColorRed
	default:
		return termbox.ColorDefault
	}
}

func clockLabel(snapshot caro.Snapshot, mark entity.Mark) string {
	return fmt.Sprintf("%ds", snapshot.ClockFor(mark))
}

func statusLine(snapshot caro.Snapshot, message string) string {
	if message != "" {
		return message
	}

	if snapshot.Phase == entity.PhaseInProgress {
		return fmt.Sprintf("Player %s to move", snapshot.ActivePlayer)
	}

	return "Press r to play again"
}

// drawLocked repaints the whole screen. Callers hold that.mu.
func (that *UI) drawLocked() {
	if !that.ready {
		return
	}

	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		that.logger.Error("failed to clear terminal", "error", err)
		return
	}

	that.drawBoard()
	that.drawPanel()

	if err := termbox.Flush(); err != nil {
		that.logger.Error("failed to flush terminal", "error", err)
	}
}

func (that *UI) drawBoard() {
	for row, marks := range that.snapshot.Board.Rows() {
		for col, mark := range marks {
			fg := markColor(mark)
			bg := termbox.ColorDefault

			if last := that.snapshot.LastMove; last != nil && last.Row == row && last.Col == col {
				fg |= termbox.AttrBold
			}

			if that.cursor.Row == row && that.cursor.Col == col {
				fg |= termbox.AttrReverse
			}

			termbox.SetCell(col*cellWidth, row, cellRune(mark), fg, bg)
		}
	}
}

func (that *UI) drawPanel() {
	y := 0
	for _, mark := range []entity.Mark{entity.PlayerX, entity.PlayerO} {
		fg := termbox.ColorDefault
		if mark == that.snapshot.ActivePlayer && that.snapshot.Phase == entity.PhaseInProgress {
			fg = activeAttr
		}

		drawText(panelLeft, y, "Player "+string(mark), fg)
		drawText(panelLeft, y+1, clockLabel(that.snapshot, mark), fg)
		y += 3
	}

	drawText(panelLeft, y, statusLine(that.snapshot, that.message), termbox.ColorDefault|termbox.AttrBold)
	y += 2

	for _, line := range help {
		drawText(panelLeft, y, line, termbox.ColorDefault)
		y++
	}
}

func drawText(x, y int, text string, fg termbox.Attribute) {
	for _, ch := range text {
		termbox.SetCell(x, y, ch, fg, termbox.ColorDefault)
		x += runewidth.RuneWidth(ch)
	}
}
