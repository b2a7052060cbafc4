// Package terminal renders a game in a terminal and turns key presses and
// mouse clicks into game commands.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nsf/termbox-go"

	"github.com/rocketscienceinc/caro-engine/internal/caro"
	"github.com/rocketscienceinc/caro-engine/internal/entity"
)

type game interface {
	MakeTurn(ctx context.Context, row, col int) (caro.Result, error)
	Reset(ctx context.Context) (caro.Snapshot, error)
}

// UI is both the presenter the game manager renders into and the input loop
// that drives the game.
type UI struct {
	logger *slog.Logger

	mu       sync.Mutex
	ready    bool
	snapshot caro.Snapshot
	message  string
	cursor   entity.Cell
}

func New(logger *slog.Logger) *UI {
	return &UI{
		logger: logger.With("component", "terminal"),
		cursor: entity.Cell{Row: entity.GridSize / 2, Col: entity.GridSize / 2},
	}
}

// Render stores the latest state and redraws the screen.
func (that *UI) Render(snapshot caro.Snapshot) {
	that.mu.Lock()
	defer that.mu.Unlock()

	// a new game clears the previous announcement
	if that.snapshot.Phase.IsTerminal() && !snapshot.Phase.IsTerminal() {
		that.message = ""
	}

	that.snapshot = snapshot
	that.drawLocked()
}

func (that *UI) Announce(result caro.Result) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.message = result.Message()
	that.drawLocked()
}

// Run owns the terminal until the player quits or ctx is done.
func (that *UI) Run(ctx context.Context, game game) error {
	log := that.logger.With("method", "Run")

	if err := termbox.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer termbox.Close()

	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)

	that.mu.Lock()
	that.ready = true
	that.drawLocked()
	that.mu.Unlock()

	defer func() {
		that.mu.Lock()
		that.ready = false
		that.mu.Unlock()
	}()

	stop := make(chan struct{})
	defer close(stop)

	go func() {
		select {
		case <-ctx.Done():
			termbox.Interrupt()
		case <-stop:
		}
	}()

	for {
		event := termbox.PollEvent()

		switch event.Type {
		case termbox.EventKey, termbox.EventMouse:
			if quit := that.handleEvent(ctx, game, event); quit {
				log.Info("player quit")
				return nil
			}
		case termbox.EventResize:
			that.mu.Lock()
			that.drawLocked()
			that.mu.Unlock()
		case termbox.EventInterrupt:
			return nil
		case termbox.EventError:
			return fmt.Errorf("terminal event error: %w", event.Err)
		}
	}
}

// handleEvent applies one input event and reports whether the player quit.
func (that *UI) handleEvent(ctx context.Context, game game, event termbox.Event) bool {
	if event.Type == termbox.EventMouse {
		if event.Key != termbox.MouseLeft {
			return false
		}

		cell, ok := cellAt(event.MouseX, event.MouseY)
		if !ok {
			return false
		}

		that.moveCursor(cell)
		that.place(ctx, game, cell)

		return false
	}

	switch {
	case event.Key == termbox.KeyEsc, event.Key == termbox.KeyCtrlC, event.Ch == 'q':
		return true
	case event.Key == termbox.KeyArrowUp, event.Ch == 'k':
		that.shiftCursor(-1, 0)
	case event.Key == termbox.KeyArrowDown, event.Ch == 'j':
		that.shiftCursor(1, 0)
	case event.Key == termbox.KeyArrowLeft, event.Ch == 'h':
		that.shiftCursor(0, -1)
	case event.Key == termbox.KeyArrowRight, event.Ch == 'l':
		that.shiftCursor(0, 1)
	case event.Key == termbox.KeySpace, event.Key == termbox.KeyEnter:
		that.place(ctx, game, that.Cursor())
	case event.Ch == 'r':
		if _, err := game.Reset(ctx); err != nil {
			that.logger.Error("failed to reset game", "error", err)
		}
	}

	return false
}

func (that *UI) place(ctx context.Context, game game, cell entity.Cell) {
	result, err := game.MakeTurn(ctx, cell.Row, cell.Col)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			that.logger.Error("failed to make turn", "error", err)
		}
		return
	}

	if result.Outcome == caro.OutcomeRejected {
		that.logger.Debug("move rejected", "row", cell.Row, "col", cell.Col, "reason", result.Reason)
	}
}

func (that *UI) Cursor() entity.Cell {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.cursor
}

func (that *UI) moveCursor(cell entity.Cell) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.cursor = cell
	that.drawLocked()
}

// shiftCursor moves the cursor, clamped to the grid.
func (that *UI) shiftCursor(dRow, dCol int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.cursor.Row = clamp(that.cursor.Row+dRow, 0, entity.GridSize-1)
	that.cursor.Col = clamp(that.cursor.Col+dCol, 0, entity.GridSize-1)
	that.drawLocked()
}

func clamp(v, low, high int) int {
	return max(low, min(v, high))
}
