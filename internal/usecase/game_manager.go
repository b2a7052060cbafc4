package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/caro-engine/internal/apperror"
	"github.com/rocketscienceinc/caro-engine/internal/caro"
	"github.com/rocketscienceinc/caro-engine/internal/ticker"
)

type engine interface {
	AttemptMove(row, col int) caro.Result
	OnTick() caro.Result
	Reset() caro.Snapshot
	Snapshot() caro.Snapshot
}

type clock interface {
	Start(ctx context.Context) uint64
	Stop()
	C() <-chan ticker.Tick
}

type presenter interface {
	Render(snapshot caro.Snapshot)
	Announce(result caro.Result)
}

type commandKind string

const (
	commandMove  commandKind = "move"
	commandReset commandKind = "reset"
	commandState commandKind = "state"
)

type command struct {
	kind     commandKind
	row, col int
	reply    chan reply
}

type reply struct {
	result   caro.Result
	snapshot caro.Snapshot
}

// GameManager serializes moves, resets and clock ticks into a single engine.
// Only the goroutine running Run touches the engine.
type GameManager struct {
	logger    *slog.Logger
	engine    engine
	clock     clock
	presenter presenter

	commands   chan command
	done       chan struct{}
	generation uint64
}

func NewGameManager(logger *slog.Logger, engine engine, clock clock, presenter presenter) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		engine:    engine,
		clock:     clock,
		presenter: presenter,

		commands: make(chan command),
		done:     make(chan struct{}),
	}
}

// Run serves events until ctx is done. It must be called once.
func (that *GameManager) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	defer close(that.done)
	defer that.clock.Stop()

	that.generation = that.clock.Start(ctx)
	that.presenter.Render(that.engine.Snapshot())

	log.Info("game started")

	for {
		select {
		case <-ctx.Done():
			log.Info("game manager stopped")
			return nil
		case cmd := <-that.commands:
			cmd.reply <- that.handleCommand(ctx, cmd)
		case tick := <-that.clock.C():
			that.handleTick(tick)
		}
	}
}

func (that *GameManager) MakeTurn(ctx context.Context, row, col int) (caro.Result, error) {
	resp, err := that.send(ctx, command{kind: commandMove, row: row, col: col})
	if err != nil {
		return caro.Result{}, fmt.Errorf("failed to make turn: %w", err)
	}

	return resp.result, nil
}

func (that *GameManager) Reset(ctx context.Context) (caro.Snapshot, error) {
	resp, err := that.send(ctx, command{kind: commandReset})
	if err != nil {
		return caro.Snapshot{}, fmt.Errorf("failed to reset game: %w", err)
	}

	return resp.snapshot, nil
}

func (that *GameManager) State(ctx context.Context) (caro.Snapshot, error) {
	resp, err := that.send(ctx, command{kind: commandState})
	if err != nil {
		return caro.Snapshot{}, fmt.Errorf("failed to get game state: %w", err)
	}

	return resp.snapshot, nil
}

func (that *GameManager) send(ctx context.Context, cmd command) (reply, error) {
	if err := ctx.Err(); err != nil {
		return reply{}, err
	}

	cmd.reply = make(chan reply, 1)

	select {
	case that.commands <- cmd:
	case <-that.done:
		return reply{}, apperror.ErrManagerStopped
	case <-ctx.Done():
		return reply{}, ctx.Err()
	}

	select {
	case resp := <-cmd.reply:
		return resp, nil
	case <-ctx.Done():
		return reply{}, ctx.Err()
	}
}

func (that *GameManager) handleCommand(ctx context.Context, cmd command) reply {
	switch cmd.kind {
	case commandMove:
		return reply{result: that.makeTurn(ctx, cmd.row, cmd.col)}
	case commandReset:
		return reply{snapshot: that.reset(ctx)}
	default:
		return reply{snapshot: that.engine.Snapshot()}
	}
}

func (that *GameManager) makeTurn(ctx context.Context, row, col int) caro.Result {
	log := that.logger.With("method", "makeTurn", "row", row, "col", col)

	result := that.engine.AttemptMove(row, col)

	switch {
	case result.Outcome == caro.OutcomeRejected:
		log.Debug("move rejected", "reason", result.Reason)
	case result.IsTerminal():
		that.finish(log, result)
	default:
		that.generation = that.clock.Start(ctx)
		that.presenter.Render(that.engine.Snapshot())
	}

	return result
}

func (that *GameManager) reset(ctx context.Context) caro.Snapshot {
	snapshot := that.engine.Reset()
	that.generation = that.clock.Start(ctx)

	that.logger.Info("game reset")
	that.presenter.Render(snapshot)

	return snapshot
}

func (that *GameManager) handleTick(tick ticker.Tick) {
	log := that.logger.With("method", "handleTick", "generation", tick.Generation)

	if tick.Generation != that.generation {
		log.Debug("stale tick dropped", "current", that.generation)
		return
	}

	result := that.engine.OnTick()

	switch {
	case result.Outcome == caro.OutcomeRejected:
		log.Debug("tick ignored", "reason", result.Reason)
	case result.IsTerminal():
		that.finish(log, result)
	default:
		that.presenter.Render(that.engine.Snapshot())
	}
}

// finish freezes the clock on a decided game and tells the players.
func (that *GameManager) finish(log *slog.Logger, result caro.Result) {
	that.clock.Stop()
	log.Info("game over", "outcome", result.Outcome, "winner", result.Winner, "loser", result.Loser)

	that.presenter.Render(that.engine.Snapshot())
	that.presenter.Announce(result)
}
