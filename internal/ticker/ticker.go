// Package ticker provides the restartable per-turn tick source.
package ticker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Tick is a single beat of the turn clock. Generation identifies the Start
// call that produced it.
type Tick struct {
	Generation uint64
	At         time.Time
}

// Ticker delivers ticks on one channel from a loop that can be stopped and
// re-armed any number of times. At most one loop runs at a time.
type Ticker struct {
	logger   *slog.Logger
	interval time.Duration
	ticks    chan Tick

	mu         sync.Mutex
	generation uint64
	stop       chan struct{}
	done       chan struct{}
}

func New(logger *slog.Logger, interval time.Duration) *Ticker {
	return &Ticker{
		logger:   logger.With("component", "ticker"),
		interval: interval,
		ticks:    make(chan Tick),
	}
}

func (that *Ticker) C() <-chan Tick {
	return that.ticks
}

// Start stops the running loop, if any, and arms a new one. It returns the
// generation stamped on every tick of the new loop.
func (that *Ticker) Start(ctx context.Context) uint64 {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.stopLocked()

	that.generation++
	that.stop = make(chan struct{})
	that.done = make(chan struct{})

	go that.loop(ctx, that.generation, that.stop, that.done)

	return that.generation
}

// Stop halts the running loop and waits for it to exit. Calling Stop on a
// stopped ticker does nothing.
func (that *Ticker) Stop() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.stopLocked()
}

func (that *Ticker) stopLocked() {
	if that.stop == nil {
		return
	}

	close(that.stop)
	<-that.done

	that.stop = nil
	that.done = nil
}

func (that *Ticker) loop(ctx context.Context, generation uint64, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	log := that.logger.With("generation", generation)
	log.Debug("ticker armed", "interval", that.interval)

	clock := time.NewTicker(that.interval)
	defer clock.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("ticker stopped by context")
			return
		case <-stop:
			log.Debug("ticker stopped")
			return
		case at := <-clock.C:
			select {
			case that.ticks <- Tick{Generation: generation, At: at}:
			case <-stop:
				log.Debug("ticker stopped while delivering")
				return
			case <-ctx.Done():
				return
			}
		}
	}
}
