package ticker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/caro-engine/testing/suite"
)

const (
	testInterval = 5 * time.Millisecond
	waitTimeout  = time.Second
)

func newTestTicker(t *testing.T) (context.Context, *Ticker) {
	t.Helper()

	ctx, st := suite.New(t)

	return ctx, New(st.Logger, testInterval)
}

func receive(t *testing.T, ticker *Ticker) Tick {
	t.Helper()

	select {
	case tick := <-ticker.C():
		return tick
	case <-time.After(waitTimeout):
		require.FailNow(t, "no tick received")
		return Tick{}
	}
}

func TestTicker_Start(t *testing.T) {
	t.Run("Delivers ticks stamped with the generation", func(t *testing.T) {
		// Given: an armed ticker
		ctx, ticker := newTestTicker(t)
		t.Cleanup(ticker.Stop)
		generation := ticker.Start(ctx)

		// Then: ticks arrive with that generation
		for i := 0; i < 3; i++ {
			tick := receive(t, ticker)
			assert.Equal(t, generation, tick.Generation)
			assert.False(t, tick.At.IsZero())
		}
	})

	t.Run("Restart replaces the running loop", func(t *testing.T) {
		// Given: a ticker that already delivered a tick
		ctx, ticker := newTestTicker(t)
		t.Cleanup(ticker.Stop)
		first := ticker.Start(ctx)
		receive(t, ticker)

		// When: it is started again
		second := ticker.Start(ctx)

		// Then: the generation grows and only new ticks arrive
		require.Greater(t, second, first)
		for i := 0; i < 3; i++ {
			assert.Equal(t, second, receive(t, ticker).Generation)
		}
	})
}

func TestTicker_Stop(t *testing.T) {
	t.Run("No ticks after stop", func(t *testing.T) {
		// Given: a running ticker
		ctx, ticker := newTestTicker(t)
		ticker.Start(ctx)
		receive(t, ticker)

		// When: it is stopped
		ticker.Stop()

		// Then: nothing is delivered any more
		select {
		case tick := <-ticker.C():
			assert.Failf(t, "unexpected tick", "generation %d", tick.Generation)
		case <-time.After(10 * testInterval):
		}
	})

	t.Run("Stop is idempotent", func(t *testing.T) {
		ctx, ticker := newTestTicker(t)

		assert.NotPanics(t, func() {
			ticker.Stop()
			ticker.Start(ctx)
			ticker.Stop()
			ticker.Stop()
		})
	})

	t.Run("Context cancellation ends the loop", func(t *testing.T) {
		base, ticker := newTestTicker(t)
		ctx, cancel := context.WithCancel(base)
		ticker.Start(ctx)
		receive(t, ticker)

		cancel()

		// Then: Stop still returns because the loop already exited
		done := make(chan struct{})
		go func() {
			ticker.Stop()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(waitTimeout):
			require.FailNow(t, "stop did not return")
		}
	})
}
