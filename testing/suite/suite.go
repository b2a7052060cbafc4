package suite

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"
)

const maxWaitDuration = 5 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

// New returns a context bounded by maxWaitDuration and a logger that stays
// quiet unless CARO_TEST_LOG is set.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	var output io.Writer = io.Discard
	if os.Getenv("CARO_TEST_LOG") != "" {
		output = os.Stdout
	}

	logger := slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}
