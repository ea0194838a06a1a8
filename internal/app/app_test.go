package app

import (
	"io"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

var testNow = time.Date(2025, 6, 17, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fakeClock() *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(testNow)
}
