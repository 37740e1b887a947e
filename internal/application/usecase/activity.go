package usecase

import (
	"context"
	"sync"
	"time"

	"prana/internal/domain/repository/database"
	"prana/pkg/logger"
)

// ActivityTracker stamps users' last activity in the background.
type ActivityTracker struct {
	writer database.ActivityWriter
	now    func() time.Time
	wg     sync.WaitGroup
}

func NewActivityTracker(writer database.ActivityWriter) *ActivityTracker {
	return &ActivityTracker{
		writer: writer,
		now:    time.Now,
	}
}

// Stamp returns immediately; the write happens in its own goroutine and
// failures are only logged.
func (t *ActivityTracker) Stamp(userID string) {
	if userID == "" {
		return
	}

	at := t.now().UTC()

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()

		if err := t.writer.TouchLastActivity(context.Background(), userID, at); err != nil {
			logger.Warn("failed to update last activity", "user", userID, "err", err)
		}
	}()
}

// Wait blocks until every pending stamp has finished.
func (t *ActivityTracker) Wait() {
	t.wg.Wait()
}
