package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestActivityTrackerStamp(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	writer := &mockActivityWriter{}
	writer.On("TouchLastActivity", mock.Anything, "u1", at).Return(nil)

	tracker := NewActivityTracker(writer)
	tracker.now = func() time.Time { return at }

	tracker.Stamp("u1")
	tracker.Wait()

	writer.AssertExpectations(t)
}

func TestActivityTrackerDetachesFromCaller(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})

	writer := &mockActivityWriter{}
	writer.On("TouchLastActivity", mock.Anything, "u2", mock.Anything).
		Run(func(args mock.Arguments) {
			<-release
			assert.NoError(t, args.Get(0).(context.Context).Err())
		}).
		Return(errors.New("write conflict"))

	tracker := NewActivityTracker(writer)

	returned := make(chan struct{})
	go func() {
		tracker.Stamp("u2")
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Stamp blocked on the store write")
	}

	close(release)
	tracker.Wait()
	writer.AssertNumberOfCalls(t, "TouchLastActivity", 1)
}

func TestActivityTrackerSkipsAnonymous(t *testing.T) {
	t.Parallel()

	writer := &mockActivityWriter{}

	tracker := NewActivityTracker(writer)
	tracker.Stamp("")
	tracker.Wait()

	writer.AssertNotCalled(t, "TouchLastActivity", mock.Anything, mock.Anything, mock.Anything)
}
