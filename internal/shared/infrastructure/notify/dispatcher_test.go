package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbhunu/landadmin/internal/review"
)

type stubNotifier struct {
	err   error
	calls int
}

func (s *stubNotifier) Notify(_ context.Context, _ Notice) error {
	s.calls++
	return s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func notice(party review.Party) Notice {
	return Notice{
		Party:    party,
		EntityID: uuid.New(),
		Subject:  "correction required",
		Body:     "area exceeds sealed section",
		SentAt:   time.Now(),
	}
}

func TestDispatchAllDelivers(t *testing.T) {
	notifier := &stubNotifier{}
	d := NewDispatcher(notifier, DefaultDispatcherConfig(), testLogger())

	outcomes := d.DispatchAll(context.Background(), []Notice{
		notice(review.PartySurveyor),
		notice(review.PartyConveyancer),
	})

	require.Len(t, outcomes, 2)
	assert.Equal(t, review.PartySurveyor, outcomes[0].Party)
	assert.True(t, outcomes[0].Delivered)
	assert.True(t, outcomes[1].Delivered)
	assert.Equal(t, 2, notifier.calls)
}

func TestDispatchAllReportsFailureWithoutError(t *testing.T) {
	notifier := &stubNotifier{err: errors.New("broker unreachable")}
	d := NewDispatcher(notifier, DefaultDispatcherConfig(), testLogger())

	outcomes := d.DispatchAll(context.Background(), []Notice{notice(review.PartyPlanner)})

	require.Len(t, outcomes, 1)
	assert.False(t, outcomes[0].Delivered)
	assert.Contains(t, outcomes[0].Error, "broker unreachable")
}

func TestDispatcherBreakerOpensAndFailsFast(t *testing.T) {
	notifier := &stubNotifier{err: errors.New("broker unreachable")}
	config := DispatcherConfig{
		FailureThreshold: 3,
		OpenTimeout:      time.Minute,
		NoticeTimeout:    time.Second,
	}
	d := NewDispatcher(notifier, config, testLogger())

	ctx := context.Background()
	for range 3 {
		d.DispatchAll(ctx, []Notice{notice(review.PartyObjector)})
	}
	callsAtTrip := notifier.calls

	outcomes := d.DispatchAll(ctx, []Notice{notice(review.PartyObjector)})

	require.Len(t, outcomes, 1)
	assert.False(t, outcomes[0].Delivered)
	assert.Equal(t, callsAtTrip, notifier.calls, "open breaker must not call the notifier")
}
