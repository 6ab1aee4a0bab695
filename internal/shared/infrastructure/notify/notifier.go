// Package notify delivers correction notices and workflow notifications to
// affected parties. Delivery is strictly best-effort: a transition's success
// is decided before any notice goes out, and failures are reported back to
// the caller as outcomes, never as errors.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/sbhunu/landadmin/internal/review"
	"github.com/sbhunu/landadmin/internal/shared/infrastructure/eventbus"
)

// Notice is one message addressed to a party about a record.
type Notice struct {
	Party     review.Party `json:"party"`
	EntityID  uuid.UUID    `json:"entity_id"`
	Subject   string       `json:"subject"`
	Body      string       `json:"body"`
	Reference string       `json:"reference,omitempty"`
	SentAt    time.Time    `json:"sent_at"`
}

// Notifier delivers a single notice.
type Notifier interface {
	Notify(ctx context.Context, notice Notice) error
}

// Outcome reports the delivery attempt for one notice. Outcomes ride in the
// operation result so callers see delivery problems without the transition
// itself being affected.
type Outcome struct {
	Party     review.Party `json:"party"`
	Delivered bool         `json:"delivered"`
	Error     string       `json:"error,omitempty"`
}

// BrokerNotifier publishes notices to the event broker under
// "notice.<party>" routing keys; a delivery service owns the last mile.
type BrokerNotifier struct {
	publisher eventbus.Publisher
}

// NewBrokerNotifier creates a broker-backed notifier.
func NewBrokerNotifier(publisher eventbus.Publisher) *BrokerNotifier {
	return &BrokerNotifier{publisher: publisher}
}

// Notify publishes the notice.
func (n *BrokerNotifier) Notify(ctx context.Context, notice Notice) error {
	if notice.SentAt.IsZero() {
		notice.SentAt = time.Now().UTC()
	}
	payload, err := json.Marshal(notice)
	if err != nil {
		return err
	}
	return n.publisher.Publish(ctx, "notice."+string(notice.Party), payload)
}
