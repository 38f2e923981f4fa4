// Package eventbus publishes journal alert events to a message broker.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Routing keys for published events.
const (
	RoutingKeyAlert = "journal.alert"
)

// Publisher sends a payload to the event bus under a routing key.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload []byte) error
	Close() error
}

// AlertEvent is one triggered journal alert, published as JSON.
type AlertEvent struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    string    `json:"owner_id"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PublishAlerts publishes one AlertEvent per alert line. Stops on the
// first broker error.
func PublishAlerts(ctx context.Context, pub Publisher, ownerID string, alerts []string) error {
	for _, message := range alerts {
		event := AlertEvent{
			ID:         uuid.New(),
			OwnerID:    ownerID,
			Message:    message,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("marshal alert event: %w", err)
		}
		if err := pub.Publish(ctx, RoutingKeyAlert, payload); err != nil {
			return fmt.Errorf("publish alert: %w", err)
		}
	}
	return nil
}
