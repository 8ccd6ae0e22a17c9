package redisnotifier

import (
	"context"
	"encoding/json"
	"fmt"

	"payout-gateway/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// EventWithdrawalSuccess is the event name carried in every published message.
const EventWithdrawalSuccess = "withdrawal-success"

// Notifier publishes withdrawal events to a Redis channel. Delivery is
// fire-and-forget, at-most-once: subscribers that are offline at publish
// time never see the event, and the caller treats publish errors as
// non-fatal.
type Notifier struct {
	client  *goredis.Client
	channel string
}

// New creates a Redis-backed notifier publishing to the given channel.
func New(client *goredis.Client, channel string) *Notifier {
	return &Notifier{client: client, channel: channel}
}

// message is the wire envelope: event name plus JSON payload.
type message struct {
	Event string                `json:"event"`
	Data  ports.WithdrawalEvent `json:"data"`
}

// Publish sends the event to the configured channel.
func (n *Notifier) Publish(ctx context.Context, event ports.WithdrawalEvent) error {
	payload, err := json.Marshal(message{
		Event: EventWithdrawalSuccess,
		Data:  event,
	})
	if err != nil {
		return fmt.Errorf("marshal withdrawal event: %w", err)
	}

	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish withdrawal event: %w", err)
	}

	return nil
}
