package redis

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ConfigNotifier implements usecase.ConfigNotifier over Redis pub/sub.
// Messages carry the sender id so an instance ignores its own broadcasts.
type ConfigNotifier struct {
	client     *redis.Client
	channel    string
	instanceID string
	logger     zerolog.Logger
}

// NewConfigNotifier creates a notifier on channel.
func NewConfigNotifier(client *redis.Client, channel, instanceID string, logger zerolog.Logger) *ConfigNotifier {
	return &ConfigNotifier{
		client:     client,
		channel:    channel,
		instanceID: instanceID,
		logger:     logger.With().Str("component", "config_notifier").Logger(),
	}
}

// Publish announces that version is now active.
func (n *ConfigNotifier) Publish(ctx context.Context, version int64) error {
	msg := fmt.Sprintf("%s:%d", n.instanceID, version)
	return n.client.Publish(ctx, n.channel, msg).Err()
}

// Subscribe calls onChange for every announcement of another instance
// until ctx is done.
func (n *ConfigNotifier) Subscribe(ctx context.Context, onChange func(ctx context.Context)) error {
	sub := n.client.Subscribe(ctx, n.channel)
	defer sub.Close()

	// Wait for the subscription confirmation so no publish is missed.
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", n.channel, err)
	}
	n.logger.Info().Str("channel", n.channel).Msg("listening for configuration changes")

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			sender, version, _ := strings.Cut(msg.Payload, ":")
			if sender == n.instanceID {
				continue
			}
			n.logger.Debug().Str("from", sender).Str("version", version).Msg("configuration change received")
			onChange(ctx)
		}
	}
}
