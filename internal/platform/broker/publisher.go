// Package broker provides the publish/subscribe adapters for the
// automobile event topics.
package broker

import (
	"context"
	"errors"
)

// ErrPublishFailed signals that a message could not be handed to the
// broker. The write that preceded the publish is not rolled back.
var ErrPublishFailed = errors.New("broker: publish failed")

// Publisher sends a JSON-encoded payload to a named topic. Sends are
// best-effort: failures are returned to the caller, never retried or
// queued.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload any) error
	Close() error
}
