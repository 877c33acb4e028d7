package broker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"
)

// Listen joins the consumer group and logs every message arriving on
// the given topics until the context is cancelled. Subscribers do no
// processing beyond logging.
func Listen(ctx context.Context, addrs []string, groupID string, topics []string) error {
	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	cfg.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()

	group, err := sarama.NewConsumerGroup(addrs, groupID, cfg)
	if err != nil {
		return fmt.Errorf("create consumer group %s: %w", groupID, err)
	}
	defer group.Close()

	slog.Info("Listening on topics...", "topics", topics, "group_id", groupID)

	handler := &logHandler{}
	for {
		if err := group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("consume topics %v: %w", topics, err)
		}
		if err := ctx.Err(); err != nil {
			return nil
		}
	}
}

// logHandler implements sarama.ConsumerGroupHandler.
type logHandler struct{}

func (h *logHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *logHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *logHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		slog.Info("Automobile consumer received message.",
			"topic", msg.Topic,
			"partition", msg.Partition,
			"offset", msg.Offset,
			"key", string(msg.Key),
			"value", string(msg.Value),
		)
		sess.MarkMessage(msg, "")
	}
	return nil
}
