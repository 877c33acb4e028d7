// The listener subscribes to the automobile topics and logs every
// published record. It performs no processing beyond logging.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/gopherkit/env"

	"github.com/ferdiebergado/autokit/internal/config"
	"github.com/ferdiebergado/autokit/internal/platform/broker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("Listener failed.", "reason", err)
		stop()
		os.Exit(1)
	}
	slog.Info("Listener shutdown gracefully.")
}

func run(ctx context.Context) error {
	if os.Getenv("ENV") != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	cfg, err := config.Load("config.json")
	if err != nil {
		return err
	}

	brokerCfg := cfg.Broker
	topics := []string{brokerCfg.Topic, brokerCfg.ListTopic}
	return broker.Listen(ctx, brokerCfg.Addresses, brokerCfg.GroupID, topics)
}
