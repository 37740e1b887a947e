package commands

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"prana/config"
	"prana/internal/domain/entity"
	"prana/internal/infrastructure/broker"
	"prana/pkg/logger"
)

// HandleEvents consumes the blog event stream and logs every entry.
func HandleEvents(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	if err := logger.InitGlobalLogger(&cfg.Logger); err != nil {
		ExitOnError(err)
	}
	defer func() { _ = logger.Close() }()

	client, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer, err := os.Hostname()
	if err != nil || consumer == "" {
		consumer = "prana-events"
	}

	messages, err := broker.NewReceiver(client).Messages(ctx, consumer)
	if err != nil {
		ExitOnError(err)
	}

	logger.Info("consuming blog events", "stream", cfg.BrokerConfig.StreamName, "consumer", consumer)

	for msg := range messages {
		var event entity.BlogEvent
		if err := json.Unmarshal([]byte(msg.Body()), &event); err != nil {
			logger.Error("malformed blog event", "id", msg.ID(), "err", err)

			if err := msg.Nack(); err != nil {
				logger.Error("failed to nack event", "id", msg.ID(), "err", err)
			}

			continue
		}

		logger.Info("blog event", "type", event.Type, "blog_id", event.ID, "at", event.At)

		if err := msg.Ack(); err != nil {
			logger.Error("failed to ack event", "id", msg.ID(), "err", err)
		}
	}
}
