package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hasanbut17314/kaspas-backend/internal/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

var (
	notificationsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "kaspas",
		Subsystem: "notifications",
		Name:      "published_total",
		Help:      "Total number of notifications published to the broker.",
	})

	notificationsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "kaspas",
		Subsystem: "notifications",
		Name:      "failed_total",
		Help:      "Total number of notifications that could not be published.",
	})
)

// kafkaNotifier публикует письма в топик, который разбирает внешний мейлер.
// Доставка best-effort, состояние заказа от неё не зависит.
type kafkaNotifier struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaNotifier(logger *slog.Logger, cfg config.Kafka) *kafkaNotifier {
	return &kafkaNotifier{
		logger: logger.With(slog.String("service", "notifier")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

type message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (n *kafkaNotifier) Send(ctx context.Context, recipient, subject, body string) error {
	value, err := json.Marshal(message{To: recipient, Subject: subject, Body: body})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	// В библиотеке уже есть retry
	if err := n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(recipient),
		Value: value,
	}); err != nil {
		notificationsFailed.Inc()
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	notificationsPublished.Inc()
	n.logger.Debug("notification published", slog.String("recipient", recipient), slog.String("subject", subject))
	return nil
}

func (n *kafkaNotifier) Close() error {
	return n.writer.Close()
}
