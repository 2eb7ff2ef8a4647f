package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"job_aggregator/internal/domain"
)

// RabbitMQ publishes alerts to an exchange, routing each one by kind under
// RoutingKey, e.g. "alerts.single" and "alerts.summary".
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL          string
	Exchange     string
	ExchangeType string // "direct" or "topic"
	RoutingKey   string
	QueueName    string
	// Kinds limits the queue binding to these alert kinds. Empty binds all.
	Kinds []domain.AlertKind
}

var allKinds = []domain.AlertKind{domain.AlertSingleMatch, domain.AlertSummaryMatch}

func routingKeyFor(prefix string, kind domain.AlertKind) string {
	switch kind {
	case domain.AlertSingleMatch:
		return prefix + ".single"
	case domain.AlertSummaryMatch:
		return prefix + ".summary"
	default:
		return prefix
	}
}

func bindingKeys(prefix string, kinds []domain.AlertKind) ([]string, error) {
	if len(kinds) == 0 {
		kinds = allKinds
	}
	keys := make([]string, 0, len(kinds))
	for _, k := range kinds {
		if k != domain.AlertSingleMatch && k != domain.AlertSummaryMatch {
			return nil, fmt.Errorf("unknown alert kind %q", k)
		}
		keys = append(keys, routingKeyFor(prefix, k))
	}
	return keys, nil
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	exchangeType := cfg.ExchangeType
	if exchangeType == "" {
		exchangeType = amqp.ExchangeTopic
	}
	if exchangeType != amqp.ExchangeTopic && exchangeType != amqp.ExchangeDirect {
		return nil, fmt.Errorf("unsupported exchange type %q", exchangeType)
	}
	keys, err := bindingKeys(cfg.RoutingKey, cfg.Kinds)
	if err != nil {
		return nil, err
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	fail := func(step string, err error) (*RabbitMQ, error) {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("%s: %w", step, err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, exchangeType, true, false, false, false, nil); err != nil {
		return fail("declare exchange", err)
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fail("declare queue", err)
	}

	for _, key := range keys {
		if err := ch.QueueBind(q.Name, key, cfg.Exchange, false, nil); err != nil {
			return fail("bind queue", err)
		}
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"exchange_type", exchangeType,
		"queue", cfg.QueueName,
		"bindings", keys,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// AlertMessage is the JSON body published for every stored alert.
type AlertMessage struct {
	Event     string             `json:"event"`
	Alert     domain.AlertRecord `json:"alert"`
	Timestamp time.Time          `json:"timestamp"`
}

const alertCreatedEvent = "alert.created"

func encodeAlert(alert *domain.AlertRecord, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(AlertMessage{
		Event:     alertCreatedEvent,
		Alert:     *alert,
		Timestamp: now.UTC(),
	})
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal message: %w", err)
	}

	return amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    alert.ID.String(),
		Headers: amqp.Table{
			"user_id": alert.UserID,
			"kind":    string(alert.Kind),
		},
		Body:      body,
		Timestamp: now,
	}, nil
}

func (r *RabbitMQ) PublishAlert(ctx context.Context, alert *domain.AlertRecord) error {
	msg, err := encodeAlert(alert, time.Now())
	if err != nil {
		return err
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		routingKeyFor(r.routingKey, alert.Kind),
		false,
		false,
		msg,
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published alert",
		"alert_id", alert.ID,
		"user_id", alert.UserID,
		"kind", alert.Kind,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	var errs []error
	if r.channel != nil {
		errs = append(errs, r.channel.Close())
	}
	if r.conn != nil {
		errs = append(errs, r.conn.Close())
	}
	return errors.Join(errs...)
}
