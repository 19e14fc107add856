// Package events is the Budgeteer event bus: Watermill over PostgreSQL.
//
// Two topics flow through it today. catalog.refreshed is published by the
// worker after a snapshot refresh and consumed by every API instance
// (SubscribeBroadcast). shopping_list.changed is published by the API after
// each list mutation and consumed once by the worker group (Subscribe).
//
// Handlers must be idempotent. A failing handler is retried with exponential
// backoff, then the message is Nacked and the error surfaces on the channel
// returned by Subscribe.
//
// Publish copies the OTel trace context into message metadata and the
// consumer restores it, so a refresh and the reloads it causes share a trace.
package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/ghuser/budgeteer/pkg/config"
	"github.com/ghuser/budgeteer/pkg/logger"
)

// MetadataEventID carries the domain event id next to the trace headers.
const MetadataEventID = "event_id"

const (
	maxRetries      = 3
	retryBaseDelay  = time.Second
	errBuffer       = 100
	shutdownTimeout = 30 * time.Second
	forwarderTopic  = "_forwarder_queue"
	forwarderGroup  = "forwarder-consumer"
)

// Handler processes one message. The context carries the publisher's trace.
type Handler func(ctx context.Context, msg *message.Message) error

// EventBus publishes and consumes domain events.
type EventBus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	broadcast  message.Subscriber // per-instance group, created on first SubscribeBroadcast

	// newSubscriber builds a subscriber for a consumer group.
	newSubscriber func(group string) (message.Subscriber, error)

	instanceID   string
	fwd          *forwarder.Forwarder
	useForwarder bool
	retryDelay   time.Duration

	db  *sql.DB
	log logger.Logger
	mu  sync.Mutex
	wg  sync.WaitGroup
}

// NewEventBus publishes straight to the target topic. The worker uses it.
// Instances sharing cfg.ServiceName share the Subscribe consumer group.
func NewEventBus(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return newEventBus(cfg, log, false)
}

// NewEventBusWithForwarder routes Publish through a durable SQL queue that
// the daemon started by StartForwarder drains into the target topics. A
// publish that returned is not lost if the process dies before delivery.
func NewEventBusWithForwarder(cfg *config.Config, log logger.Logger) (*EventBus, error) {
	return newEventBus(cfg, log, true)
}

func newEventBus(cfg *config.Config, log logger.Logger, useForwarder bool) (*EventBus, error) {
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("events: open db: %w", err)
	}
	wlog := &slogAdapter{log: log}

	pub, err := newSQLPublisher(db, wlog)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	var publisher message.Publisher = pub
	if useForwarder {
		publisher = forwarder.NewPublisher(pub, forwarder.PublisherConfig{ForwarderTopic: forwarderTopic})
	}

	newSubscriber := func(group string) (message.Subscriber, error) {
		return newSQLSubscriber(db, group, wlog)
	}
	sub, err := newSubscriber(cfg.ServiceName + "-consumer")
	if err != nil {
		_ = pub.Close()
		_ = db.Close()
		return nil, err
	}

	return &EventBus{
		publisher:     publisher,
		subscriber:    sub,
		newSubscriber: newSubscriber,
		instanceID:    cfg.ServiceName + "-" + watermill.NewShortUUID(),
		useForwarder:  useForwarder,
		retryDelay:    retryBaseDelay,
		db:            db,
		log:           log,
	}, nil
}

func newSQLPublisher(db *sql.DB, wlog watermill.LoggerAdapter) (*watermillsql.Publisher, error) {
	pub, err := watermillsql.NewPublisher(db, watermillsql.PublisherConfig{
		SchemaAdapter:        watermillsql.DefaultPostgreSQLSchema{},
		AutoInitializeSchema: true,
	}, wlog)
	if err != nil {
		return nil, fmt.Errorf("events: new publisher: %w", err)
	}
	return pub, nil
}

// newSQLSubscriber uses FOR UPDATE SKIP LOCKED offsets, so members of one
// group never receive the same message.
func newSQLSubscriber(db *sql.DB, group string, wlog watermill.LoggerAdapter) (*watermillsql.Subscriber, error) {
	sub, err := watermillsql.NewSubscriber(db, watermillsql.SubscriberConfig{
		SchemaAdapter:    watermillsql.DefaultPostgreSQLSchema{},
		OffsetsAdapter:   watermillsql.DefaultPostgreSQLOffsetsAdapter{},
		InitializeSchema: true,
		ConsumerGroup:    group,
	}, wlog)
	if err != nil {
		return nil, fmt.Errorf("events: new subscriber for %s: %w", group, err)
	}
	return sub, nil
}

// StartForwarder runs the daemon that moves queued messages to their target
// topics. It returns once the daemon is running. Only valid on a bus built
// by NewEventBusWithForwarder, and only once.
func (q *EventBus) StartForwarder(ctx context.Context) error {
	if !q.useForwarder {
		return errors.New("events: StartForwarder called on non-forwarder EventBus")
	}
	if q.fwd != nil {
		return errors.New("events: forwarder already started")
	}
	wlog := &slogAdapter{log: q.log}

	fwdSub, err := newSQLSubscriber(q.db, forwarderGroup, wlog)
	if err != nil {
		return err
	}
	targetPub, err := newSQLPublisher(q.db, wlog)
	if err != nil {
		_ = fwdSub.Close()
		return err
	}
	fwd, err := forwarder.NewForwarder(fwdSub, targetPub, wlog, forwarder.Config{ForwarderTopic: forwarderTopic})
	if err != nil {
		_ = targetPub.Close()
		_ = fwdSub.Close()
		return fmt.Errorf("events: create forwarder: %w", err)
	}
	q.fwd = fwd

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		if err := fwd.Run(ctx); err != nil {
			q.log.ErrorContext(ctx, "events: forwarder stopped with error", "error", err)
			return
		}
		q.log.InfoContext(ctx, "events: forwarder stopped")
	}()

	select {
	case <-fwd.Running():
		q.log.InfoContext(ctx, "events: forwarder started")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("events: context cancelled waiting for forwarder: %w", ctx.Err())
	}
}

// Publish sends msgs to topic with the trace context of ctx attached.
func (q *EventBus) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for _, msg := range msgs {
		for k, v := range carrier {
			msg.Metadata.Set(k, v)
		}
	}
	if err := q.publisher.Publish(topic, msgs...); err != nil { //nolint:contextcheck
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

// PublishJSON publishes payload as a single JSON message. A non-empty
// eventID is copied to MetadataEventID.
func (q *EventBus) PublishJSON(ctx context.Context, topic, eventID string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("events: marshal %s payload: %w", topic, err)
	}
	msg := message.NewMessage(watermill.NewUUID(), body)
	if eventID != "" {
		msg.Metadata.Set(MetadataEventID, eventID)
	}
	return q.Publish(ctx, topic, msg)
}

// Subscribe consumes topic in the shared service group: each message reaches
// one instance. Handler errors that survive the retries arrive on the
// returned channel, which holds 100 errors and must be drained:
//
//	errCh, err := bus.Subscribe(ctx, topic, handler)
//	go func() { for err := range errCh { log.ErrorContext(ctx, "subscriber error", "error", err) } }()
//
// Close waits for in-flight handlers.
func (q *EventBus) Subscribe(ctx context.Context, topic string, handler Handler) (<-chan error, error) {
	ch, err := q.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: subscribe to %s: %w", topic, err)
	}
	return q.consume(ctx, topic, ch, handler), nil
}

// SubscribeBroadcast is Subscribe with a consumer group unique to this
// process, so every running instance receives every message on topic.
func (q *EventBus) SubscribeBroadcast(ctx context.Context, topic string, handler Handler) (<-chan error, error) {
	q.mu.Lock()
	if q.broadcast == nil {
		sub, err := q.newSubscriber(q.instanceID)
		if err != nil {
			q.mu.Unlock()
			return nil, err
		}
		q.broadcast = sub
	}
	sub := q.broadcast
	q.mu.Unlock()

	ch, err := sub.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("events: broadcast subscribe to %s: %w", topic, err)
	}
	return q.consume(ctx, topic, ch, handler), nil
}

func (q *EventBus) consume(ctx context.Context, topic string, ch <-chan *message.Message, handler Handler) <-chan error {
	errCh := make(chan error, errBuffer)
	propagator := otel.GetTextMapPropagator()
	delay := q.retryDelay
	if delay <= 0 {
		delay = retryBaseDelay
	}

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		defer close(errCh)

		for msg := range ch {
			msgCtx := propagator.Extract(ctx, propagation.MapCarrier(msg.Metadata))
			if err := retryWithBackoff(msgCtx, msg, handler, maxRetries, delay, q.log); err != nil {
				msg.Nack()
				select {
				case errCh <- fmt.Errorf("%s: %w", topic, err):
				default:
					q.log.ErrorContext(msgCtx, "events: error channel full, dropping error",
						"error", err, "topic", topic)
				}
				continue
			}
			msg.Ack()
		}
	}()

	return errCh
}

// retryWithBackoff calls handler up to maxRetries times, doubling the delay
// after each failure. It returns the last error once the attempts run out.
func retryWithBackoff(
	ctx context.Context,
	msg *message.Message,
	handler Handler,
	maxRetries int,
	baseDelay time.Duration,
	log logger.Logger,
) error {
	delay := baseDelay
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = handler(ctx, msg); err == nil {
			return nil
		}
		if attempt == maxRetries {
			break
		}
		log.WarnContext(ctx, "events: handler failed, retrying",
			"message_uuid", msg.UUID,
			"attempt", attempt,
			"next_delay", delay,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return fmt.Errorf("events: handler failed after %d retries: %w", maxRetries, err)
}

// Ping backs the /health events check.
func (q *EventBus) Ping(ctx context.Context) error {
	if q.db == nil {
		return nil
	}
	if err := q.db.PingContext(ctx); err != nil {
		return fmt.Errorf("events: ping db: %w", err)
	}
	return nil
}

// Close stops the subscribers and the forwarder, waits up to 30s for
// in-flight handlers, then closes the publisher and the database.
func (q *EventBus) Close() error {
	if err := q.subscriber.Close(); err != nil {
		return fmt.Errorf("events: close subscriber: %w", err)
	}
	if q.broadcast != nil {
		if err := q.broadcast.Close(); err != nil {
			return fmt.Errorf("events: close broadcast subscriber: %w", err)
		}
	}
	if q.fwd != nil {
		if err := q.fwd.Close(); err != nil {
			return fmt.Errorf("events: close forwarder: %w", err)
		}
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(shutdownTimeout):
		q.log.Error("events: timed out waiting for in-flight handlers to complete")
	}

	if err := q.publisher.Close(); err != nil {
		return fmt.Errorf("events: close publisher: %w", err)
	}
	if q.db == nil {
		return nil
	}
	return q.db.Close()
}

// slogAdapter bridges logger.Logger to watermill.LoggerAdapter.
type slogAdapter struct{ log logger.Logger }

func (a *slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Error(msg, append(fieldsToArgs(fields), "error", err)...)
}
func (a *slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Info(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &slogAdapter{log: a.log.With(fieldsToArgs(fields)...)}
}

func fieldsToArgs(fields watermill.LogFields) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}
