package order

import (
	"WebFood-API/domain"
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const (
	publishTimeout  = 5 * time.Second
	maxPendingSends = 64
)

type (
	// OrderEventPublisher is best effort; failures are logged, never returned.
	OrderEventPublisher interface {
		Publish(ctx context.Context, event domain.OrderEvent)
	}

	// MessageWriter is satisfied by *kafka.Writer.
	MessageWriter interface {
		WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	}

	KafkaOrderPublisher struct {
		writer  MessageWriter
		pending chan struct{}
		wg      sync.WaitGroup
	}

	nopOrderPublisher struct{}
)

// NewKafkaOrderPublisher sends events in the background so Publish never
// waits on the broker. Close waits for sends still in flight.
func NewKafkaOrderPublisher(writer MessageWriter) *KafkaOrderPublisher {
	return &KafkaOrderPublisher{
		writer:  writer,
		pending: make(chan struct{}, maxPendingSends),
	}
}

func NewNopOrderPublisher() OrderEventPublisher {
	return nopOrderPublisher{}
}

func (p *KafkaOrderPublisher) Publish(ctx context.Context, event domain.OrderEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		logrus.WithError(err).WithField("event", event.Type).Warn("failed to encode order event")
		return
	}

	select {
	case p.pending <- struct{}{}:
	default:
		logrus.WithFields(logrus.Fields{
			"event":    event.Type,
			"order_id": event.OrderID,
		}).Warn("order event dropped, too many pending sends")
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.OrderID), 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}

	p.wg.Add(1)
	go func() {
		defer func() {
			<-p.pending
			p.wg.Done()
		}()
		p.send(context.WithoutCancel(ctx), event, msg)
	}()
}

func (p *KafkaOrderPublisher) send(ctx context.Context, event domain.OrderEvent, msg kafka.Message) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"event":    event.Type,
			"order_id": event.OrderID,
		}).Warn("failed to publish order event")
	}
}

// Close blocks until every accepted event has been handed to the writer.
func (p *KafkaOrderPublisher) Close() error {
	p.wg.Wait()
	return nil
}

func (nopOrderPublisher) Publish(context.Context, domain.OrderEvent) {}
