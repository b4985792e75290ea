package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type DeliveryProducer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewDeliveryProducer(brokers, topic string, logger *zap.Logger) *DeliveryProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &DeliveryProducer{
		writer: writer,
		logger: logger,
	}
}

func deliveredMessage(event OrderDeliveredEvent) (kafka.Message, error) {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(event.OrderID),
		Value: eventBytes,
	}, nil
}

func (p *DeliveryProducer) PublishDelivered(ctx context.Context, event OrderDeliveredEvent) error {
	msg, err := deliveredMessage(event)
	if err != nil {
		p.logger.Error("Failed to marshal delivery event", zap.Error(err))
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish delivery event",
			zap.String("event_id", event.EventID),
			zap.Error(err))
		return err
	}

	p.logger.Info("Delivery event published",
		zap.String("event_id", event.EventID),
		zap.String("order_id", event.OrderID))

	return nil
}

func (p *DeliveryProducer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
