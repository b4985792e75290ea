package events

import (
	"encoding/json"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"go.uber.org/zap"
)

type KafkaProducer struct {
	producer *kafka.Producer
	topic    string
	logger   *zap.Logger
}

func NewKafkaProducer(brokers, topic string, logger *zap.Logger) (*KafkaProducer, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
		"acks":              "all",
		"retries":           10,
	})
	if err != nil {
		return nil, err
	}

	// delivery reports
	go func() {
		for e := range p.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					logger.Error("Order event delivery failed",
						zap.String("key", string(ev.Key)),
						zap.Error(ev.TopicPartition.Error))
				}
			}
		}
	}()

	return &KafkaProducer{producer: p, topic: topic, logger: logger}, nil
}

func orderPlacedMessage(topic string, event OrderPlacedEvent) (*kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return &kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &topic,
			Partition: kafka.PartitionAny,
		},
		Key:   []byte(fmt.Sprintf("ORDER#%s", event.OrderID)),
		Value: data,
	}, nil
}

func (p *KafkaProducer) PublishOrderPlaced(event OrderPlacedEvent) error {
	msg, err := orderPlacedMessage(p.topic, event)
	if err != nil {
		return err
	}
	return p.producer.Produce(msg, nil)
}

// HealthCheck fetches cluster metadata to confirm the brokers are reachable.
func (p *KafkaProducer) HealthCheck() error {
	_, err := p.producer.GetMetadata(&p.topic, false, 5000)
	return err
}

func (p *KafkaProducer) Close() {
	p.producer.Flush(5000)
	p.producer.Close()
}
