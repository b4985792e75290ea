package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port                string `envconfig:"PORT" default:"8080"`
	AWSRegion           string `envconfig:"AWS_REGION" default:"ap-northeast-2"`
	OrderTableName      string `envconfig:"ORDER_TABLE_NAME" default:"order-batches"`
	DynamoDBEndpoint    string `envconfig:"DYNAMODB_ENDPOINT" default:""` // DynamoDB Local endpoint
	ArchiveEnabled      bool   `envconfig:"ARCHIVE_ENABLED" default:"true"`
	KafkaBrokers        string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	OrderEventsTopic    string `envconfig:"ORDER_EVENTS_TOPIC" default:"order-batch-events"`
	DeliveryEventsTopic string `envconfig:"DELIVERY_EVENTS_TOPIC" default:"delivery-events"`
	EventsEnabled       bool   `envconfig:"EVENTS_ENABLED" default:"true"`
	LogLevel            string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
