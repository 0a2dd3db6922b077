package bookings

import (
	"context"
	"fmt"
	"log"
	"time"

	"unibus/internal/shared/config"

	"github.com/IBM/sarama"
)

// ConfirmationProducer publishes booking confirmations for asynchronous
// delivery.
type ConfirmationProducer interface {
	Publish(ctx context.Context, conf *Confirmation) error
	Close() error
}

// KafkaConfirmationProducer publishes confirmations to Kafka.
type KafkaConfirmationProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaConfirmationProducer(cfg config.KafkaConfig) (*KafkaConfirmationProducer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = 10 * time.Second
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	// Hash partitioner keeps one student's confirmations ordered
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Printf("📤 Kafka confirmation producer created")
	return &KafkaConfirmationProducer{
		producer: producer,
		topic:    cfg.ConfirmationTopic,
	}, nil
}

func (p *KafkaConfirmationProducer) Publish(ctx context.Context, conf *Confirmation) error {
	messageBytes, err := conf.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal confirmation: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(conf.PartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Timestamp: conf.CreatedAt,
		Headers: []sarama.RecordHeader{
			{Key: []byte("booking_ref"), Value: []byte(conf.BookingRef)},
		},
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish confirmation: %w", err)
	}

	log.Printf("📤 Confirmation %s published - Topic: %s, Partition: %d, Offset: %d",
		conf.BookingRef, p.topic, partition, offset)
	return nil
}

func (p *KafkaConfirmationProducer) Close() error {
	return p.producer.Close()
}
