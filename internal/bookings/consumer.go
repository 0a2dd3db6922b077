package bookings

import (
	"context"
	"fmt"
	"log"
	"time"

	"unibus/internal/shared/config"

	"github.com/IBM/sarama"
)

// ConfirmationConsumer drains the confirmation topic and performs the
// email delivery.
type ConfirmationConsumer struct {
	consumerGroup sarama.ConsumerGroup
	topics        []string
	workers       int
	sender        EmailSender
	cancel        context.CancelFunc
}

func NewConfirmationConsumer(cfg config.KafkaConfig, sender EmailSender) (*ConfirmationConsumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = 30 * time.Second
	saramaConfig.Consumer.Group.Heartbeat.Interval = 3 * time.Second
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	workers := cfg.ConsumerWorkers
	if workers <= 0 {
		workers = 1
	}

	return &ConfirmationConsumer{
		consumerGroup: consumerGroup,
		topics:        []string{cfg.ConfirmationTopic},
		workers:       workers,
		sender:        sender,
	}, nil
}

// Start launches the consumer workers. It returns immediately; workers run
// until Stop or the context is cancelled.
func (c *ConfirmationConsumer) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		for err := range c.consumerGroup.Errors() {
			log.Printf("Confirmation consumer error: %v", err)
		}
	}()

	for i := 0; i < c.workers; i++ {
		go func(workerID int) {
			handler := &confirmationHandler{workerID: workerID, sender: c.sender}
			for {
				if err := c.consumerGroup.Consume(ctx, c.topics, handler); err != nil {
					log.Printf("Consumer worker %d stopped: %v", workerID, err)
				}
				if ctx.Err() != nil {
					return
				}
			}
		}(i)
	}

	log.Printf("📥 %d confirmation consumer workers started for topics %v", c.workers, c.topics)
}

func (c *ConfirmationConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	return c.consumerGroup.Close()
}

type confirmationHandler struct {
	workerID int
	sender   EmailSender
}

func (h *confirmationHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *confirmationHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *confirmationHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		conf, err := ConfirmationFromJSON(message.Value)
		if err != nil {
			// Malformed message; commit and move on rather than wedging
			// the partition.
			log.Printf("Worker %d: dropping malformed confirmation at offset %d: %v", h.workerID, message.Offset, err)
			session.MarkMessage(message, "")
			continue
		}

		if err := deliverConfirmation(session.Context(), h.sender, conf); err != nil {
			log.Printf("Worker %d: failed to deliver confirmation %s: %v", h.workerID, conf.BookingRef, err)
		}

		session.MarkMessage(message, "")
	}
	return nil
}

func deliverConfirmation(ctx context.Context, sender EmailSender, conf *Confirmation) error {
	ticket, err := BuildTicketPDF(conf)
	if err != nil {
		return err
	}
	return sender.SendConfirmation(ctx, conf, ticket)
}
