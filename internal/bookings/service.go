package bookings

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

type Service interface {
	// Confirm sends the booking confirmation, asynchronously when a
	// producer is wired, synchronously otherwise.
	Confirm(ctx context.Context, req ConfirmBookingRequest) (*Confirmation, error)
}

type service struct {
	producer ConfirmationProducer // nil when Kafka is not configured
	sender   EmailSender
}

func NewService(producer ConfirmationProducer, sender EmailSender) Service {
	return &service{
		producer: producer,
		sender:   sender,
	}
}

func (s *service) Confirm(ctx context.Context, req ConfirmBookingRequest) (*Confirmation, error) {
	conf := &Confirmation{
		BookingRef:    uuid.New().String(),
		StudentID:     req.StudentID,
		StudentMail:   req.StudentMail,
		TripID:        req.TripID,
		BusID:         req.BusID,
		StartLocation: req.StartLocation,
		Destination:   req.Destination,
		Date:          req.Date,
		DepartureTime: req.DepartureTime,
		Seats:         req.Seats,
		CreatedAt:     time.Now(),
	}

	if s.producer != nil {
		if err := s.producer.Publish(ctx, conf); err != nil {
			// Degrade to a synchronous send rather than losing the
			// confirmation.
			log.Printf("Failed to publish confirmation %s, sending directly: %v", conf.BookingRef, err)
			return conf, s.sendDirect(ctx, conf)
		}
		return conf, nil
	}

	return conf, s.sendDirect(ctx, conf)
}

func (s *service) sendDirect(ctx context.Context, conf *Confirmation) error {
	if s.sender == nil {
		return fmt.Errorf("mail transport is not configured")
	}
	return deliverConfirmation(ctx, s.sender, conf)
}
