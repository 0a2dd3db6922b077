package bookings

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

type fakeProducer struct {
	published []*Confirmation
	err       error
}

func (f *fakeProducer) Publish(ctx context.Context, conf *Confirmation) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, conf)
	return nil
}

func (f *fakeProducer) Close() error { return nil }

type fakeSender struct {
	sent    []*Confirmation
	tickets [][]byte
}

func (f *fakeSender) SendConfirmation(ctx context.Context, conf *Confirmation, ticketPDF []byte) error {
	f.sent = append(f.sent, conf)
	f.tickets = append(f.tickets, ticketPDF)
	return nil
}

func confirmRequest() ConfirmBookingRequest {
	return ConfirmBookingRequest{
		StudentID:   "S42",
		StudentMail: "s42@uni.edu",
		TripID:      "TRIP-500",
		Seats:       []string{"05"},
	}
}

func TestConfirm_PublishesWhenProducerWired(t *testing.T) {
	producer := &fakeProducer{}
	sender := &fakeSender{}
	svc := NewService(producer, sender)

	conf, err := svc.Confirm(context.Background(), confirmRequest())
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if conf.BookingRef == "" {
		t.Fatal("expected a booking reference to be assigned")
	}
	if len(producer.published) != 1 {
		t.Fatalf("expected 1 published message, got %d", len(producer.published))
	}
	if len(sender.sent) != 0 {
		t.Fatalf("expected no direct send when producer handles delivery, got %d", len(sender.sent))
	}
}

func TestConfirm_SendsDirectlyWithoutProducer(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(nil, sender)

	conf, err := svc.Confirm(context.Background(), confirmRequest())
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 direct send, got %d", len(sender.sent))
	}
	if sender.sent[0].BookingRef != conf.BookingRef {
		t.Fatal("sent confirmation does not match returned one")
	}
	if !bytes.HasPrefix(sender.tickets[0], []byte("%PDF")) {
		t.Fatal("direct send did not attach a ticket PDF")
	}
}

func TestConfirm_FallsBackToDirectSendOnPublishFailure(t *testing.T) {
	producer := &fakeProducer{err: errors.New("broker down")}
	sender := &fakeSender{}
	svc := NewService(producer, sender)

	if _, err := svc.Confirm(context.Background(), confirmRequest()); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected fallback direct send, got %d", len(sender.sent))
	}
}

func TestConfirm_NoTransportConfigured(t *testing.T) {
	svc := NewService(nil, nil)

	if _, err := svc.Confirm(context.Background(), confirmRequest()); err == nil {
		t.Fatal("expected error when no transport is configured")
	}
}
