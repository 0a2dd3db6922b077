package bookings

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"unibus/internal/shared/config"
)

// EmailSender delivers a booking confirmation with the ticket attached.
type EmailSender interface {
	SendConfirmation(ctx context.Context, conf *Confirmation, ticketPDF []byte) error
}

// SMTPEmailSender is the real SMTP implementation.
type SMTPEmailSender struct {
	cfg config.EmailConfig
}

func NewSMTPEmailSender(cfg config.EmailConfig) (*SMTPEmailSender, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.SMTPPort <= 0 || cfg.SMTPPort > 65535 {
		return nil, fmt.Errorf("SMTP port must be between 1 and 65535")
	}
	if cfg.FromEmail == "" {
		return nil, fmt.Errorf("from email is required")
	}
	return &SMTPEmailSender{cfg: cfg}, nil
}

func (s *SMTPEmailSender) SendConfirmation(ctx context.Context, conf *Confirmation, ticketPDF []byte) error {
	subject := fmt.Sprintf("Bus Booking Confirmation - %s", conf.BookingRef)
	body := fmt.Sprintf(
		"Dear student,\r\n\r\nYour booking on trip %s is confirmed.\r\nSeats: %s\r\nDeparture: %s %s\r\n\r\nYour ticket is attached.\r\n",
		conf.TripID, strings.Join(conf.Seats, ", "), conf.Date, conf.DepartureTime,
	)

	filename := fmt.Sprintf("booking-%s.pdf", conf.BookingRef)
	message := buildMIMEMessage(s.cfg.FromName, s.cfg.FromEmail, conf.StudentMail, subject, body, filename, ticketPDF)

	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	if err := s.sendWithSTARTTLS(addr, auth, conf.StudentMail, message); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	log.Printf("📧 Booking confirmation sent to %s (ref %s)", conf.StudentMail, conf.BookingRef)
	return nil
}

// sendWithSTARTTLS connects in plaintext and upgrades, the flow most
// university mail relays expect on port 587.
func (s *SMTPEmailSender) sendWithSTARTTLS(addr string, auth smtp.Auth, to string, message []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Quit()

	tlsconfig := &tls.Config{
		ServerName: s.cfg.SMTPHost,
	}
	if err := client.StartTLS(tlsconfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err := client.Mail(s.cfg.FromEmail); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(message); err != nil {
		return err
	}
	return w.Close()
}

// buildMIMEMessage assembles a multipart message: plain-text body plus a PDF
// attachment.
func buildMIMEMessage(fromName, fromEmail, to, subject, body, filename string, attachment []byte) []byte {
	boundary := "unibus-booking-boundary"

	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s <%s>\r\n", fromName, fromEmail))
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q\r\n", boundary))
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	b.WriteString("Content-Type: application/pdf\r\n")
	b.WriteString("Content-Transfer-Encoding: base64\r\n")
	b.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n", filename))
	b.WriteString("\r\n")

	encoded := base64.StdEncoding.EncodeToString(attachment)
	// RFC 2045 line length limit
	for len(encoded) > 76 {
		b.WriteString(encoded[:76])
		b.WriteString("\r\n")
		encoded = encoded[76:]
	}
	b.WriteString(encoded)
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	return []byte(b.String())
}
