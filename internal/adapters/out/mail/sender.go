// Package mail implements the outbound notification sender. It has two modes:
// a real SMTP mode backed by go-mail and a simulated mode that only logs the
// message. The mode is fixed at construction from configuration.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"completion/internal/core/ports"
	"completion/internal/pkg/errs"

	gomail "github.com/wneessen/go-mail"
)

const subject = "Order Complete - Thank You!"

// Sender sends order-completion emails over SMTP, or pretends to when running
// in simulation mode.
type Sender struct {
	client    *gomail.Client
	from      string
	simulated bool
	logger    *slog.Logger
}

// NewSender creates a real SMTP sender.
func NewSender(host string, port int, username, password, from string, logger *slog.Logger) (*Sender, error) {
	if host == "" {
		return nil, errs.NewValueIsRequiredError("host")
	}
	if from == "" {
		return nil, errs.NewValueIsRequiredError("from")
	}

	client, err := gomail.NewClient(host,
		gomail.WithPort(port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(username),
		gomail.WithPassword(password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &Sender{
		client: client,
		from:   from,
		logger: logger.With("component", "mail_sender"),
	}, nil
}

// NewSimulatedSender creates a sender that logs instead of delivering.
func NewSimulatedSender(logger *slog.Logger) *Sender {
	return &Sender{
		simulated: true,
		logger:    logger.With("component", "mail_sender"),
	}
}

// Simulated reports whether the sender is running in simulation mode.
func (s *Sender) Simulated() bool {
	return s.simulated
}

// Send delivers the completion email. In simulation mode the message is logged
// and delivery always succeeds.
func (s *Sender) Send(ctx context.Context, n ports.Notification) error {
	if s.simulated {
		s.logger.InfoContext(ctx, "Simulated completion email",
			"to", n.CustomerEmail, "orderId", n.OrderID, "subject", subject)
		return nil
	}

	if n.CustomerEmail == "" {
		return errs.NewValueIsRequiredError("customerEmail")
	}

	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("failed to set sender address: %w", err)
	}
	if err := msg.To(n.CustomerEmail); err != nil {
		return fmt.Errorf("failed to set recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body(n))

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send completion email: %w", err)
	}

	s.logger.InfoContext(ctx, "Completion email sent", "to", n.CustomerEmail, "orderId", n.OrderID)
	return nil
}

func body(n ports.Notification) string {
	name := n.CustomerName
	if name == "" {
		name = "Customer"
	}
	return fmt.Sprintf(
		"Dear %s,\n\nYour order %s has been completed.\nOrder total: $%.2f\n\nThank you for your business!",
		name, n.OrderID, n.OrderTotal)
}
