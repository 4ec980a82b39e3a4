package mail_test

import (
	"context"
	"log/slog"
	"testing"

	"completion/internal/adapters/out/mail"
	"completion/internal/core/ports"
	"completion/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewSender_RequiresHost(t *testing.T) {
	_, err := mail.NewSender("", 587, "user", "pass", "noreply@example.com", slog.Default())
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func Test_NewSender_RequiresFromAddress(t *testing.T) {
	_, err := mail.NewSender("smtp.example.com", 587, "user", "pass", "", slog.Default())
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func Test_SimulatedSender_AlwaysSucceeds(t *testing.T) {
	sender := mail.NewSimulatedSender(slog.Default())

	err := sender.Send(context.Background(), ports.Notification{
		CustomerID: "cust-1",
		OrderID:    "order-1",
		OrderTotal: 25.00,
	})

	require.NoError(t, err)
	assert.True(t, sender.Simulated())
}

func Test_SimulatedSender_SucceedsWithoutRecipient(t *testing.T) {
	sender := mail.NewSimulatedSender(slog.Default())

	err := sender.Send(context.Background(), ports.Notification{
		CustomerID:    "cust-1",
		CustomerEmail: "",
		OrderID:       "order-1",
	})

	require.NoError(t, err)
}

func Test_RealSender_RejectsMissingRecipient(t *testing.T) {
	sender, err := mail.NewSender("smtp.example.com", 587, "user", "pass", "noreply@example.com", slog.Default())
	require.NoError(t, err)
	assert.False(t, sender.Simulated())

	err = sender.Send(context.Background(), ports.Notification{
		CustomerID: "cust-1",
		OrderID:    "order-1",
	})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
