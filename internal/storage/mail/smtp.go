package mail

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/wwdevkhati/shop-backend/internal/config"
	"github.com/wwdevkhati/shop-backend/internal/model"
)

const orderSubject = "New Order"

var _ Notifier = (*SMTPNotifier)(nil)

type SMTPNotifier struct {
	cfg    config.SMTP
	dialer *gomail.Dialer
}

// NewSMTPNotifier creates a notifier that mails the operator through the
// configured SMTP server.
func NewSMTPNotifier(cfg config.SMTP) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (n *SMTPNotifier) OrderPlaced(ctx context.Context, order model.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", n.cfg.To)
	m.SetHeader("Reply-To", n.cfg.To)
	m.SetHeader("Subject", orderSubject)
	m.SetBody("text/plain", OrderBody(order))

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send order mail: %w", err)
	}

	return nil
}

// OrderBody renders the order as one "Label: value" pair per line in a
// fixed field order, omitting fields the customer did not supply.
func OrderBody(order model.Order) string {
	fields := []struct {
		label string
		value string
	}{
		{"Name", order.Name},
		{"Mobile", order.Mobile},
		{"State", order.State},
		{"District", order.District},
		{"Address", order.Address},
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", f.label, f.value))
	}

	return strings.Join(lines, "\n")
}
