package delivery

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/strategic-council/screener/config"
	"github.com/strategic-council/screener/models"
)

// Deliverer sends one finished report to the recipient.
type Deliverer interface {
	Deliver(ctx context.Context, cadence models.Cadence, report string, now time.Time) error
}

// EmailDeliverer sends reports over SMTP as HTML mail.
type EmailDeliverer struct {
	cfg    config.EmailConfig
	logger *log.Logger
}

func NewEmailDeliverer(cfg config.EmailConfig) *EmailDeliverer {
	return &EmailDeliverer{
		cfg:    cfg,
		logger: log.New(log.Writer(), "[EMAIL] ", log.LstdFlags),
	}
}

func (d *EmailDeliverer) Deliver(ctx context.Context, cadence models.Cadence, report string, now time.Time) error {
	msg := mail.NewMsg()
	if err := msg.From(d.cfg.From); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(d.cfg.To); err != nil {
		return fmt.Errorf("to address: %w", err)
	}
	msg.Subject(fmt.Sprintf("[Strategic Council] %s | %s", cadence.Label(), now.UTC().Format("2006-01-02")))
	msg.SetBodyString(mail.TypeTextHTML, wrapHTML(cadence, report, now))

	client, err := mail.NewClient(d.cfg.SMTPHost,
		mail.WithPort(d.cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(d.cfg.Username),
		mail.WithPassword(d.cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Close()

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send %s report: %w", cadence, err)
	}
	d.logger.Printf("%s report delivered to %s", cadence, d.cfg.To)
	return nil
}

// wrapHTML adds the shared mail chrome around a report body.
func wrapHTML(cadence models.Cadence, report string, now time.Time) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: 'Segoe UI', Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; color: #222;">
<div style="background: #1a1a2e; color: #fff; padding: 20px; border-radius: 8px 8px 0 0;">
  <h2 style="margin: 0;">Strategic Council</h2>
  <p style="margin: 5px 0 0; color: #aaa;">%s &middot; %s</p>
</div>
<div style="border: 1px solid #ddd; border-top: none; padding: 20px; border-radius: 0 0 8px 8px;">
%s
</div>
<p style="color: #999; font-size: 12px; text-align: center; margin-top: 20px;">
Generated automatically. Not investment advice.
</p>
</body>
</html>`, cadence.Label(), now.UTC().Format("2006-01-02 15:04 UTC"), report)
}
