package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"status-notifier/core/notify"

	"github.com/wneessen/go-mail"
)

// Sender delivers composed notifications over SMTP. It implements
// reconcile.Sender and is safe for concurrent use.
type Sender struct {
	host    string
	options []mail.Option
}

// NewSender validates cfg and returns a Sender. No connection is made until
// the first Send.
func NewSender(cfg Config) (*Sender, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, fmt.Errorf("mail host required")
	}

	policy, err := parseTLSPolicy(cfg.TLSPolicy)
	if err != nil {
		return nil, err
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	options := []mail.Option{
		mail.WithTLSPolicy(policy),
		mail.WithTimeout(time.Duration(timeout) * time.Second),
	}
	if cfg.Port > 0 {
		options = append(options, mail.WithPort(cfg.Port))
	}
	if cfg.Username != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	// Fail at startup rather than on the first notification.
	if _, err := mail.NewClient(cfg.Host, options...); err != nil {
		return nil, fmt.Errorf("invalid mail configuration: %w", err)
	}

	return &Sender{host: cfg.Host, options: options}, nil
}

// Send delivers msg over a fresh SMTP session.
func (s *Sender) Send(ctx context.Context, msg notify.Message) error {
	m, err := buildMessage(msg)
	if err != nil {
		return err
	}

	// A client per call keeps concurrent fan-out free of shared session state.
	client, err := mail.NewClient(s.host, s.options...)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", msg.To, err)
	}
	return nil
}

func buildMessage(msg notify.Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", msg.From, err)
	}
	if err := m.ReplyTo(msg.From); err != nil {
		return nil, fmt.Errorf("invalid reply-to %q: %w", msg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetDate()
	m.SetMessageID()
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}

func parseTLSPolicy(s string) (mail.TLSPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "opportunistic":
		return mail.TLSOpportunistic, nil
	case "mandatory":
		return mail.TLSMandatory, nil
	case "none":
		return mail.NoTLS, nil
	default:
		return mail.NoTLS, fmt.Errorf("unknown tls policy %q", s)
	}
}
