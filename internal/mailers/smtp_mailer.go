package mailers

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/mail"
	"net/smtp"
	"os"
	"strconv"
	"time"

	"printer-report/internal/shared/loggers"
	"printer-report/internal/shared/metrics"
	"printer-report/internal/shared/ulid"
)

const (
	portImplicitTLS = 465
	dialTimeout     = 30 * time.Second
)

// SMTPConfig holds the relay the reports are handed to.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string // optional
	Password string // optional
}

//go:generate mockgen -source=smtp_mailer.go -destination=./mocks/mailer_mock.go -package=mocks
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

type smtpMailer struct {
	config    SMTPConfig
	tlsConfig *tls.Config
	now       func() time.Time
}

func NewSMTPMailer(config SMTPConfig) Mailer {
	return &smtpMailer{
		config:    config,
		tlsConfig: &tls.Config{ServerName: config.Host},
		now:       time.Now,
	}
}

// Send delivers msg in one SMTP transaction. Port 465 uses implicit TLS; on other ports STARTTLS is used
// when the server offers it. There is no retry.
func (m *smtpMailer) Send(ctx context.Context, msg *Message) error {
	logger := loggers.Ctx(ctx)

	body, err := buildMIME(msg, m.now(), ulid.NewMessageID(hostname()))
	if err != nil {
		svcErr := errInvalidMessage(err)
		metricMailsSentTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	if err := m.deliver(ctx, msg, body); err != nil {
		svcErr := errDeliveryFailed(m.address(), msg.To, err)
		metricMailsSentTotal.WithLabelValues(svcErr.Code).Inc()
		return svcErr
	}

	metricMailsSentTotal.WithLabelValues(metrics.ValueNoError).Inc()
	logger.Info().
		Strs("to", msg.To).
		Str("server", m.address()).
		Int("bytes", len(body)).
		Msg("Report mailed")
	return nil
}

func (m *smtpMailer) deliver(ctx context.Context, msg *Message, body []byte) error {
	client, err := m.connect(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Close()

	if m.config.Username != "" {
		auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	if err := client.Mail(envelopeAddress(msg.From)); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, rcpt := range msg.To {
		if err := client.Rcpt(envelopeAddress(rcpt)); err != nil {
			return fmt.Errorf("failed to add recipient %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to start data: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close data: %w", err)
	}
	return client.Quit()
}

func (m *smtpMailer) connect(ctx context.Context) (*smtp.Client, error) {
	dialer := &net.Dialer{Timeout: dialTimeout}

	if m.config.Port == portImplicitTLS {
		tlsDialer := &tls.Dialer{NetDialer: dialer, Config: m.tlsConfig}
		conn, err := tlsDialer.DialContext(ctx, "tcp", m.address())
		if err != nil {
			return nil, err
		}
		return smtp.NewClient(conn, m.config.Host)
	}

	conn, err := dialer.DialContext(ctx, "tcp", m.address())
	if err != nil {
		return nil, err
	}
	client, err := smtp.NewClient(conn, m.config.Host)
	if err != nil {
		conn.Close()
		return nil, err
	}
	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(m.tlsConfig); err != nil {
			client.Close()
			return nil, fmt.Errorf("STARTTLS failed: %w", err)
		}
	}
	return client, nil
}

func (m *smtpMailer) address() string {
	return net.JoinHostPort(m.config.Host, strconv.Itoa(m.config.Port))
}

// envelopeAddress returns the bare address of "Name <addr>"; local names such as "Administrator" are
// passed through for the relay to qualify.
func envelopeAddress(addr string) string {
	if parsed, err := mail.ParseAddress(addr); err == nil {
		return parsed.Address
	}
	return addr
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return ""
	}
	return name
}
