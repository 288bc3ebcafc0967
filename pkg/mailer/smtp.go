package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultHost is used when SMTP_SERVER is not set.
	DefaultHost    = "smtp.gmail.com"
	DefaultPort    = 587
	defaultTimeout = 30 * time.Second
)

// ErrNotConfigured is returned by Send when no SMTP credentials were provided.
var ErrNotConfigured = errors.New("smtp credentials are not configured")

// Email is a multipart message with a plain-text body and an HTML alternative.
type Email struct {
	To      string
	Subject string
	Plain   string
	HTML    string
}

// Mailer delivers a single email per call.
type Mailer interface {
	Send(ctx context.Context, email Email) error
	Configured() bool
}

// Config describes the SMTP relay.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
	Logger   zerolog.Logger
}

// SMTPMailer sends mail through an authenticated STARTTLS relay. A new session is opened for
// every message.
type SMTPMailer struct {
	cfg    Config
	tracer trace.Tracer
	logger zerolog.Logger
}

// NewSMTPMailer applies defaults to cfg. It never dials; missing credentials only make
// Configured report false.
func NewSMTPMailer(cfg Config) *SMTPMailer {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port <= 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}

	return &SMTPMailer{
		cfg:    cfg,
		tracer: otel.Tracer("github.com/noah-isme/skills-assessment-api/pkg/mailer"),
		logger: cfg.Logger.With().Str("component", "smtp_mailer").Logger(),
	}
}

// Configured reports whether both username and password are present.
func (m *SMTPMailer) Configured() bool {
	return m.cfg.Username != "" && m.cfg.Password != ""
}

// Send builds the message and delivers it in one STARTTLS session bounded by the configured
// timeout. Errors are returned unclassified; see Classify.
func (m *SMTPMailer) Send(parent context.Context, email Email) error {
	ctx, span := m.tracer.Start(parent, "smtp.send", trace.WithAttributes(
		attribute.String("smtp.host", m.cfg.Host),
		attribute.Int("smtp.port", m.cfg.Port),
	))
	defer span.End()

	if !m.Configured() {
		span.SetStatus(codes.Error, ErrNotConfigured.Error())
		return ErrNotConfigured
	}

	msg, err := m.buildMessage(email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(m.cfg.Timeout),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("create smtp client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, m.cfg.Timeout)
	defer cancel()

	start := time.Now()
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	m.logger.Debug().
		Str("host", m.cfg.Host).
		Dur("elapsed", time.Since(start)).
		Msg("smtp session completed")
	return nil
}

func (m *SMTPMailer) buildMessage(email Email) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(email.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}

	msg.Subject(email.Subject)
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextPlain, email.Plain)
	if email.HTML != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	}
	return msg, nil
}
