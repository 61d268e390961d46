package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"golang.org/x/time/rate"
	"gopkg.in/gomail.v2"
)

// Config holds configuration for sending emails via SMTP.
type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	RateLimit int // emails per minute, 0 disables limiting
}

// SMTPSender delivers messages over SMTP.
type SMTPSender struct {
	dialer   *gomail.Dialer
	config   Config
	registry *ContentTypeRegistry
	limiter  *rate.Limiter
}

// NewSMTPSender creates an SMTP sender. registry may be nil.
func NewSMTPSender(cfg Config, registry *ContentTypeRegistry) *SMTPSender {
	s := &SMTPSender{
		dialer:   gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
		config:   cfg,
		registry: registry,
	}
	if cfg.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RateLimit)), 1)
	}
	return s
}

// Send delivers msg. It blocks on the rate limiter and then on the SMTP
// exchange; there is no retry.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
	}

	m := s.buildMessage(msg)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}

	logx.WithContext(ctx).Infow("Email sent",
		logx.Field("to", msg.To),
		logx.Field("subject", msg.Subject),
		logx.Field("host", s.config.SMTPHost))
	return nil
}

func (s *SMTPSender) buildMessage(msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody(s.contentType(msg), msg.Body)
	return m
}

func (s *SMTPSender) contentType(msg Message) string {
	if msg.ContentType != "" {
		return msg.ContentType
	}
	return s.registry.Resolve(ContentTypePlain)
}
