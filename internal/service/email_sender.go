package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"
)

// EmailSender delivers one message and reports plain success or failure;
// transports give no partial-failure detail beyond that.
type EmailSender interface {
	Send(ctx context.Context, target, subject, body string) bool
}

type SMTPEmailSender struct {
	host       string
	account    string
	passkey    string
	senderName string
	logger     *slog.Logger
}

func NewSMTPEmailSender(host, account, passkey, senderName string, logger *slog.Logger) *SMTPEmailSender {
	if !strings.Contains(host, ":") {
		host += ":587"
	}
	return &SMTPEmailSender{
		host:       host,
		account:    account,
		passkey:    passkey,
		senderName: senderName,
		logger:     logger,
	}
}

func (s *SMTPEmailSender) Send(ctx context.Context, target, subject, body string) bool {
	hostname := s.host
	if i := strings.Index(hostname, ":"); i >= 0 {
		hostname = hostname[:i]
	}
	stamp := time.Now().Format("01-02 15:04")
	msg := strings.Join([]string{
		fmt.Sprintf("From: %s <%s>", s.senderName, s.account),
		"To: " + target,
		fmt.Sprintf("Subject: %s -- %s", subject, stamp),
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		body,
	}, "\r\n")

	auth := smtp.PlainAuth("", s.account, s.passkey, hostname)
	if err := smtp.SendMail(s.host, auth, s.account, []string{target}, []byte(msg)); err != nil {
		s.logger.ErrorContext(ctx, "send verification email failed",
			"target", target,
			"error", err.Error(),
		)
		return false
	}
	return true
}

// DevEmailSender logs the message instead of delivering it, so local
// environments can read the code off the server log.
type DevEmailSender struct {
	logger *slog.Logger
}

func NewDevEmailSender(logger *slog.Logger) *DevEmailSender {
	return &DevEmailSender{logger: logger}
}

func (s *DevEmailSender) Send(ctx context.Context, target, subject, body string) bool {
	s.logger.InfoContext(ctx, "verification email (dev sender)",
		"target", target,
		"subject", subject,
		"body", body,
	)
	return true
}
