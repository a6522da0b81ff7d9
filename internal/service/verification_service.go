package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/Kingcxp/auth-service/internal/security"
)

var (
	// ErrDispatchFailed means the email transport reported failure; the
	// generated code was discarded and the slot left untouched.
	ErrDispatchFailed = errors.New("verification email dispatch failed")
	// ErrNoPendingCode means consume was called with an empty slot.
	ErrNoPendingCode = errors.New("no pending verification code")
	// ErrCodeMismatch means the attempted code is not the stored one.
	ErrCodeMismatch = errors.New("verification code mismatch")
)

// ThrottledError rejects a resend inside the cooldown window. TimeLeft is
// the ceiling of the remaining seconds.
type ThrottledError struct {
	TimeLeft int
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("verification code throttled, retry in %ds", e.TimeLeft)
}

// VerificationService issues, throttles, and checks the short-lived email
// codes bound to a session's verification slot.
type VerificationService struct {
	sender   EmailSender
	cooldown time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

func NewVerificationService(sender EmailSender, cooldown time.Duration, logger *slog.Logger) *VerificationService {
	return &VerificationService{
		sender:   sender,
		cooldown: cooldown,
		logger:   logger,
		now:      time.Now,
	}
}

// RequestCode generates a fresh 6-digit code and mails it to email. Within
// the cooldown of the previous issuance it returns ThrottledError without
// generating or sending anything. On dispatch failure the slot is left
// unchanged and the code is never reused.
func (s *VerificationService) RequestCode(ctx context.Context, sess *Session, email string) error {
	if issuedAt, ok, err := sess.VerificationIssuedAt(ctx); err != nil {
		return err
	} else if ok {
		if left := s.cooldown - s.now().Sub(issuedAt); left > 0 {
			return &ThrottledError{TimeLeft: int(math.Ceil(left.Seconds()))}
		}
	}

	code, err := security.NewVerificationCode()
	if err != nil {
		return err
	}
	body := fmt.Sprintf("Your verification code is %s. It is used for email verification, do not forward it. If this was not you, please ignore this message.", code)
	if !s.sender.Send(ctx, email, "Verification Code", body) {
		return ErrDispatchFailed
	}
	if err := sess.SetVerification(ctx, code, email, s.now()); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "verification code issued", "session_id", sess.ID, "email", email)
	return nil
}

// ConsumeCode compares attempt against the stored code without clearing the
// slot; dropping the slot is a separate explicit step so callers may
// re-check or discard unconditionally.
func (s *VerificationService) ConsumeCode(ctx context.Context, sess *Session, attempt string) error {
	code, ok, err := sess.VerificationCode(ctx)
	if err != nil {
		return err
	}
	if !ok || code == "" {
		return ErrNoPendingCode
	}
	if code != attempt {
		return ErrCodeMismatch
	}
	return nil
}

// Drop clears the verification slot. Total and idempotent; there is nothing
// to fail.
func (s *VerificationService) Drop(ctx context.Context, sess *Session) {
	sess.DropVerification(ctx)
}
