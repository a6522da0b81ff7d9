package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Kingcxp/auth-service/internal/domain"
	"github.com/Kingcxp/auth-service/internal/repository"
	"github.com/Kingcxp/auth-service/internal/security"
)

var (
	ErrNotAuthenticated = errors.New("no authenticated session")
	ErrUnknownUser      = errors.New("unknown user name")
	ErrBadCredentials   = errors.New("wrong password")
	ErrUnknownField     = errors.New("unknown user field")
	// ErrUserMissing is an authenticated session whose backing user record
	// has vanished; reported separately so store inconsistency is visible.
	ErrUserMissing = errors.New("user record missing for session")
)

// AuthService orchestrates registration, login, logout, and identity
// queries on top of the user repository and the session handle.
type AuthService struct {
	users  repository.UserRepository
	logger *slog.Logger
}

func NewAuthService(users repository.UserRepository, logger *slog.Logger) *AuthService {
	return &AuthService{users: users, logger: logger}
}

// Register creates an account. The token argument is the client-side
// credential hash; it is stored base64-encoded, never as a raw password.
// Returns repository.ErrDuplicateName when the name is taken; any other
// failure is a store failure.
func (s *AuthService) Register(ctx context.Context, name, email, token string) error {
	user := &domain.User{
		Name:  name,
		Token: security.EncodeToken(token),
	}
	if email != "" {
		user.Email = &email
	}
	if err := s.users.Create(user); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "user registered", "uid", user.UID, "name", name)
	return nil
}

// Login verifies the submitted digest against the stored token and binds
// the uid to the session. Unknown name and bad credentials are reported
// distinctly; that leaks name existence, which the product accepts for
// usability.
func (s *AuthService) Login(ctx context.Context, sess *Session, name, tokenAttempt, salt string) error {
	user, err := s.users.FindByName(name)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUnknownUser
		}
		return err
	}
	if !security.VerifyToken(user.Token, salt, tokenAttempt) {
		return ErrBadCredentials
	}
	if err := sess.SetUID(ctx, user.UID); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "user logged in", "uid", user.UID, "session_id", sess.ID)
	return nil
}

// Logout clears the whole session, verification slot included.
func (s *AuthService) Logout(ctx context.Context, sess *Session) error {
	if _, ok, err := sess.UID(ctx); err != nil {
		return err
	} else if !ok {
		return ErrNotAuthenticated
	}
	return sess.Clear(ctx)
}

// Identity returns the authenticated uid.
func (s *AuthService) Identity(ctx context.Context, sess *Session) (uint, error) {
	uid, ok, err := sess.UID(ctx)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNotAuthenticated
	}
	return uid, nil
}

// Field resolves a single named field (or "all") of the authenticated
// user. The set is closed: anything outside uid/name/email/all is an
// unknown field, which keeps the stored token and any future sensitive
// columns unreachable through this path.
func (s *AuthService) Field(ctx context.Context, sess *Session, field string) (map[string]any, error) {
	uid, err := s.Identity(ctx, sess)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserMissing
		}
		return nil, err
	}
	switch field {
	case "uid":
		return map[string]any{"uid": user.UID}, nil
	case "name":
		return map[string]any{"name": user.Name}, nil
	case "email":
		return map[string]any{"email": user.Email}, nil
	case "all":
		return map[string]any{
			"uid":   user.UID,
			"name":  user.Name,
			"email": user.Email,
		}, nil
	default:
		return nil, ErrUnknownField
	}
}
