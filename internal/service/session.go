package service

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/Kingcxp/auth-service/internal/security"
)

// Session field keys. The names follow the wire-visible session layout the
// frontend was built against.
const (
	sessionKeyUID      = "uid"
	sessionKeyCode     = "captcha"
	sessionKeyCodeTime = "last_captcha_time"
	sessionKeyEmail    = "email"
)

// Session is a handle to one client's server-side state: an optional
// authenticated uid plus the verification slot (code, email, issued-at).
type Session struct {
	ID    string
	store SessionStore
}

func (s *Session) UID(ctx context.Context) (uint, bool, error) {
	raw, ok, err := s.store.Get(ctx, s.ID, sessionKeyUID)
	if err != nil || !ok {
		return 0, false, err
	}
	uid, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return uint(uid), true, nil
}

func (s *Session) SetUID(ctx context.Context, uid uint) error {
	return s.store.Set(ctx, s.ID, sessionKeyUID, strconv.FormatUint(uint64(uid), 10))
}

func (s *Session) VerificationCode(ctx context.Context) (string, bool, error) {
	return s.store.Get(ctx, s.ID, sessionKeyCode)
}

func (s *Session) VerificationEmail(ctx context.Context) (string, bool, error) {
	return s.store.Get(ctx, s.ID, sessionKeyEmail)
}

func (s *Session) VerificationIssuedAt(ctx context.Context) (time.Time, bool, error) {
	raw, ok, err := s.store.Get(ctx, s.ID, sessionKeyCodeTime)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	unix, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false, nil
	}
	return time.Unix(unix, 0), true, nil
}

// SetVerification fills the whole verification slot in one write so a code
// can never be observed bound to a stale email address.
func (s *Session) SetVerification(ctx context.Context, code, email string, issuedAt time.Time) error {
	return s.store.SetFields(ctx, s.ID, map[string]string{
		sessionKeyCode:     code,
		sessionKeyEmail:    email,
		sessionKeyCodeTime: strconv.FormatInt(issuedAt.Unix(), 10),
	})
}

// DropVerification clears the slot field by field. Clearing is total and
// idempotent: a missing field or a store hiccup on one key never stops the
// others from being cleared, and there is no failure to report.
func (s *Session) DropVerification(ctx context.Context) {
	_ = s.store.Delete(ctx, s.ID, sessionKeyCode)
	_ = s.store.Delete(ctx, s.ID, sessionKeyCodeTime)
	_ = s.store.Delete(ctx, s.ID, sessionKeyEmail)
}

// Clear wipes every session field, uid and verification slot alike.
func (s *Session) Clear(ctx context.Context) error {
	return s.store.Clear(ctx, s.ID)
}

// SessionService resolves the client's session from the request cookie,
// creating a fresh session (and setting the cookie) on first contact.
type SessionService struct {
	store   SessionStore
	cookies *security.CookieManager
	ttl     time.Duration
}

func NewSessionService(store SessionStore, cookies *security.CookieManager, ttl time.Duration) *SessionService {
	return &SessionService{store: store, cookies: cookies, ttl: ttl}
}

func (s *SessionService) Ensure(w http.ResponseWriter, r *http.Request) *Session {
	id := security.GetCookie(r, s.cookies.Name)
	if id == "" {
		id = security.NewSessionID()
		s.cookies.SetSessionCookie(w, id, s.ttl)
	}
	return &Session{ID: id, store: s.store}
}

// Open returns a handle to an existing session ID without touching cookies.
// Used by tests and tooling.
func (s *SessionService) Open(id string) *Session {
	return &Session{ID: id, store: s.store}
}
