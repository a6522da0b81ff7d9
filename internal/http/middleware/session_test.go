package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kingcxp/auth-service/internal/security"
	"github.com/Kingcxp/auth-service/internal/service"
)

func newSessionServiceForTest() *service.SessionService {
	cookies := security.NewCookieManager("session_id", "", false, "lax")
	return service.NewSessionService(service.NewInMemorySessionStore(time.Hour), cookies, time.Hour)
}

func TestSessionLoaderIssuesCookieOnFirstContact(t *testing.T) {
	var seen *service.Session
	handler := SessionLoader(newSessionServiceForTest())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok {
			t.Fatal("session missing from context")
		}
		seen = sess
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/id", nil))

	if seen == nil || seen.ID == "" {
		t.Fatalf("expected session with id, got %+v", seen)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "session_id" || cookies[0].Value != seen.ID {
		t.Fatalf("expected session cookie for %q, got %v", seen.ID, cookies)
	}
	if !cookies[0].HttpOnly {
		t.Fatal("session cookie must be HttpOnly")
	}
}

func TestSessionLoaderReusesExistingCookie(t *testing.T) {
	handlerCalled := false
	handler := SessionLoader(newSessionServiceForTest())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		sess, _ := SessionFromContext(r.Context())
		if sess.ID != "existing-session" {
			t.Fatalf("expected existing session id, got %q", sess.ID)
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "existing-session"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !handlerCalled {
		t.Fatal("handler not called")
	}
	if cookies := rec.Result().Cookies(); len(cookies) != 0 {
		t.Fatalf("no new cookie expected, got %v", cookies)
	}
}
