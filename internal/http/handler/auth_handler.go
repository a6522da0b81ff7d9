package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Kingcxp/auth-service/internal/http/middleware"
	"github.com/Kingcxp/auth-service/internal/http/response"
	"github.com/Kingcxp/auth-service/internal/repository"
	"github.com/Kingcxp/auth-service/internal/service"
)

type AuthHandler struct {
	authSvc   *service.AuthService
	verifySvc *service.VerificationService
}

func NewAuthHandler(authSvc *service.AuthService, verifySvc *service.VerificationService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, verifySvc: verifySvc}
}

func (h *AuthHandler) Routes(r chi.Router) {
	r.Post("/verify", h.Verify)
	r.Get("/deprecate", h.Deprecate)
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Get("/logout", h.Logout)
	r.Get("/userdata/{field}", h.Userdata)
	r.Get("/id", h.ID)
}

func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		response.Msg(w, http.StatusBadRequest, "email is required")
		return
	}
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Msg(w, http.StatusInternalServerError, "session unavailable")
		return
	}
	err := h.verifySvc.RequestCode(r.Context(), sess, req.Email)
	var throttled *service.ThrottledError
	switch {
	case errors.As(err, &throttled):
		response.JSON(w, http.StatusBadRequest, map[string]any{
			"time_left": throttled.TimeLeft,
			"msg":       fmt.Sprintf("please wait %d seconds before requesting another code", throttled.TimeLeft),
		})
	case errors.Is(err, service.ErrDispatchFailed):
		response.Msg(w, http.StatusInternalServerError, "failed to send the code, please check the email address")
	case err != nil:
		response.Msg(w, http.StatusInternalServerError, "failed to issue verification code")
	default:
		response.Empty(w, http.StatusOK)
	}
}

// Deprecate discards any pending verification code. Best effort: there is
// nothing to report even when no code is pending.
func (h *AuthHandler) Deprecate(w http.ResponseWriter, r *http.Request) {
	if sess, ok := middleware.SessionFromContext(r.Context()); ok {
		h.verifySvc.Drop(r.Context(), sess)
	}
	response.Empty(w, http.StatusOK)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Token == "" {
		response.Msg(w, http.StatusBadRequest, "name and token are required")
		return
	}
	err := h.authSvc.Register(r.Context(), req.Name, req.Email, req.Token)
	switch {
	case errors.Is(err, repository.ErrDuplicateName):
		response.Msg(w, http.StatusBadRequest, "user name already exists")
	case errors.Is(err, repository.ErrDuplicateEmail):
		response.Msg(w, http.StatusBadRequest, "email already in use")
	case err != nil:
		response.Msg(w, http.StatusInternalServerError, "failed to create user, please retry or contact an administrator")
	default:
		response.Empty(w, http.StatusOK)
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Token string `json:"token"`
		Salt  string `json:"salt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Token == "" {
		response.Msg(w, http.StatusBadRequest, "name, token and salt are required")
		return
	}
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Msg(w, http.StatusInternalServerError, "session unavailable")
		return
	}
	err := h.authSvc.Login(r.Context(), sess, req.Name, req.Token, req.Salt)
	switch {
	case errors.Is(err, service.ErrUnknownUser):
		response.Msg(w, http.StatusBadRequest, "user name does not exist")
	case errors.Is(err, service.ErrBadCredentials):
		response.Msg(w, http.StatusBadRequest, "wrong password")
	case err != nil:
		response.Msg(w, http.StatusInternalServerError, "login failed")
	default:
		response.Empty(w, http.StatusOK)
	}
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Msg(w, http.StatusInternalServerError, "session unavailable")
		return
	}
	err := h.authSvc.Logout(r.Context(), sess)
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		response.Msg(w, http.StatusBadRequest, "you are not logged in")
	case err != nil:
		response.Msg(w, http.StatusInternalServerError, "logout failed")
	default:
		response.Empty(w, http.StatusOK)
	}
}

func (h *AuthHandler) Userdata(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Msg(w, http.StatusInternalServerError, "session unavailable")
		return
	}
	fields, err := h.authSvc.Field(r.Context(), sess, chi.URLParam(r, "field"))
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		response.Msg(w, http.StatusBadRequest, "you are not logged in")
	case errors.Is(err, service.ErrUnknownField):
		response.Msg(w, http.StatusBadRequest, "no such stored field")
	case errors.Is(err, service.ErrUserMissing):
		response.Msg(w, http.StatusInternalServerError, "user does not exist")
	case err != nil:
		response.Msg(w, http.StatusInternalServerError, "failed to load user data")
	default:
		response.JSON(w, http.StatusOK, fields)
	}
}

func (h *AuthHandler) ID(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Msg(w, http.StatusInternalServerError, "session unavailable")
		return
	}
	uid, err := h.authSvc.Identity(r.Context(), sess)
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		response.Msg(w, http.StatusBadRequest, "you are not logged in")
	case err != nil:
		response.Msg(w, http.StatusInternalServerError, "failed to resolve identity")
	default:
		response.JSON(w, http.StatusOK, map[string]any{"uid": uid})
	}
}
