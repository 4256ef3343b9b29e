package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/mcpcare/internal/common"
	"github.com/dmitrijs2005/mcpcare/internal/logging"
	"github.com/dmitrijs2005/mcpcare/internal/server/services"
)

type handler struct {
	users  *services.UserService
	logger logging.Logger
}

func (h *handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req signupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	_, err := h.users.Signup(ctx, req.toInput())
	switch {
	case err == nil:
		writeMessage(w, http.StatusCreated, msgSignupOK)
	case errors.Is(err, common.ErrPasswordMismatch):
		writeMessage(w, http.StatusBadRequest, msgPasswordMismatch)
	case errors.Is(err, common.ErrMissingField):
		writeMessage(w, http.StatusBadRequest, msgMissingFields)
	default:
		// conflicts land here too and stay a 500
		h.logger.Error(ctx, "error during sign-up", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgSignupFailed)
	}
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	token, err := h.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeMessage(w, http.StatusUnauthorized, msgInvalidCreds)
			return
		}
		h.logger.Error(ctx, "error during login", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgLoginFailed)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Message: msgLoginOK, Token: token})
}

func (h *handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := r.Header.Get(common.AccessTokenHeaderName)
	if token == "" {
		writeMessage(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	claims, err := h.users.Authenticate(token)
	if err != nil {
		h.logger.Debug(ctx, "token rejected", "error", err)
		writeMessage(w, http.StatusUnauthorized, msgInvalidToken)
		return
	}

	user, err := h.users.Profile(ctx, claims.UserID)
	if err != nil {
		h.logger.Warn(ctx, "error loading profile", "user_id", claims.UserID, "error", err)
		writeMessage(w, http.StatusUnauthorized, msgInvalidToken)
		return
	}

	// user is nil when the account no longer exists; that encodes as null
	writeJSON(w, http.StatusOK, user)
}

func (h *handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
