package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jmfierro/portfolio-site-backend/auth"
	"github.com/jmfierro/portfolio-site-backend/errs"
)

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	tokens      *auth.TokenService
	credentials auth.CredentialVerifier
}

func newAuthHandler(tokens *auth.TokenService, credentials auth.CredentialVerifier) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		tokens:      tokens,
		credentials: credentials,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// login validates the operator credential and issues a signed session token.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Username == "" || req.Password == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("username and password are required"))
			return
		}

		identity, err := h.credentials.Verify(req.Username, req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		token, err := h.tokens.Issue(identity.Username)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to issue token")
			h.responder.WriteError(w, errs.NewInternalError("could not issue token"))
			return
		}

		h.responder.WriteData(w, http.StatusOK, loginResponse{
			Token:    token,
			Username: identity.Username,
		})
	}
}

// me returns the identity attached by the auth middleware.
func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := ctxIdentity(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("no verified identity"))
			return
		}

		h.responder.WriteData(w, http.StatusOK, identity)
	}
}

// changePassword rotates the operator credential after verifying the current one.
func (h authHandler) changePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := ctxIdentity(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("no verified identity"))
			return
		}

		var req changePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.CurrentPassword == "" || req.NewPassword == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("current_password and new_password are required"))
			return
		}

		if err := h.credentials.Rotate(identity.Username, req.CurrentPassword, req.NewPassword); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "password changed successfully")
	}
}
