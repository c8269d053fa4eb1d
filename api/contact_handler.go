package api

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jmfierro/portfolio-site-backend/database"
	"github.com/jmfierro/portfolio-site-backend/errs"
	"github.com/jmfierro/portfolio-site-backend/models"
	"github.com/jmfierro/portfolio-site-backend/services"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
}

func newContactHandler(contactRepo *database.ContactRepo) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h contactHandler) submitMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Name == "" || req.Email == "" || req.Message == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name, email, and message are required"))
			return
		}

		message := models.ContactMessage{
			Name:      req.Name,
			Email:     req.Email,
			Subject:   req.Subject,
			Message:   req.Message,
			IPAddress: clientIP(r),
		}

		if err := h.contactRepo.Add(&message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact message", err))
			return
		}

		// Operator notification is best-effort; the submission is already stored
		go func() {
			if err := services.SendContactNotification(req.Name, req.Email, req.Subject, req.Message); err != nil {
				h.logger.Warn().Err(err).Msg("Failed to send contact notification")
			}
		}()

		h.responder.WriteMessage(w, http.StatusOK, "message sent successfully")
	}
}

// clientIP prefers the first X-Forwarded-For hop, falling back to RemoteAddr.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
