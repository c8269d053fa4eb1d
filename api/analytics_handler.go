package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jmfierro/portfolio-site-backend/database"
	"github.com/jmfierro/portfolio-site-backend/errs"
	"github.com/jmfierro/portfolio-site-backend/models"
)

type analyticsHandler struct {
	responder     Responder
	logger        zerolog.Logger
	analyticsRepo *database.AnalyticsRepo
}

func newAnalyticsHandler(analyticsRepo *database.AnalyticsRepo) analyticsHandler {
	logger := log.With().Str("handlerName", "analyticsHandler").Logger()

	return analyticsHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		analyticsRepo: analyticsRepo,
	}
}

type pageViewRequest struct {
	PageName string `json:"page_name"`
}

// trackPageView records one visit with the caller's IP and user agent.
func (h analyticsHandler) trackPageView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req pageViewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.PageName == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("page_name is required"))
			return
		}

		view := models.PageView{
			PageName:  req.PageName,
			IPAddress: clientIP(r),
			UserAgent: r.UserAgent(),
		}

		if err := h.analyticsRepo.Record(&view); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "page view", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "page view tracked")
	}
}

// getOverview returns aggregate pageview counts for the admin dashboard.
func (h analyticsHandler) getOverview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		overview, err := h.analyticsRepo.Overview()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("aggregate", "page views", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, overview)
	}
}
