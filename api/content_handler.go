package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jmfierro/portfolio-site-backend/database"
)

// contentHandler serves the read-only public content endpoints.
type contentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contentRepo *database.ContentRepo
}

func newContentHandler(contentRepo *database.ContentRepo) contentHandler {
	logger := log.With().Str("handlerName", "contentHandler").Logger()

	return contentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contentRepo: contentRepo,
	}
}

func (h contentHandler) getPoems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		poems, err := h.contentRepo.FindPublishedPoems()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find published", "poems", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, poems)
	}
}

func (h contentHandler) getBooks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := h.contentRepo.FindBooks()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "books", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, books)
	}
}

func (h contentHandler) getDiscussions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		discussions, err := h.contentRepo.FindActiveDiscussions()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find active", "discussions", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, discussions)
	}
}
