package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jmfierro/portfolio-site-backend/database"
	"github.com/jmfierro/portfolio-site-backend/errs"
	"github.com/jmfierro/portfolio-site-backend/models"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.SkillRepo
}

func newSkillHandler(skillRepo *database.SkillRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
	}
}

type createSkillRequest struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	ProficiencyLevel int    `json:"proficiency_level"`
	IconName         string `json:"icon_name"`
	ColorFrom        string `json:"color_from"`
	ColorTo          string `json:"color_to"`
	DisplayOrder     int    `json:"display_order"`
	IsFeatured       bool   `json:"is_featured"`
}

type updateSkillRequest struct {
	Name             *string `json:"name"`
	Category         *string `json:"category"`
	ProficiencyLevel *int    `json:"proficiency_level"`
	IconName         *string `json:"icon_name"`
	ColorFrom        *string `json:"color_from"`
	ColorTo          *string `json:"color_to"`
	DisplayOrder     *int    `json:"display_order"`
	IsFeatured       *bool   `json:"is_featured"`
}

func (h skillHandler) getFeaturedSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindFeatured()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find featured", "skills", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, skills)
	}
}

func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find all", "skills", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, skills)
	}
}

func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		skill := models.Skill{
			Name:             req.Name,
			Category:         req.Category,
			ProficiencyLevel: req.ProficiencyLevel,
			IconName:         req.IconName,
			ColorFrom:        req.ColorFrom,
			ColorTo:          req.ColorTo,
			DisplayOrder:     req.DisplayOrder,
			IsFeatured:       req.IsFeatured,
		}

		if err := h.skillRepo.Add(&skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "skill", err))
			return
		}

		h.responder.WriteData(w, http.StatusCreated, map[string]any{"id": skill.ID})
	}
}

func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := h.parseSkillID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req updateSkillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		fields := database.SkillUpdate{
			Name:             req.Name,
			Category:         req.Category,
			ProficiencyLevel: req.ProficiencyLevel,
			IconName:         req.IconName,
			ColorFrom:        req.ColorFrom,
			ColorTo:          req.ColorTo,
			DisplayOrder:     req.DisplayOrder,
			IsFeatured:       req.IsFeatured,
		}

		if err := h.skillRepo.Update(skillID, fields); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "skill updated successfully")
	}
}

func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := h.parseSkillID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.skillRepo.Delete(skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "skill deleted successfully")
	}
}

func (h skillHandler) parseSkillID(r *http.Request) (uuid.UUID, error) {
	skillIDStr := chi.URLParam(r, "skillID")
	if skillIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing skillID")
	}

	skillID, err := uuid.Parse(skillIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid skillID")
	}
	return skillID, nil
}
