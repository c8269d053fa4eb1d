package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jmfierro/portfolio-site-backend/database"
	"github.com/jmfierro/portfolio-site-backend/errs"
	"github.com/jmfierro/portfolio-site-backend/models"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// projectPayload is the wire shape of a project: its row plus the ordered
// technology labels.
type projectPayload struct {
	ID                  uuid.UUID `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	DetailedDescription string    `json:"detailed_description"`
	GithubURL           string    `json:"github_url"`
	LiveDemoURL         string    `json:"live_demo_url"`
	ImageURL            string    `json:"image_url"`
	DisplayOrder        int       `json:"display_order"`
	IsFeatured          bool      `json:"is_featured"`
	CreatedAt           time.Time `json:"created_at"`
	Technologies        []string  `json:"technologies"`
}

func toProjectPayload(project *models.Project) projectPayload {
	return projectPayload{
		ID:                  project.ID,
		Title:               project.Title,
		Description:         project.Description,
		DetailedDescription: project.DetailedDescription,
		GithubURL:           project.GithubURL,
		LiveDemoURL:         project.LiveDemoURL,
		ImageURL:            project.ImageURL,
		DisplayOrder:        project.DisplayOrder,
		IsFeatured:          project.IsFeatured,
		CreatedAt:           project.CreatedAt,
		Technologies:        project.TechnologyNames(),
	}
}

func toProjectPayloads(projects []*models.Project) []projectPayload {
	payloads := make([]projectPayload, len(projects))
	for i, project := range projects {
		payloads[i] = toProjectPayload(project)
	}
	return payloads
}

type createProjectRequest struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	DetailedDescription string   `json:"detailed_description"`
	GithubURL           string   `json:"github_url"`
	LiveDemoURL         string   `json:"live_demo_url"`
	ImageURL            string   `json:"image_url"`
	DisplayOrder        int      `json:"display_order"`
	IsFeatured          bool     `json:"is_featured"`
	Technologies        []string `json:"technologies"`
}

// updateProjectRequest distinguishes absent fields from provided ones; nil
// pointers leave the stored value untouched. A nil Technologies leaves the tag
// set alone, a non-nil (even empty) slice replaces it.
type updateProjectRequest struct {
	Title               *string   `json:"title"`
	Description         *string   `json:"description"`
	DetailedDescription *string   `json:"detailed_description"`
	GithubURL           *string   `json:"github_url"`
	LiveDemoURL         *string   `json:"live_demo_url"`
	ImageURL            *string   `json:"image_url"`
	DisplayOrder        *int      `json:"display_order"`
	IsFeatured          *bool     `json:"is_featured"`
	Technologies        *[]string `json:"technologies"`
}

// getFeaturedProjects lists featured projects with tags for the public site.
func (h projectHandler) getFeaturedProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindFeatured()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find featured", "projects", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, toProjectPayloads(projects))
	}
}

// getFeaturedProject returns a single featured project; unfeatured ids 404.
func (h projectHandler) getFeaturedProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := h.parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindFeaturedByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, toProjectPayload(project))
	}
}

// getAllProjects lists every project for the admin dashboard.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find all", "projects", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, toProjectPayloads(projects))
	}
}

// createProject inserts the project and its tag set in one transaction.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req createProjectRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		project := models.Project{
			Title:               req.Title,
			Description:         req.Description,
			DetailedDescription: req.DetailedDescription,
			GithubURL:           req.GithubURL,
			LiveDemoURL:         req.LiveDemoURL,
			ImageURL:            req.ImageURL,
			DisplayOrder:        req.DisplayOrder,
			IsFeatured:          req.IsFeatured,
		}

		if err := h.projectRepo.Create(&project, req.Technologies); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.responder.WriteData(w, http.StatusCreated, map[string]any{"id": project.ID})
	}
}

// updateProject applies a partial update (and optional tag replacement) atomically.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := h.parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req updateProjectRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		fields := database.ProjectUpdate{
			Title:               req.Title,
			Description:         req.Description,
			DetailedDescription: req.DetailedDescription,
			GithubURL:           req.GithubURL,
			LiveDemoURL:         req.LiveDemoURL,
			ImageURL:            req.ImageURL,
			DisplayOrder:        req.DisplayOrder,
			IsFeatured:          req.IsFeatured,
		}

		if err := h.projectRepo.Update(projectID, fields, req.Technologies); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "project updated successfully")
	}
}

// deleteProject removes a project and its tags.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := h.parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "project deleted successfully")
	}
}

func (h projectHandler) parseProjectID(r *http.Request) (uuid.UUID, error) {
	projectIDStr := chi.URLParam(r, "projectID")
	if projectIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing projectID")
	}

	projectID, err := uuid.Parse(projectIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid projectID")
	}
	return projectID, nil
}
