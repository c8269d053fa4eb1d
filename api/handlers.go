package api

import (
	"github.com/jmfierro/portfolio-site-backend/auth"
	"github.com/jmfierro/portfolio-site-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, tokens *auth.TokenService, credentials auth.CredentialVerifier) *routeHandlers {
	return &routeHandlers{
		authHandler:      newAuthHandler(tokens, credentials),
		projectHandler:   newProjectHandler(database.ProjectRepo()),
		skillHandler:     newSkillHandler(database.SkillRepo()),
		contentHandler:   newContentHandler(database.ContentRepo()),
		contactHandler:   newContactHandler(database.ContactRepo()),
		analyticsHandler: newAnalyticsHandler(database.AnalyticsRepo()),
	}
}
