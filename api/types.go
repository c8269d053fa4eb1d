package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler      authHandler
	projectHandler   projectHandler
	skillHandler     skillHandler
	contentHandler   contentHandler
	contactHandler   contactHandler
	analyticsHandler analyticsHandler
}

// envelope is the uniform response body for every endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}
