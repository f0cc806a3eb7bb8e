package balldontlie

const (
	// Base URL
	BaseURL = "https://api.balldontlie.io/v1"

	// API Endpoints
	PlayersEndpoint = "/players"
	TeamsEndpoint   = "/teams"

	// Headers
	AuthorizationHeader = "Authorization"

	// Pagination
	DefaultPerPage = 25
	MaxPerPage     = 100
)
