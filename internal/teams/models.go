package teams

import "courtside/internal/models"

// CreateTeamRequest represents the data needed to create a new team.
// The id is generated at creation and is not part of the request.
type CreateTeamRequest struct {
	Name        string          `json:"name"`
	PlayerCount int             `json:"playerCount"`
	Region      string          `json:"region"`
	Country     string          `json:"country"`
	Players     []models.Player `json:"players"`
}

// UpdateTeamRequest represents the data that can be updated for a team.
// Nil fields are left unchanged (shallow merge, not a replace).
type UpdateTeamRequest struct {
	Name        *string          `json:"name,omitempty"`
	PlayerCount *int             `json:"playerCount,omitempty"`
	Region      *string          `json:"region,omitempty"`
	Country     *string          `json:"country,omitempty"`
	Players     *[]models.Player `json:"players,omitempty"`
}
