package models

import "github.com/google/uuid"

// Team represents a user-created roster of directory players.
type Team struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PlayerCount int       `json:"playerCount"`
	Region      string    `json:"region"`
	Country     string    `json:"country"`
	Players     []Player  `json:"players"`
}

// HasPlayer reports whether the given player is on this team's roster.
func (t Team) HasPlayer(playerID int) bool {
	for _, p := range t.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}
