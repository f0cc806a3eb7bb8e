package models

import "fmt"

// Player represents an NBA player sourced from the directory API.
// Players are read-only: the application never creates, updates, or
// deletes them, it only references them from team rosters.
type Player struct {
	ID           int     `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Position     *string `json:"position,omitempty"`
	Height       *string `json:"height,omitempty"`
	Weight       *string `json:"weight,omitempty"`
	JerseyNumber *string `json:"jersey_number,omitempty"`
	College      *string `json:"college,omitempty"`
	Country      *string `json:"country,omitempty"`
	DraftYear    *int    `json:"draft_year,omitempty"`
	DraftRound   *int    `json:"draft_round,omitempty"`
	DraftNumber  *int    `json:"draft_number,omitempty"`
}

// FullName returns the player's display name.
func (p Player) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}
