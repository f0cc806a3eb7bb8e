// Package roster derives which directory players may be assigned to a
// team, given the current registry state. All functions are pure: they
// never mutate their inputs or touch persistence.
package roster

import (
	"github.com/google/uuid"

	"courtside/internal/models"
)

// EligiblePlayers returns the players from all that are not on any other
// team's roster. When editingTeamID is non-nil, players already on that
// team remain eligible so an edit session sees its own current picks.
// Input order is preserved.
func EligiblePlayers(all []models.Player, teams []models.Team, editingTeamID *uuid.UUID) []models.Player {
	assigned := make(map[int]struct{})
	for _, team := range teams {
		if editingTeamID != nil && team.ID == *editingTeamID {
			continue
		}
		for _, p := range team.Players {
			assigned[p.ID] = struct{}{}
		}
	}

	eligible := make([]models.Player, 0, len(all))
	for _, p := range all {
		if _, taken := assigned[p.ID]; !taken {
			eligible = append(eligible, p)
		}
	}
	return eligible
}

// ToggleSelection removes playerID from the selection if present,
// otherwise appends it. A selection already at maxCount is returned
// unchanged; the caller is expected to disable the control rather than
// treat this as an error.
func ToggleSelection(selection []int, playerID, maxCount int) []int {
	for i, id := range selection {
		if id == playerID {
			out := make([]int, 0, len(selection)-1)
			out = append(out, selection[:i]...)
			return append(out, selection[i+1:]...)
		}
	}

	if len(selection) >= maxCount {
		return selection
	}

	out := make([]int, 0, len(selection)+1)
	out = append(out, selection...)
	return append(out, playerID)
}

// ClampSelection truncates the selection to at most maxCount entries,
// preserving relative order. Used when a team's declared player count is
// reduced below the current selection size.
func ClampSelection(selection []int, maxCount int) []int {
	if maxCount < 0 {
		maxCount = 0
	}
	if len(selection) <= maxCount {
		return selection
	}
	return selection[:maxCount]
}
