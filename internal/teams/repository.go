package teams

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"courtside/internal/models"
	"courtside/internal/store"
)

// Repository holds the authoritative in-memory team collection and
// mirrors it into the persisted store. The in-memory slice is the source
// of truth: it is loaded once at construction and every mutation rewrites
// the full serialized collection before the change becomes visible.
type Repository struct {
	kv    store.KV
	teams []models.Team
}

// NewRepository creates a repository, loading any previously persisted
// teams from the store.
func NewRepository(kv store.KV) (*Repository, error) {
	r := &Repository{kv: kv}

	raw, found, err := kv.Get(store.TeamsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	if found {
		if err := json.Unmarshal(raw, &r.teams); err != nil {
			return nil, fmt.Errorf("failed to decode persisted teams: %w", err)
		}
	}

	return r, nil
}

// ListTeams returns the teams in insertion order.
func (r *Repository) ListTeams() []models.Team {
	out := make([]models.Team, len(r.teams))
	copy(out, r.teams)
	return out
}

// GetTeam retrieves a team by id.
func (r *Repository) GetTeam(id uuid.UUID) (*models.Team, bool) {
	for i := range r.teams {
		if r.teams[i].ID == id {
			team := r.teams[i]
			return &team, true
		}
	}
	return nil, false
}

// InsertTeam appends a team and persists the full collection. The
// in-memory state is only committed once the write succeeds, so a failed
// write leaves both sides untouched.
func (r *Repository) InsertTeam(team models.Team) error {
	next := append(r.ListTeams(), team)
	if err := r.persist(next); err != nil {
		return err
	}
	r.teams = next
	return nil
}

// ReplaceTeam swaps the stored record with the same id in place and
// persists the full collection.
func (r *Repository) ReplaceTeam(team models.Team) error {
	next := r.ListTeams()
	for i := range next {
		if next[i].ID == team.ID {
			next[i] = team
			if err := r.persist(next); err != nil {
				return err
			}
			r.teams = next
			return nil
		}
	}
	return fmt.Errorf("no stored team with id %s", team.ID)
}

// RemoveTeam deletes the team with the given id and persists the
// remaining collection.
func (r *Repository) RemoveTeam(id uuid.UUID) error {
	next := r.ListTeams()
	for i := range next {
		if next[i].ID == id {
			next = append(next[:i], next[i+1:]...)
			if err := r.persist(next); err != nil {
				return err
			}
			r.teams = next
			return nil
		}
	}
	return fmt.Errorf("no stored team with id %s", id)
}

func (r *Repository) persist(teams []models.Team) error {
	raw, err := json.Marshal(teams)
	if err != nil {
		return fmt.Errorf("failed to serialize teams: %w", err)
	}
	if err := r.kv.Set(store.TeamsKey, raw); err != nil {
		return fmt.Errorf("failed to persist teams: %w", err)
	}
	return nil
}
