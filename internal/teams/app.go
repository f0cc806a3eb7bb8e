package teams

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"courtside/internal/models"
)

// TeamRepository defines what the app layer needs from the repository.
type TeamRepository interface {
	ListTeams() []models.Team
	GetTeam(id uuid.UUID) (*models.Team, bool)
	InsertTeam(team models.Team) error
	ReplaceTeam(team models.Team) error
	RemoveTeam(id uuid.UUID) error
}

// App handles team registry business logic: id generation, name
// uniqueness, and not-found reporting. Field-level validation (non-empty
// name, positive player count) is the caller's responsibility.
type App struct {
	mu   sync.Mutex
	repo TeamRepository
}

// NewApp creates a new team registry App.
func NewApp(repo TeamRepository) *App {
	return &App{
		repo: repo,
	}
}

// ListTeams returns all teams in insertion order.
func (a *App) ListTeams() []models.Team {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.repo.ListTeams()
}

// GetTeam retrieves a team by id.
func (a *App) GetTeam(id uuid.UUID) (*models.Team, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	team, ok := a.repo.GetTeam(id)
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return team, nil
}

// CreateTeam creates a new team with a generated id. Fails with
// DuplicateNameError if another team already has the same name.
func (a *App) CreateTeam(req CreateTeamRequest) (*models.Team, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.nameTaken(req.Name, uuid.Nil) {
		return nil, &DuplicateNameError{Name: req.Name}
	}

	team := models.Team{
		ID:          uuid.New(),
		Name:        req.Name,
		PlayerCount: req.PlayerCount,
		Region:      req.Region,
		Country:     req.Country,
		Players:     req.Players,
	}
	if team.Players == nil {
		team.Players = []models.Player{}
	}

	if err := a.repo.InsertTeam(team); err != nil {
		return nil, err
	}

	log.Info().
		Str("team_id", team.ID.String()).
		Str("name", team.Name).
		Int("player_count", team.PlayerCount).
		Msg("created team")
	return &team, nil
}

// UpdateTeam merges the supplied fields into an existing team. Nil
// fields are left unchanged. Renaming to another team's name fails with
// DuplicateNameError.
func (a *App) UpdateTeam(id uuid.UUID, req UpdateTeamRequest) (*models.Team, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	team, ok := a.repo.GetTeam(id)
	if !ok {
		return nil, &NotFoundError{ID: id}
	}

	if req.Name != nil {
		if a.nameTaken(*req.Name, id) {
			return nil, &DuplicateNameError{Name: *req.Name}
		}
		team.Name = *req.Name
	}
	if req.PlayerCount != nil {
		team.PlayerCount = *req.PlayerCount
	}
	if req.Region != nil {
		team.Region = *req.Region
	}
	if req.Country != nil {
		team.Country = *req.Country
	}
	if req.Players != nil {
		team.Players = *req.Players
	}

	if err := a.repo.ReplaceTeam(*team); err != nil {
		return nil, err
	}

	log.Info().
		Str("team_id", team.ID.String()).
		Str("name", team.Name).
		Msg("updated team")
	return team, nil
}

// DeleteTeam removes a team by id.
func (a *App) DeleteTeam(id uuid.UUID) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	team, ok := a.repo.GetTeam(id)
	if !ok {
		return &NotFoundError{ID: id}
	}

	if err := a.repo.RemoveTeam(id); err != nil {
		return err
	}

	log.Info().
		Str("team_id", id.String()).
		Str("name", team.Name).
		Msg("deleted team")
	return nil
}

// nameTaken reports whether a team other than exclude already uses the
// given name. Comparison is case-sensitive.
func (a *App) nameTaken(name string, exclude uuid.UUID) bool {
	for _, t := range a.repo.ListTeams() {
		if t.Name == name && t.ID != exclude {
			return true
		}
	}
	return false
}
