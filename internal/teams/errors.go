package teams

import (
	"fmt"

	"github.com/google/uuid"
)

// DuplicateNameError is returned when a team name collides with an
// existing team. Names are compared case-sensitively.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("team with name %q already exists", e.Name)
}

// NotFoundError is returned when no team matches the given id, typically
// a stale reference to a team that was already deleted.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("team with id %s not found", e.ID)
}
