package roster_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"courtside/internal/models"
	"courtside/internal/roster"
)

func player(id int) models.Player {
	return models.Player{ID: id}
}

func TestEligiblePlayers(t *testing.T) {
	teamID := uuid.New()
	otherID := uuid.New()

	all := []models.Player{player(1), player(2), player(3)}
	existing := []models.Team{
		{ID: teamID, Players: []models.Player{player(1)}},
		{ID: otherID, Players: []models.Player{player(3)}},
	}

	t.Run("assigned players are excluded", func(t *testing.T) {
		eligible := roster.EligiblePlayers(all, existing, nil)

		assert.Equal(t, []models.Player{player(2)}, eligible)
	})

	t.Run("the edited team's own roster stays eligible", func(t *testing.T) {
		eligible := roster.EligiblePlayers(all, existing, &teamID)

		assert.Equal(t, []models.Player{player(1), player(2)}, eligible)
	})

	t.Run("no teams means everyone is eligible", func(t *testing.T) {
		eligible := roster.EligiblePlayers(all, nil, nil)

		assert.Equal(t, all, eligible)
	})

	t.Run("empty directory means no one is eligible", func(t *testing.T) {
		eligible := roster.EligiblePlayers(nil, existing, nil)

		assert.Empty(t, eligible)
	})
}

func TestToggleSelection(t *testing.T) {
	t.Run("adds below the ceiling", func(t *testing.T) {
		assert.Equal(t, []int{1, 2}, roster.ToggleSelection([]int{1}, 2, 5))
	})

	t.Run("removes a present player", func(t *testing.T) {
		assert.Equal(t, []int{1, 3}, roster.ToggleSelection([]int{1, 2, 3}, 2, 5))
	})

	t.Run("full selection is returned unchanged", func(t *testing.T) {
		full := []int{1, 2, 3}
		assert.Equal(t, full, roster.ToggleSelection(full, 4, 3))
	})

	t.Run("removal works even when full", func(t *testing.T) {
		assert.Equal(t, []int{1, 3}, roster.ToggleSelection([]int{1, 2, 3}, 2, 3))
	})

	t.Run("re-adding moves a player to the end", func(t *testing.T) {
		sel := []int{1, 2, 3}
		sel = roster.ToggleSelection(sel, 1, 5)
		sel = roster.ToggleSelection(sel, 1, 5)

		assert.Equal(t, []int{2, 3, 1}, sel)
	})

	t.Run("never exceeds the ceiling", func(t *testing.T) {
		var sel []int
		for id := 1; id <= 10; id++ {
			sel = roster.ToggleSelection(sel, id, 4)
			assert.LessOrEqual(t, len(sel), 4)
		}
		assert.Equal(t, []int{1, 2, 3, 4}, sel)
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		sel := []int{1, 2, 3}
		roster.ToggleSelection(sel, 2, 5)
		roster.ToggleSelection(sel, 9, 5)

		assert.Equal(t, []int{1, 2, 3}, sel)
	})
}

func TestClampSelection(t *testing.T) {
	t.Run("truncates preserving order", func(t *testing.T) {
		assert.Equal(t, []int{1, 2}, roster.ClampSelection([]int{1, 2, 3, 4}, 2))
	})

	t.Run("short selections pass through", func(t *testing.T) {
		assert.Equal(t, []int{1, 2}, roster.ClampSelection([]int{1, 2}, 5))
	})

	t.Run("zero ceiling empties the selection", func(t *testing.T) {
		assert.Empty(t, roster.ClampSelection([]int{1, 2}, 0))
	})
}
