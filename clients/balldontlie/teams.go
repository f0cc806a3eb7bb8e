package balldontlie

import (
	"encoding/json"
	"fmt"
)

// Team is an NBA franchise as returned by the directory, distinct from
// the user-created teams this application manages.
type Team struct {
	ID           int    `json:"id"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	City         string `json:"city"`
	Name         string `json:"name"`
	FullName     string `json:"full_name"`
	Abbreviation string `json:"abbreviation"`
}

// TeamsResponse is the payload of the teams endpoint.
type TeamsResponse struct {
	Data []Team `json:"data"`
}

// GetTeams fetches the NBA franchise list.
func (c *Client) GetTeams() ([]Team, error) {
	body, err := c.Get(TeamsEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	var response TeamsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	return response.Data, nil
}
