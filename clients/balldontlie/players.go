package balldontlie

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"courtside/internal/models"
)

// Meta carries the pagination metadata of a players page.
type Meta struct {
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	TotalCount  int `json:"total_count"`
}

// PlayersResponse is the paginated payload of the players endpoint.
type PlayersResponse struct {
	Data []models.Player `json:"data"`
	Meta Meta            `json:"meta"`
}

// PlayerListOptions selects which players page to fetch. Zero values are
// omitted from the request so the API applies its own defaults.
type PlayerListOptions struct {
	Search  string
	Page    int
	PerPage int
}

// GetPlayers fetches a single page of players, optionally filtered by a
// search keyword matched against player names.
func (c *Client) GetPlayers(opts PlayerListOptions) (*PlayersResponse, error) {
	params := url.Values{}
	if opts.Search != "" {
		params.Set("search", opts.Search)
	}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(opts.PerPage))
	}

	endpoint := PlayersEndpoint
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	body, err := c.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	var response PlayersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}

	return &response, nil
}

// GetAllPlayers walks every page of the players endpoint for the given
// search keyword and returns the combined list.
func (c *Client) GetAllPlayers(search string) ([]models.Player, error) {
	var all []models.Player

	page := 1
	for {
		resp, err := c.GetPlayers(PlayerListOptions{
			Search:  search,
			Page:    page,
			PerPage: MaxPerPage,
		})
		if err != nil {
			return nil, err
		}

		all = append(all, resp.Data...)

		if page >= resp.Meta.TotalPages || len(resp.Data) == 0 {
			break
		}
		page++
	}

	return all, nil
}
