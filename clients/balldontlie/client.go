package balldontlie

import (
	"courtside/clients"
)

// Client wraps the balldontlie NBA API, the player directory for the
// whole application.
type Client struct {
	*clients.BaseClient
}

// NewClient creates a directory client authenticated with the given API key.
func NewClient(apiKey string) *Client {
	return NewClientWithBaseURL(BaseURL, apiKey)
}

// NewClientWithBaseURL creates a directory client against a custom base URL.
// Used by tests to point the client at a local server.
func NewClientWithBaseURL(baseURL, apiKey string) *Client {
	client := &Client{
		BaseClient: clients.NewBaseClient(baseURL),
	}

	client.SetHeader(AuthorizationHeader, apiKey)

	return client
}
