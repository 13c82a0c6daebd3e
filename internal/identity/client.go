package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUserNotFound is returned when the provider has no record for the id.
var ErrUserNotFound = errors.New("identity user not found")

// Client calls the identity provider's admin REST API with the backend
// secret key. The read/patch shape follows the provider's
// /v1/users/{id} contract.
type Client struct {
	baseURL   string
	secretKey string
	client    *http.Client
}

// NewClient creates an admin API client.
func NewClient(baseURL, secretKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		client:    &http.Client{Timeout: timeout},
	}
}

// GetUser fetches a user record by provider id.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/users/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("build user request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrUserNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("identity API returned %d: %s", resp.StatusCode, body)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &user, nil
}

// UpdateUserMetadata reads the current metadata, merges the patch, and
// writes the result back. Read-merge-write is not atomic; concurrent
// writers can race, which is acceptable for the soft usage gate this
// backs.
func (c *Client) UpdateUserMetadata(ctx context.Context, id string, patch MetadataPatch) error {
	user, err := c.GetUser(ctx, id)
	if err != nil {
		return err
	}

	merged := patch.Apply(user.PublicMetadata)
	payload, err := json.Marshal(map[string]any{"public_metadata": merged})
	if err != nil {
		return fmt.Errorf("marshal metadata patch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+"/v1/users/"+id, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build metadata request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("patch metadata: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("identity API returned %d: %s", resp.StatusCode, body)
	}
	return nil
}
