package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"woodshop-assistant-be/internal/entity"
	"woodshop-assistant-be/pkg/rag/policy"
)

var (
	ErrNotFound      = errors.New("identity: user not found")
	ErrUnauthorized  = errors.New("identity: provider rejected the secret key")
	ErrMissingSecret = errors.New("identity: secret key is not configured")
)

// ClerkClient proxies user profile lookups to the Clerk backend API.
type ClerkClient struct {
	BaseURL   string
	SecretKey string
	Client    *http.Client
}

func NewClerkClient(secretKey string) *ClerkClient {
	return &ClerkClient{
		BaseURL:   "https://api.clerk.com/v1",
		SecretKey: secretKey,
		Client:    &http.Client{Timeout: 30 * time.Second},
	}
}

type clerkUserResponse struct {
	Id             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}

// GetUser fetches the profile for userId. Lookup runs under the network-call
// retry policy; 404 and 401 map to sentinel errors so callers can pick the
// right status without string matching.
func (c *ClerkClient) GetUser(ctx context.Context, userId string) (*entity.UserProfile, error) {
	if c.SecretKey == "" {
		return nil, ErrMissingSecret
	}

	var profile *entity.UserProfile
	err := policy.NetworkCall.Do(ctx, func(ctx context.Context) error {
		var callErr error
		profile, callErr = c.fetchUser(ctx, userId)
		return callErr
	})
	if err != nil {
		// Sentinels are terminal; unwrap them from the policy error.
		for _, sentinel := range []error{ErrNotFound, ErrUnauthorized} {
			if errors.Is(err, sentinel) {
				return nil, sentinel
			}
		}
		return nil, err
	}
	return profile, nil
}

func (c *ClerkClient) fetchUser(ctx context.Context, userId string) (*entity.UserProfile, error) {
	url := fmt.Sprintf("%s/users/%s", c.BaseURL, userId)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("identity provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var user clerkUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode identity response: %w", err)
	}

	profile := &entity.UserProfile{
		Id:        user.Id,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
	if len(user.EmailAddresses) > 0 {
		email := user.EmailAddresses[0].EmailAddress
		profile.Email = &email
	}
	return profile, nil
}
