package credentials

import (
	"os"
	"time"

	json "github.com/json-iterator/go"

	"github.com/onesocial/cli/pkg/api"
	"github.com/onesocial/cli/pkg/config"
)

type Credentials struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	IsAdmin      bool      `json:"is_admin"`
}

// defaultLifetime is assumed when the backend does not say when a token expires.
const defaultLifetime = 24 * time.Hour

// FromAuthResponse builds credentials from a login, activation or Google
// sign-in response.
func FromAuthResponse(resp *api.AuthResponse) *Credentials {
	lifetime := time.Duration(resp.ExpiresIn) * time.Second
	if lifetime <= 0 {
		lifetime = defaultLifetime
	}
	return &Credentials{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    time.Now().Add(lifetime),
		UserID:       resp.User.ID,
		Name:         resp.User.Name,
		Username:     resp.User.Username,
		Email:        resp.User.Email,
		IsAdmin:      resp.User.IsAdmin(),
	}
}

// Refreshed updates the access token after a refresh.
func (c *Credentials) Refreshed(resp *api.RefreshResponse) {
	c.AccessToken = resp.AccessToken
	lifetime := time.Duration(resp.ExpiresIn) * time.Second
	if lifetime <= 0 {
		lifetime = defaultLifetime
	}
	c.ExpiresAt = time.Now().Add(lifetime)
}

// Load loads credentials from disk
func Load() (*Credentials, error) {
	path := config.GetCredentialsPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Credentials don't exist yet
		}
		return nil, err
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}

	return &creds, nil
}

// Save saves credentials to disk
func Save(creds *Credentials) error {
	path := config.GetCredentialsPath()

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}

	// Owner read/write only
	return os.WriteFile(path, data, 0600)
}

// Delete deletes credentials from disk. A missing file is not an error.
func Delete() error {
	err := os.Remove(config.GetCredentialsPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// IsExpired checks if the access token is expired
func (c *Credentials) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

// IsValid checks if credentials are valid
func (c *Credentials) IsValid() bool {
	return c.AccessToken != "" && !c.IsExpired()
}

// CanRefresh reports whether an expired session can be recovered.
func (c *Credentials) CanRefresh() bool {
	return c.RefreshToken != ""
}
