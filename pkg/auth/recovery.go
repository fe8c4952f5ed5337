package auth

import (
	"fmt"
	"time"

	"github.com/onesocial/cli/pkg/api"
	"github.com/onesocial/cli/pkg/client"
	"github.com/onesocial/cli/pkg/credentials"
	"github.com/onesocial/cli/pkg/logger"
)

// SessionRecovery handles automatic session recovery
type SessionRecovery struct {
	maxRetries int
	retryDelay time.Duration
	refresh    func(refreshToken string) (*api.RefreshResponse, error)
}

// NewSessionRecovery creates a new session recovery handler
func NewSessionRecovery() *SessionRecovery {
	return &SessionRecovery{
		maxRetries: 3,
		retryDelay: 2 * time.Second,
		refresh:    api.Refresh,
	}
}

// RecoverSession refreshes the access token and installs it on the client
func (sr *SessionRecovery) RecoverSession() error {
	logger.Debug("Attempting to recover session")

	creds, err := credentials.Load()
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}

	if creds == nil || !creds.CanRefresh() {
		return fmt.Errorf("no refresh token available - please log in again")
	}

	for attempt := 1; attempt <= sr.maxRetries; attempt++ {
		logger.Debug("Refreshing token", "attempt", attempt)

		refreshResp, err := sr.refresh(creds.RefreshToken)
		if err == nil {
			creds.Refreshed(refreshResp)
			if err := credentials.Save(creds); err != nil {
				logger.Error("Failed to save updated credentials", "error", err)
			}
			client.SetAuthToken(creds.AccessToken)
			return nil
		}

		// A rejected refresh token will not start working on retry.
		if IsSessionError(err) {
			break
		}
		if attempt < sr.maxRetries {
			time.Sleep(sr.retryDelay)
		}
	}

	return fmt.Errorf("failed to recover session after %d attempts - please log in again", sr.maxRetries)
}

// IsSessionError checks if an error is a session-related error
func IsSessionError(err error) bool {
	if err == nil {
		return false
	}
	if api.IsUnauthorized(err) {
		return true
	}

	errMsg := err.Error()
	return errMsg == "401" ||
		errMsg == "unauthorized" ||
		errMsg == "session expired" ||
		errMsg == "token expired"
}

// HandleSessionError handles session-related errors with recovery
func (sr *SessionRecovery) HandleSessionError(err error) error {
	if !IsSessionError(err) {
		return err
	}

	logger.Debug("Handling session error with recovery")

	if recoveryErr := sr.RecoverSession(); recoveryErr != nil {
		logger.Error("Session recovery failed", "error", recoveryErr)
		return fmt.Errorf("session expired: %w", recoveryErr)
	}

	return nil
}

// Do runs call, and if it fails because the session expired, recovers the
// session and runs it once more.
func (sr *SessionRecovery) Do(call func() error) error {
	err := call()
	if !IsSessionError(err) {
		return err
	}
	if err := sr.HandleSessionError(err); err != nil {
		return err
	}
	return call()
}
