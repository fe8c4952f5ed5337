package api

import (
	"github.com/onesocial/cli/pkg/client"
	"github.com/onesocial/cli/pkg/logger"
)

// Login authenticates user with email and password
func Login(email, password string) (*AuthResponse, error) {
	logger.Debug("Attempting login", "email", email)

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(LoginRequest{Email: email, Password: password}).
		Post("/auth/login")

	var authResp AuthResponse
	if err := decode(resp, err, &authResp); err != nil {
		return nil, err
	}

	logger.Debug("Login successful", "username", authResp.User.Username)
	return &authResp, nil
}

// Register creates an inactive account; the backend mails an activation link.
func Register(req RegisterRequest) error {
	logger.Debug("Registering account", "username", req.Username, "email", req.Email)

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/register")

	return CheckResponse(resp, err)
}

// GoogleLogin exchanges a Google ID token for a session
func GoogleLogin(idToken string) (*AuthResponse, error) {
	logger.Debug("Attempting Google login")

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(GoogleLoginRequest{Token: idToken}).
		Post("/auth/google")

	var authResp AuthResponse
	if err := decode(resp, err, &authResp); err != nil {
		return nil, err
	}
	return &authResp, nil
}

// ActivateAccount consumes the emailed activation token and signs the user in
func ActivateAccount(token string) (*AuthResponse, error) {
	logger.Debug("Activating account")

	resp, err := client.GetClient().
		R().
		SetPathParam("token", token).
		Post("/auth/active/{token}")

	var authResp AuthResponse
	if err := decode(resp, err, &authResp); err != nil {
		return nil, err
	}
	return &authResp, nil
}

// ReactivateAccount asks the backend to send a fresh activation email
func ReactivateAccount(userID string) error {
	logger.Debug("Requesting new activation email", "user_id", userID)

	resp, err := client.GetClient().
		R().
		SetPathParam("id", userID).
		Post("/auth/reactive/{id}")

	return CheckResponse(resp, err)
}

// Refresh refreshes the access token using refresh token
func Refresh(refreshToken string) (*RefreshResponse, error) {
	logger.Debug("Refreshing access token")

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(RefreshRequest{RefreshToken: refreshToken}).
		Post("/auth/refresh")

	var refreshResp RefreshResponse
	if err := decode(resp, err, &refreshResp); err != nil {
		return nil, err
	}

	logger.Debug("Access token refreshed")
	return &refreshResp, nil
}

// GetCurrentUser gets the current authenticated user
func GetCurrentUser() (*User, error) {
	logger.Debug("Fetching current user")

	resp, err := client.GetClient().
		R().
		Get("/auth/me")

	var user User
	if err := decode(resp, err, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword changes the signed-in user's password
func ChangePassword(req ChangePasswordRequest) error {
	logger.Debug("Changing password")

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Patch("/auth/password")

	return CheckResponse(resp, err)
}

// ForgotPassword requests a password reset email
func ForgotPassword(email string) error {
	logger.Debug("Requesting password reset", "email", email)

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email}).
		Post("/auth/forgot-password")

	return CheckResponse(resp, err)
}

// ResetPassword sets a new password using the emailed reset token
func ResetPassword(req ResetPasswordRequest) error {
	logger.Debug("Resetting password")

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/reset-password")

	return CheckResponse(resp, err)
}
