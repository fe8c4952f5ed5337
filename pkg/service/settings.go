package service

import (
	"github.com/onesocial/cli/pkg/api"
	"github.com/onesocial/cli/pkg/credentials"
	clierrors "github.com/onesocial/cli/pkg/errors"
	"github.com/onesocial/cli/pkg/logger"
	"github.com/onesocial/cli/pkg/prompter"
)

// SettingsService manages the account profile and password
type SettingsService struct{}

// NewSettingsService creates a new settings service
func NewSettingsService() *SettingsService {
	return &SettingsService{}
}

// UpdateProfile sends the set fields of req. With nothing set it prompts
// for each field, showing the current value.
func (s *SettingsService) UpdateProfile(req api.UpdateProfileRequest) error {
	if req == (api.UpdateProfileRequest{}) {
		var current *api.User
		err := recovery.Do(func() error {
			var err error
			current, err = api.GetCurrentUser()
			return err
		})
		if err != nil {
			return err
		}
		if req.Name, err = prompter.PromptStringDefault("Name ", current.Name); err != nil {
			return err
		}
		if req.Username, err = prompter.PromptStringDefault("Username ", current.Username); err != nil {
			return err
		}
		if req.Bio, err = prompter.PromptStringDefault("Bio ", current.Bio); err != nil {
			return err
		}
		if req.Avatar, err = prompter.PromptStringDefault("Avatar URL ", current.Avatar); err != nil {
			return err
		}
	}
	if req.Username != "" && len(req.Username) < 3 {
		return clierrors.ValidationError("username", "must be at least 3 characters")
	}

	var user *api.User
	err := recovery.Do(func() error {
		var err error
		user, err = api.UpdateProfile(req)
		return err
	})
	if err != nil {
		return err
	}

	if creds, err := credentials.Load(); err == nil && creds != nil {
		creds.Username = user.Username
		creds.Name = user.Name
		if err := credentials.Save(creds); err != nil {
			logger.Warn("Failed to update stored credentials", "error", err)
		}
	}
	toaster.Success("Profile updated.")
	return nil
}

// ChangePassword prompts for the current and new passwords
func (s *SettingsService) ChangePassword() error {
	current, err := prompter.PromptPassword("Current password: ")
	if err != nil {
		return err
	}
	next, err := promptNewPassword()
	if err != nil {
		return err
	}

	req := api.ChangePasswordRequest{CurrentPassword: current, NewPassword: next}
	if err := recovery.Do(func() error { return api.ChangePassword(req) }); err != nil {
		return err
	}
	toaster.Success("Password changed.")
	return nil
}

// ForgotPassword requests a reset link for email
func (s *SettingsService) ForgotPassword(email string) error {
	var err error
	if email == "" {
		if email, err = prompter.PromptString("Email: "); err != nil {
			return err
		}
	}
	if email == "" {
		return clierrors.ValidationError("email", "cannot be empty")
	}
	if err := api.ForgotPassword(email); err != nil {
		return err
	}
	toaster.Success("If " + email + " has an account, a reset link is on its way.")
	return nil
}

// ResetPassword sets a new password using the emailed reset token
func (s *SettingsService) ResetPassword(token string) error {
	if token == "" {
		return clierrors.ValidationError("token", "cannot be empty")
	}
	password, err := promptNewPassword()
	if err != nil {
		return err
	}
	if err := api.ResetPassword(api.ResetPasswordRequest{Token: token, Password: password}); err != nil {
		return err
	}
	toaster.Success("Password reset. Log in with 'onesocial auth login'.")
	return nil
}

func promptNewPassword() (string, error) {
	password, err := prompter.PromptPassword("New password: ")
	if err != nil {
		return "", err
	}
	if len(password) < 6 {
		return "", clierrors.ValidationError("password", "must be at least 6 characters")
	}
	confirm, err := prompter.PromptPassword("Confirm new password: ")
	if err != nil {
		return "", err
	}
	if confirm != password {
		return "", clierrors.ValidationError("password", "passwords do not match")
	}
	return password, nil
}
