package service

import (
	"fmt"

	"github.com/onesocial/cli/pkg/api"
	"github.com/onesocial/cli/pkg/client"
	"github.com/onesocial/cli/pkg/credentials"
	clierrors "github.com/onesocial/cli/pkg/errors"
	"github.com/onesocial/cli/pkg/formatter"
	"github.com/onesocial/cli/pkg/logger"
	"github.com/onesocial/cli/pkg/prompter"
)

type AuthService struct{}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	return &AuthService{}
}

// Login signs in with email and password, prompting for whichever is empty
func (s *AuthService) Login(email, password string) error {
	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return err
	}

	if creds != nil && creds.IsValid() && email == "" {
		formatter.PrintWarning("Already logged in as %s", creds.Username)
		confirm, err := prompter.PromptConfirm("Continue with new login?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	if email == "" {
		if email, err = prompter.PromptString("Email: "); err != nil {
			return err
		}
	}
	if email == "" {
		return clierrors.ValidationError("email", "cannot be empty")
	}

	if password == "" {
		if password, err = prompter.PromptPassword("Password: "); err != nil {
			return err
		}
	}
	if password == "" {
		return clierrors.ValidationError("password", "cannot be empty")
	}

	resp, err := api.Login(email, password)
	if err != nil {
		if apiErr, ok := err.(*api.APIError); ok && apiErr.Name == "AccountNotActivated" {
			formatter.PrintInfo("Run 'onesocial auth activate <token>' with the token from your email,")
			formatter.PrintInfo("or 'onesocial auth reactivate <user-id>' to get a new one.")
		}
		return err
	}

	return startSession(resp)
}

// Register creates an account; it stays inactive until the emailed link is used
func (s *AuthService) Register(req api.RegisterRequest) error {
	var err error
	if req.Name == "" {
		if req.Name, err = prompter.PromptString("Name: "); err != nil {
			return err
		}
	}
	if req.Username == "" {
		if req.Username, err = prompter.PromptString("Username: "); err != nil {
			return err
		}
	}
	if req.Email == "" {
		if req.Email, err = prompter.PromptString("Email: "); err != nil {
			return err
		}
	}
	if req.Password == "" {
		if req.Password, err = prompter.PromptPassword("Password: "); err != nil {
			return err
		}
		confirm, err := prompter.PromptPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if confirm != req.Password {
			return clierrors.ValidationError("password", "passwords do not match")
		}
	}

	if err := validateRegistration(req); err != nil {
		return err
	}

	if err := api.Register(req); err != nil {
		return err
	}

	toaster.Success(fmt.Sprintf("Account created. Check %s for the activation link.", req.Email))
	return nil
}

func validateRegistration(req api.RegisterRequest) error {
	switch {
	case req.Name == "":
		return clierrors.ValidationError("name", "cannot be empty")
	case len(req.Username) < 3:
		return clierrors.ValidationError("username", "must be at least 3 characters")
	case req.Email == "":
		return clierrors.ValidationError("email", "cannot be empty")
	case len(req.Password) < 6:
		return clierrors.ValidationError("password", "must be at least 6 characters")
	}
	return nil
}

// Activate consumes the emailed activation token and signs the user in
func (s *AuthService) Activate(token string) error {
	if token == "" {
		return clierrors.ValidationError("token", "cannot be empty")
	}
	resp, err := api.ActivateAccount(token)
	if err != nil {
		return err
	}
	toaster.Success("Your account is active.")
	return startSession(resp)
}

// Reactivate asks for a fresh activation email
func (s *AuthService) Reactivate(userID string) error {
	if err := api.ReactivateAccount(userID); err != nil {
		return err
	}
	toaster.Success("A new activation link is on its way.")
	return nil
}

// GoogleLogin signs in with a Google ID token
func (s *AuthService) GoogleLogin(idToken string) error {
	if idToken == "" {
		return clierrors.ValidationError("token", "cannot be empty")
	}
	resp, err := api.GoogleLogin(idToken)
	if err != nil {
		return err
	}
	return startSession(resp)
}

// Logout forgets the stored session
func (s *AuthService) Logout() error {
	creds, err := credentials.Load()
	if err != nil {
		return err
	}
	if creds == nil {
		formatter.PrintInfo("Not logged in.")
		return nil
	}

	if err := credentials.Delete(); err != nil {
		return err
	}
	client.ClearAuthToken()
	toaster.Success("Logged out " + creds.Username)
	return nil
}

// Whoami prints the signed-in account
func (s *AuthService) Whoami() error {
	creds, err := credentials.Load()
	if err != nil {
		return err
	}
	if creds == nil {
		return clierrors.UnauthorizedError()
	}

	var user *api.User
	err = recovery.Do(func() error {
		var err error
		user, err = api.GetCurrentUser()
		return err
	})
	if err != nil {
		return err
	}

	record := map[string]interface{}{
		"Username":  user.Username,
		"Name":      user.Name,
		"Email":     user.Email,
		"Followers": len(user.Followers),
		"Following": len(user.Following),
		"Saved":     len(user.Saved),
	}
	if user.IsAdmin() {
		record["Admin"] = "yes"
	}
	formatter.PrintKeyValue(record)
	return nil
}

func startSession(resp *api.AuthResponse) error {
	client.SetAuthToken(resp.AccessToken)

	creds := credentials.FromAuthResponse(resp)
	if err := credentials.Save(creds); err != nil {
		formatter.PrintError("Failed to save credentials: %v", err)
		return err
	}

	if creds.IsAdmin {
		toaster.Success(fmt.Sprintf("Logged in as %s (admin)", formatter.Bold.Sprint(creds.Username)))
	} else {
		toaster.Success(fmt.Sprintf("Logged in as %s", formatter.Bold.Sprint(creds.Username)))
	}
	return nil
}
