package api

import (
	"github.com/onesocial/cli/pkg/client"
	"github.com/onesocial/cli/pkg/logger"
)

// GetUserInfo gets a public profile by username
func GetUserInfo(username string) (*User, error) {
	logger.Debug("Fetching user", "username", username)

	resp, err := client.GetClient().
		R().
		SetPathParam("username", username).
		Get("/users/{username}")

	var user User
	if err := decode(resp, err, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile updates the signed-in user's profile and returns the result
func UpdateProfile(req UpdateProfileRequest) (*User, error) {
	logger.Debug("Updating profile")

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Patch("/users/update")

	var user User
	if err := decode(resp, err, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FollowUser follows another user
func FollowUser(userID string) error {
	logger.Debug("Following user", "user_id", userID)

	resp, err := client.GetClient().
		R().
		SetPathParam("id", userID).
		Post("/users/{id}/follow")

	return CheckResponse(resp, err)
}

// UnfollowUser stops following a user
func UnfollowUser(userID string) error {
	logger.Debug("Unfollowing user", "user_id", userID)

	resp, err := client.GetClient().
		R().
		SetPathParam("id", userID).
		Post("/users/{id}/unfollow")

	return CheckResponse(resp, err)
}
