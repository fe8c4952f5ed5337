package service

import (
	"context"
	"fmt"

	"github.com/onesocial/cli/pkg/api"
	"github.com/onesocial/cli/pkg/credentials"
	clierrors "github.com/onesocial/cli/pkg/errors"
	"github.com/onesocial/cli/pkg/formatter"
	"github.com/onesocial/cli/pkg/listsync"
	"github.com/onesocial/cli/pkg/output"
)

// UserService shows profiles and manages follows
type UserService struct {
	feed *FeedService
}

// NewUserService creates a new user service
func NewUserService() *UserService {
	return &UserService{feed: NewFeedService()}
}

// Profile prints a user's details followed by a page of their posts
func (s *UserService) Profile(ctx context.Context, username string, opts FeedOptions) error {
	if username == "" {
		return clierrors.ValidationError("username", "cannot be empty")
	}
	user, err := api.GetUserInfo(username)
	if err != nil {
		if api.IsNotFound(err) {
			return clierrors.NotFoundError("user", username)
		}
		return err
	}

	if output.GetOutputFormat() != output.FormatJSON {
		record := map[string]interface{}{
			"Username":  "@" + user.Username,
			"Name":      user.Name,
			"Followers": len(user.Followers),
			"Following": len(user.Following),
		}
		if user.Bio != "" {
			record["Bio"] = user.Bio
		}
		if me := s.currentUserID(); me != "" && me != user.ID {
			record["You follow"] = formatter.Bold.Sprint(yesNo(contains(user.Followers, me)))
		}
		formatter.PrintKeyValue(record)
		fmt.Fprintln(output.Out)
	}

	opts.Username = user.Username
	return s.feed.Show(ctx, listsync.KindProfile, opts)
}

// Follow starts following the user with the given username
func (s *UserService) Follow(username string) error {
	return s.follow(username, true)
}

// Unfollow stops following the user with the given username
func (s *UserService) Unfollow(username string) error {
	return s.follow(username, false)
}

func (s *UserService) follow(username string, on bool) error {
	if s.currentUserID() == "" {
		return clierrors.UnauthorizedError()
	}
	user, err := api.GetUserInfo(username)
	if err != nil {
		if api.IsNotFound(err) {
			return clierrors.NotFoundError("user", username)
		}
		return err
	}

	call := api.FollowUser
	if !on {
		call = api.UnfollowUser
	}
	if err := recovery.Do(func() error { return call(user.ID) }); err != nil {
		return err
	}

	if on {
		toaster.Success("Following @" + user.Username)
	} else {
		toaster.Success("Unfollowed @" + user.Username)
	}
	return nil
}

func (s *UserService) currentUserID() string {
	creds, err := credentials.Load()
	if err != nil || creds == nil {
		return ""
	}
	return creds.UserID
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
