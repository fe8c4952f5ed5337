package cmd

import (
	"github.com/spf13/cobra"

	"github.com/onesocial/cli/pkg/api"
	"github.com/onesocial/cli/pkg/service"
)

var (
	profileUpdate api.UpdateProfileRequest
	forgotEmail   string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage user settings",
	Long:  "Update your profile and password",
}

var settingsProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Update your profile",
	Long:  "Update your profile. Without flags every field is prompted for.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewSettingsService()
		return svc.UpdateProfile(profileUpdate)
	},
}

var settingsPasswordCmd = &cobra.Command{
	Use:   "password",
	Short: "Change your password",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewSettingsService()
		return svc.ChangePassword()
	},
}

var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password",
	Short: "Request a password reset email",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewSettingsService()
		return svc.ForgotPassword(forgotEmail)
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password <token>",
	Short: "Set a new password with the emailed reset token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewSettingsService()
		return svc.ResetPassword(args[0])
	},
}

func init() {
	settingsProfileCmd.Flags().StringVar(&profileUpdate.Name, "name", "", "Display name")
	settingsProfileCmd.Flags().StringVar(&profileUpdate.Username, "username", "", "Username")
	settingsProfileCmd.Flags().StringVar(&profileUpdate.Bio, "bio", "", "Short bio")
	settingsProfileCmd.Flags().StringVar(&profileUpdate.Avatar, "avatar", "", "Avatar image URL")
	forgotPasswordCmd.Flags().StringVar(&forgotEmail, "email", "", "Account email")

	settingsCmd.AddCommand(settingsProfileCmd)
	settingsCmd.AddCommand(settingsPasswordCmd)
	settingsCmd.AddCommand(forgotPasswordCmd)
	settingsCmd.AddCommand(resetPasswordCmd)
}
