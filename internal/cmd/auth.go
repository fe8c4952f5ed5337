package cmd

import (
	"github.com/spf13/cobra"

	"github.com/onesocial/cli/pkg/api"
	"github.com/onesocial/cli/pkg/service"
)

var (
	loginEmail    string
	loginPassword string
	registerReq   api.RegisterRequest
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  "Sign in to OneSocial and manage your session",
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new OneSocial account",
	Long:  "Register a new account. It stays inactive until you follow the link in the activation email.",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Register(registerReq)
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to OneSocial",
	Long:  "Authenticate with email and password. Missing values are prompted for.",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Login(loginEmail, loginPassword)
	},
}

var googleLoginCmd = &cobra.Command{
	Use:   "google <id-token>",
	Short: "Login with a Google ID token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.GoogleLogin(args[0])
	},
}

var activateCmd = &cobra.Command{
	Use:   "activate <token>",
	Short: "Activate your account with the emailed token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Activate(args[0])
	},
}

var reactivateCmd = &cobra.Command{
	Use:   "reactivate <user-id>",
	Short: "Send a new activation email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Reactivate(args[0])
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from OneSocial",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Logout()
	},
}

var meCmd = &cobra.Command{
	Use:     "me",
	Aliases: []string{"whoami"},
	Short:   "Display current authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService()
		return authSvc.Whoami()
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password (prompted when empty)")

	registerCmd.Flags().StringVar(&registerReq.Name, "name", "", "Display name")
	registerCmd.Flags().StringVar(&registerReq.Username, "username", "", "Username")
	registerCmd.Flags().StringVar(&registerReq.Email, "email", "", "Email address")

	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(googleLoginCmd)
	authCmd.AddCommand(activateCmd)
	authCmd.AddCommand(reactivateCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(meCmd)
}
