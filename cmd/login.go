// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"blogctl/cli/internal/api"
	"blogctl/cli/internal/session"
	"blogctl/cli/internal/validate"
)

var (
	loginEmail    string
	loginPassword string
)

// loginCmd authenticates against the blog service and persists the
// resulting session. The password is prompted with masked input when not
// passed by flag.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Sign in to the blog service",
	Long: `The login command authenticates with the blog service using your email and
password. On success the session token and profile are stored securely so
subsequent commands run authenticated.

If already logged in with a valid session, it will tell you who you are
instead of prompting again.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if cur := a.sess.Current(); cur != nil {
			fmt.Printf("Already logged in as %s\n", cur.Username)
			return nil
		}

		email := loginEmail
		if email == "" {
			email, _ = pterm.DefaultInteractiveTextInput.Show("Email")
		}
		password := loginPassword
		if password == "" {
			password, _ = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
		}

		if errs := validate.Login(email, password); len(errs) > 0 {
			for field, msg := range errs {
				pterm.Error.Printfln("%s: %s", field, msg)
			}
			return errs.Err()
		}

		var user *api.User
		err = spinWhile("Signing in", func() error {
			var err error
			user, err = a.api.Login(cmd.Context(), email, password)
			return err
		})
		if err != nil {
			return err
		}

		if err := a.sess.Login(session.Session{
			UserID:          fmt.Sprintf("%d", user.ID),
			Username:        user.Username,
			Email:           user.Email,
			Name:            user.Name,
			ProfileImageURL: user.ProfileImage,
			Token:           user.Token,
		}); err != nil {
			return err
		}

		fmt.Printf("✅ Welcome back, %s!\n", displayName(user))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
}

// displayName prefers the display name, falling back to the username.
func displayName(u *api.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
