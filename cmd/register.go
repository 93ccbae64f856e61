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
	registerUsername string
	registerEmail    string
	registerName     string
	registerPassword string
)

// registerCmd creates a new account and signs in with it.
var registerCmd = &cobra.Command{
	Use:     "register",
	Aliases: []string{"signup"},
	Short:   "Create a new account",
	Long: `The register command creates a new account on the blog service and signs
you in with it. The resulting session is stored securely, the same as
after login.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		username := registerUsername
		if username == "" {
			username, _ = pterm.DefaultInteractiveTextInput.Show("Username")
		}
		email := registerEmail
		if email == "" {
			email, _ = pterm.DefaultInteractiveTextInput.Show("Email")
		}
		password := registerPassword
		if password == "" {
			password, _ = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
		}

		if errs := validate.Registration(username, email, password); len(errs) > 0 {
			for field, msg := range errs {
				pterm.Error.Printfln("%s: %s", field, msg)
			}
			return errs.Err()
		}

		var user *api.User
		err = spinWhile("Creating your account", func() error {
			var err error
			user, err = a.api.Register(cmd.Context(), api.RegisterRequest{
				Username: username,
				Email:    email,
				Name:     registerName,
				Password: password,
			})
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

		fmt.Printf("✅ Account created. Welcome, %s!\n", displayName(user))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerUsername, "username", "", "Desired username")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name (optional)")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password (prompted when omitted)")
}
