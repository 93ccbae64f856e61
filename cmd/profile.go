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
	profileName  string
	profileEmail string
	profileImage string
)

// profileCmd shows the live profile, or updates it when any change flag
// is set. A successful update is merged into the stored session.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
	Long: `Without flags, the profile command fetches and displays your profile from
the server. With --name, --email or --image it submits an update; fields
you do not pass keep their current values.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		ctx := cmd.Context()

		updating := profileName != "" || profileEmail != "" || profileImage != ""
		if !updating {
			user, err := a.api.Profile(ctx)
			if err != nil {
				return err
			}
			renderProfile(user)
			return nil
		}

		if profileEmail != "" {
			if err := validate.Email(profileEmail); err != nil {
				pterm.Error.Printfln("email: %v", err)
				return err
			}
		}

		var user *api.User
		err = spinWhile("Updating profile", func() error {
			var err error
			user, err = a.api.UpdateProfile(ctx, api.ProfileForm{
				Name:      profileName,
				Email:     profileEmail,
				ImagePath: profileImage,
			})
			return err
		})
		if err != nil {
			return err
		}

		// Mirror the server's answer into the stored session.
		update := session.ProfileUpdate{}
		if user.Name != "" {
			update.Name = &user.Name
		}
		if user.Email != "" {
			update.Email = &user.Email
		}
		if user.ProfileImage != "" {
			update.ProfileImageURL = &user.ProfileImage
		}
		if err := a.sess.UpdateProfile(update); err != nil {
			return err
		}

		fmt.Println("✅ Profile updated.")
		renderProfile(user)
		return nil
	},
}

func renderProfile(u *api.User) {
	pterm.DefaultSection.Println(displayName(u))
	pterm.Printfln("Username: %s", u.Username)
	pterm.Printfln("Email:    %s", u.Email)
	if u.ProfileImage != "" {
		pterm.Printfln("Image:    %s", u.ProfileImage)
	}
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringVar(&profileName, "name", "", "New display name")
	profileCmd.Flags().StringVar(&profileEmail, "email", "", "New email address")
	profileCmd.Flags().StringVar(&profileImage, "image", "", "Path to a new profile image")
}
