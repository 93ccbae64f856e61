// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var deleteYes bool

// deleteCmd removes one of the user's own posts after confirmation.
var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete one of your posts",
	Args:    cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}

		if !deleteYes {
			ok, _ := pterm.DefaultInteractiveConfirm.Show(fmt.Sprintf("Delete post %d? This cannot be undone.", id))
			if !ok {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		if err := a.api.DeleteBlog(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("✅ Post %d deleted.\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
