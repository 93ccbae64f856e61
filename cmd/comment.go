// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"blogctl/cli/internal/validate"
)

// commentCmd groups the comment operations.
var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Read and write comments on posts",
}

var commentListCmd = &cobra.Command{
	Use:   "list <blog-id>",
	Short: "List the comments on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		blogID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		comments, err := a.api.ListComments(cmd.Context(), blogID)
		if err != nil {
			return err
		}
		renderComments(comments)
		return nil
	},
}

var commentAddCmd = &cobra.Command{
	Use:   "add <blog-id> <content>",
	Short: "Comment on a post",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		blogID, err := strconv.ParseInt(args[0], 10, 64)
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
		content := args[1]
		if errs := validate.Comment(content); len(errs) > 0 {
			for field, msg := range errs {
				pterm.Error.Printfln("%s: %s", field, msg)
			}
			return errs.Err()
		}
		c, err := a.api.CreateComment(cmd.Context(), blogID, content)
		if err != nil {
			return err
		}
		fmt.Printf("✅ Comment %d added.\n", c.ID)
		return nil
	},
}

var commentEditCmd = &cobra.Command{
	Use:   "edit <comment-id> <content>",
	Short: "Edit one of your comments",
	Args:  cobra.ExactArgs(2),
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
		content := args[1]
		if errs := validate.Comment(content); len(errs) > 0 {
			for field, msg := range errs {
				pterm.Error.Printfln("%s: %s", field, msg)
			}
			return errs.Err()
		}
		if _, err := a.api.UpdateComment(cmd.Context(), id, content); err != nil {
			return err
		}
		fmt.Printf("✅ Comment %d updated.\n", id)
		return nil
	},
}

var commentDeleteCmd = &cobra.Command{
	Use:   "delete <comment-id>",
	Short: "Delete one of your comments",
	Args:  cobra.ExactArgs(1),
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
		if err := a.api.DeleteComment(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("✅ Comment %d deleted.\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commentCmd)
	commentCmd.AddCommand(commentListCmd)
	commentCmd.AddCommand(commentAddCmd)
	commentCmd.AddCommand(commentEditCmd)
	commentCmd.AddCommand(commentDeleteCmd)
}
