// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	"blogctl/cli/internal/api"
)

// readCmd shows a full post with its comment thread.
var readCmd = &cobra.Command{
	Use:     "read <id>",
	Aliases: []string{"show", "get"},
	Short:   "Read a post and its comments",
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
		ctx := cmd.Context()

		var blog *api.Blog
		var comments []api.Comment
		err = spinWhile("Fetching the post", func() error {
			var err error
			blog, err = a.api.GetBlog(ctx, id)
			if err != nil {
				return err
			}
			comments, err = a.api.ListComments(ctx, id)
			return err
		})
		if api.IsStatus(err, http.StatusNotFound) {
			fmt.Printf("No post with id %d.\n", id)
			return nil
		}
		if err != nil {
			return err
		}

		renderBlog(blog)
		renderComments(comments)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
}
