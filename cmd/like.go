// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"blogctl/cli/internal/toggle"
)

var likeShowUsers bool

// likeCmd flips the current user's like on a post through the optimistic
// toggle control, then reports the resulting state.
var likeCmd = &cobra.Command{
	Use:   "like <id>",
	Short: "Like or unlike a post",
	Long: `The like command toggles your like on a post. The local state flips
immediately; if the request then fails the flip is rolled back so the
shown state never drifts from the server.`,
	Args: cobra.ExactArgs(1),

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

		if likeShowUsers {
			likes, err := a.api.ListLikes(ctx, id)
			if err != nil {
				return err
			}
			if len(likes) == 0 {
				fmt.Println("No likes yet.")
				return nil
			}
			for _, l := range likes {
				fmt.Printf("♥ %s\n", l.User.Username)
			}
			return nil
		}

		blog, err := a.api.GetBlog(ctx, id)
		if err != nil {
			return err
		}

		control := toggle.New(blog.IsLiked, blog.LikesCount, a.sess.IsAuthenticated)
		var message string
		err = control.Toggle(ctx, func(ctx context.Context) error {
			var err error
			message, err = a.api.ToggleLike(ctx, id)
			return err
		})
		if errors.Is(err, toggle.ErrUnauthenticated) {
			return nil
		}
		if err != nil {
			return err
		}

		if message == "" {
			if control.Active {
				message = "Blog liked!"
			} else {
				message = "Blog unliked!"
			}
		}
		fmt.Printf("✅ %s (%d likes)\n", message, control.Count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(likeCmd)
	likeCmd.Flags().BoolVar(&likeShowUsers, "who", false, "List who liked the post instead of toggling")
}
