// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"blogctl/cli/internal/api"
	"blogctl/cli/internal/toggle"
)

// wishlistCmd shows the saved-posts list, or toggles a post on it when an
// ID is given.
var wishlistCmd = &cobra.Command{
	Use:     "wishlist [id]",
	Aliases: []string{"save", "bookmark"},
	Short:   "Show your saved posts or toggle one",
	Long: `Without arguments, the wishlist command lists the posts you have saved.
With a post ID it toggles that post on or off your wishlist, optimistically,
the same way like does.`,
	Args: cobra.MaximumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}
		ctx := cmd.Context()

		if len(args) == 0 {
			var items []api.WishlistItem
			err := spinWhile("Fetching your wishlist", func() error {
				var err error
				items, err = a.api.Wishlist(ctx)
				return err
			})
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("Your wishlist is empty.")
				return nil
			}
			blogs := make([]api.Blog, 0, len(items))
			for _, it := range items {
				blogs = append(blogs, it.Blog)
			}
			renderBlogTable(blogs)
			return nil
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}

		blog, err := a.api.GetBlog(ctx, id)
		if err != nil {
			return err
		}

		control := toggle.New(blog.IsWishlisted, 0, a.sess.IsAuthenticated)
		var message string
		err = control.Toggle(ctx, func(ctx context.Context) error {
			var err error
			message, err = a.api.ToggleWishlist(ctx, id)
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
				message = "Added to wishlist!"
			} else {
				message = "Removed from wishlist!"
			}
		}
		fmt.Printf("✅ %s\n", message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wishlistCmd)
}
