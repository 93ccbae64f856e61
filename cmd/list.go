// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"

	"blogctl/cli/internal/api"
	"blogctl/cli/internal/pagination"
)

var (
	listPage     int
	listPageSize int
)

// listCmd shows one page of the blog feed. Works logged out; engagement
// flags on each post are only meaningful when authenticated.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"feed", "ls"},
	Short:   "Browse the blog feed",
	Long: `The list command fetches one page of published posts and renders them as
a table. Use --page to move through the feed; the footer shows where you
are and how to reach the neighboring pages.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		pageSize := listPageSize
		if pageSize <= 0 {
			pageSize = a.cfg.PageSize
		}

		var feed *api.BlogList
		err = spinWhile("Fetching the feed", func() error {
			var err error
			feed, err = a.api.ListBlogs(cmd.Context(), listPage, pageSize)
			return err
		})
		if err != nil {
			return err
		}

		renderBlogTable(feed.Results)
		renderPageFooter(pagination.Compute(listPage, feed.Count, pageSize))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number")
	listCmd.Flags().IntVar(&listPageSize, "page-size", 0, "Posts per page (defaults to the configured size)")
}
