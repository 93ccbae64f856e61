// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"blogctl/cli/internal/api"
	"blogctl/cli/internal/validate"
)

var (
	editTitle       string
	editContent     string
	editContentFile string
	editImage       string
)

// editCmd updates one of the user's own posts. Fields not passed keep
// their current server-side values by re-submitting them unchanged.
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit one of your posts",
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
		ctx := cmd.Context()

		current, err := a.api.GetBlog(ctx, id)
		if err != nil {
			return err
		}

		title := editTitle
		if title == "" {
			title = current.Title
		}
		content := editContent
		if content == "" && editContentFile != "" {
			b, err := os.ReadFile(editContentFile)
			if err != nil {
				return err
			}
			content = string(b)
		}
		if content == "" {
			content = current.Content
		}

		if errs := validate.BlogForm(title, content); len(errs) > 0 {
			for field, msg := range errs {
				pterm.Error.Printfln("%s: %s", field, msg)
			}
			return errs.Err()
		}

		var blog *api.Blog
		err = spinWhile("Saving changes", func() error {
			var err error
			blog, err = a.api.UpdateBlog(ctx, id, api.BlogForm{
				Title:     title,
				Content:   content,
				ImagePath: editImage,
			})
			return err
		})
		if err != nil {
			return err
		}

		fmt.Printf("✅ Updated \"%s\"\n", blog.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editContent, "content", "", "New content")
	editCmd.Flags().StringVar(&editContentFile, "content-file", "", "Read the new content from a file")
	editCmd.Flags().StringVar(&editImage, "image", "", "Path to a new cover image")
}
