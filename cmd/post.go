// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"blogctl/cli/internal/api"
	"blogctl/cli/internal/validate"
)

var (
	postTitle       string
	postContent     string
	postContentFile string
	postImage       string
)

// postCmd publishes a new blog post.
var postCmd = &cobra.Command{
	Use:     "post",
	Aliases: []string{"create", "new"},
	Short:   "Publish a new post",
	Long: `The post command publishes a new blog post. The content can be passed
inline with --content or read from a file with --content-file; an image
is attached with --image. Title and content are validated locally before
anything is sent.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if !a.requireLogin() {
			return nil
		}

		content := postContent
		if content == "" && postContentFile != "" {
			b, err := os.ReadFile(postContentFile)
			if err != nil {
				return err
			}
			content = string(b)
		}

		if errs := validate.BlogForm(postTitle, content); len(errs) > 0 {
			for field, msg := range errs {
				pterm.Error.Printfln("%s: %s", field, msg)
			}
			return errs.Err()
		}

		var blog *api.Blog
		err = spinWhile("Publishing", func() error {
			var err error
			blog, err = a.api.CreateBlog(cmd.Context(), api.BlogForm{
				Title:     postTitle,
				Content:   content,
				ImagePath: postImage,
			})
			return err
		})
		if err != nil {
			return err
		}

		fmt.Printf("✅ Published \"%s\" (id %d)\n", blog.Title, blog.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(postCmd)
	postCmd.Flags().StringVar(&postTitle, "title", "", "Post title")
	postCmd.Flags().StringVar(&postContent, "content", "", "Post content")
	postCmd.Flags().StringVar(&postContentFile, "content-file", "", "Read the post content from a file")
	postCmd.Flags().StringVar(&postImage, "image", "", "Path to a cover image")
}
