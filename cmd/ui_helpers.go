// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"

	"blogctl/cli/internal/api"
	"blogctl/cli/internal/pagination"
)

// renderBlogTable prints one page of the feed as a table. The cursor is
// hidden while the table renders so partial redraws don't flicker.
func renderBlogTable(blogs []api.Blog) {
	cursor.Hide()
	defer cursor.Show()

	rows := pterm.TableData{{"ID", "Title", "Author", "Likes", "Comments", "Published"}}
	for _, b := range blogs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", b.ID),
			truncate(b.Title, 40),
			displayAuthor(b.Author),
			fmt.Sprintf("%d", b.LikesCount),
			fmt.Sprintf("%d", b.CommentsCount),
			displayDate(b.CreatedAt),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// renderBlog prints a full post with its engagement state.
func renderBlog(b *api.Blog) {
	pterm.DefaultSection.Println(b.Title)
	pterm.Printfln("by %s on %s", displayAuthor(b.Author), displayDate(b.CreatedAt))

	marks := make([]string, 0, 2)
	if b.IsLiked {
		marks = append(marks, "♥ liked")
	}
	if b.IsWishlisted {
		marks = append(marks, "🔖 saved")
	}
	status := fmt.Sprintf("%d likes · %d comments", b.LikesCount, b.CommentsCount)
	if len(marks) > 0 {
		status += " · " + strings.Join(marks, " · ")
	}
	pterm.Println(pterm.Gray(status))
	pterm.Println()
	pterm.Println(b.Content)
}

// renderComments prints a post's comment thread.
func renderComments(comments []api.Comment) {
	if len(comments) == 0 {
		pterm.Println(pterm.Gray("No comments yet."))
		return
	}
	pterm.DefaultSection.WithLevel(2).Println("Comments")
	for _, c := range comments {
		pterm.Printfln("[%d] %s · %s", c.ID, displayAuthor(c.User), displayDate(c.CreatedAt))
		pterm.Printfln("    %s", c.Content)
	}
}

// renderPageFooter prints the "Showing X to Y of Z" line under a feed page.
func renderPageFooter(info pagination.Info) {
	if info.Total == 0 {
		pterm.Println(pterm.Gray("No posts yet."))
		return
	}
	pterm.Printfln("Showing %d to %d of %d posts · page %d of %d",
		info.Start, info.End, info.Total, info.Page, info.TotalPages)
	hints := make([]string, 0, 2)
	if info.HasPrevious {
		hints = append(hints, fmt.Sprintf("--page %d for previous", info.Page-1))
	}
	if info.HasNext {
		hints = append(hints, fmt.Sprintf("--page %d for next", info.Page+1))
	}
	if len(hints) > 0 {
		pterm.Println(pterm.Gray(strings.Join(hints, " · ")))
	}
}

// spinWhile runs fn behind a spinner with the given text.
func spinWhile(text string, fn func() error) error {
	spinner, _ := pterm.DefaultSpinner.Start(text)
	err := fn()
	if spinner != nil {
		if err != nil {
			spinner.Fail()
		} else {
			_ = spinner.Stop()
		}
	}
	return err
}

func displayAuthor(a api.Author) string {
	if a.Name != "" {
		return a.Name
	}
	return a.Username
}

// displayDate trims an ISO timestamp down to its date part.
func displayDate(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
