// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd shows the locally stored session identity without touching
// the network.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently signed-in account",
	Long: `The whoami command displays the account from the stored session. It reads
local state only; use 'blogctl profile' to fetch the live profile from the
server.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		cur := a.sess.Current()
		if cur == nil {
			fmt.Println("🔒 You're not logged in yet!")
			fmt.Println("   Run 'blogctl login' to get started.")
			return nil
		}
		if cur.Name != "" {
			fmt.Printf("👤 %s (%s) · %s\n", cur.Name, cur.Username, cur.Email)
		} else {
			fmt.Printf("👤 %s · %s\n", cur.Username, cur.Email)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
