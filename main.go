// Package main is the entry point for the blogctl CLI application.
// It provides a command-line client for the remote blog publishing API.
package main

import (
	"blogctl/cli/cmd"
)

// main is the entry point for the blogctl CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
