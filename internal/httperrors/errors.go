// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors provides user-friendly handling of transport-level
// failures: timeouts, DNS trouble, refused connections and TLS problems
// get a short diagnosis instead of a raw Go error string.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// FormatNetworkError prints a friendly diagnosis for a failed request and
// returns a wrapped error for logging. context describes what the CLI was
// doing, e.g. "fetching the blog feed".
func FormatNetworkError(err error, context string) error {
	if err == nil {
		return nil
	}
	displayErrorMessage(err, context)
	return fmt.Errorf("network error: %w", err)
}

func displayErrorMessage(err error, context string) {
	switch {
	case isTimeoutError(err):
		pterm.Warning.Printfln("Connection timed out while %s.", context)
		pterm.Println("The server took too long to respond. Check your connection and try again.")
	case isDNSError(err):
		pterm.Warning.Printfln("Cannot resolve the server address while %s.", context)
		pterm.Println("Check your internet connection and the configured BLOG_API_URL.")
	case isConnectionRefusedError(err):
		pterm.Warning.Printfln("Connection refused while %s.", context)
		pterm.Println("The blog service is not accepting connections. Is the API running?")
	case isTLSError(err):
		pterm.Warning.Printfln("Secure connection failed while %s.", context)
		pterm.Println("Check your system clock and any network proxy settings.")
	default:
		pterm.Error.Printfln("Cannot reach the blog service while %s.", context)
		short := err.Error()
		if len(short) > 100 {
			short = short[:100] + "..."
		}
		pterm.Debug.Printfln("Technical details: %s", short)
	}
}

func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "timeout") || strings.Contains(s, "deadline exceeded")
}

func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

func isTLSError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "tls") ||
		strings.Contains(s, "certificate") ||
		strings.Contains(s, "handshake")
}
