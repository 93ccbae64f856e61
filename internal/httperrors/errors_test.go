// Copyright (c) 2025 Blogctl
// Licensed under the MIT License. See LICENSE file in the project root for details.

package httperrors

import (
	"errors"
	"net"
	"syscall"
	"testing"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want func(error) bool
	}{
		{name: "timeout", err: timeoutErr{}, want: isTimeoutError},
		{name: "deadline by message", err: errors.New("context deadline exceeded"), want: isTimeoutError},
		{name: "dns", err: &net.DNSError{Err: "no such host", Name: "api.example.com"}, want: isDNSError},
		{name: "refused", err: &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, want: isConnectionRefusedError},
		{name: "tls", err: errors.New("tls: handshake failure"), want: isTLSError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.want(tt.err) {
				t.Errorf("expected %v to be classified as %s", tt.err, tt.name)
			}
		})
	}
}

func TestFormatNetworkError(t *testing.T) {
	if FormatNetworkError(nil, "fetching the feed") != nil {
		t.Error("nil error should stay nil")
	}

	orig := errors.New("connection reset")
	wrapped := FormatNetworkError(orig, "fetching the feed")
	if !errors.Is(wrapped, orig) {
		t.Error("wrapped error should unwrap to the original")
	}
}
