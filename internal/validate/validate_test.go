package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlogForm(t *testing.T) {
	longContent := strings.Repeat("words ", 10)

	tests := []struct {
		name    string
		title   string
		content string
		fields  []string
	}{
		{name: "valid", title: "A Worthy Title", content: longContent, fields: nil},
		{name: "missing title", title: "", content: longContent, fields: []string{"title"}},
		{name: "short title", title: "Hey", content: longContent, fields: []string{"title"}},
		{name: "missing content", title: "A Worthy Title", content: "", fields: []string{"content"}},
		{name: "short content", title: "A Worthy Title", content: "too short", fields: []string{"content"}},
		{name: "both invalid", title: "", content: "", fields: []string{"title", "content"}},
		{name: "whitespace only", title: "   ", content: "  ", fields: []string{"title", "content"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := BlogForm(tt.title, tt.content)
			require.Len(t, errs, len(tt.fields))
			for _, f := range tt.fields {
				require.Contains(t, errs, f)
			}
			if len(tt.fields) == 0 {
				require.NoError(t, errs.Err())
			} else {
				require.Error(t, errs.Err())
			}
		})
	}
}

func TestLogin(t *testing.T) {
	require.Empty(t, Login("jane@example.com", "secret1"))
	require.Contains(t, Login("", "secret1"), "email")
	require.Contains(t, Login("not-an-email", "secret1"), "email")
	require.Contains(t, Login("jane@example.com", ""), "password")
}

func TestRegistration(t *testing.T) {
	require.Empty(t, Registration("jane", "jane@example.com", "secret1"))
	require.Contains(t, Registration("", "jane@example.com", "secret1"), "username")
	require.Contains(t, Registration("jane", "jane@", "secret1"), "email")
	require.Contains(t, Registration("jane", "jane@example.com", "12345"), "password")
}

func TestComment(t *testing.T) {
	require.Empty(t, Comment("nice post"))
	require.Contains(t, Comment("   "), "content")
}

func TestEmail(t *testing.T) {
	require.NoError(t, Email("jane@example.com"))
	require.Error(t, Email("jane"))
	require.Error(t, Email("jane@"))
}
