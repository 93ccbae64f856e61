package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		count    int
		pageSize int
		want     Info
	}{
		{
			name: "last partial page", page: 3, count: 23, pageSize: 9,
			want: Info{Page: 3, TotalPages: 3, Total: 23, Start: 19, End: 23, HasNext: false, HasPrevious: true},
		},
		{
			name: "first page", page: 1, count: 23, pageSize: 9,
			want: Info{Page: 1, TotalPages: 3, Total: 23, Start: 1, End: 9, HasNext: true, HasPrevious: false},
		},
		{
			name: "middle page", page: 2, count: 23, pageSize: 9,
			want: Info{Page: 2, TotalPages: 3, Total: 23, Start: 10, End: 18, HasNext: true, HasPrevious: true},
		},
		{
			name: "exact multiple", page: 2, count: 18, pageSize: 9,
			want: Info{Page: 2, TotalPages: 2, Total: 18, Start: 10, End: 18, HasNext: false, HasPrevious: true},
		},
		{
			name: "single page", page: 1, count: 4, pageSize: 9,
			want: Info{Page: 1, TotalPages: 1, Total: 4, Start: 1, End: 4, HasNext: false, HasPrevious: false},
		},
		{
			name: "empty collection", page: 1, count: 0, pageSize: 9,
			want: Info{Page: 1, TotalPages: 1, Total: 0, Start: 0, End: 0, HasNext: false, HasPrevious: false},
		},
		{
			name: "page clamped to one", page: 0, count: 5, pageSize: 9,
			want: Info{Page: 1, TotalPages: 1, Total: 5, Start: 1, End: 5, HasNext: false, HasPrevious: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Compute(tt.page, tt.count, tt.pageSize))
		})
	}
}
