package helpers

import "testing"

func TestClampPaging(t *testing.T) {
	tests := []struct {
		name                         string
		page, limit                  int
		wantPage, wantLimit, wantOff int
	}{
		{"defaults", 1, 20, 1, 20, 0},
		{"limit below range clamps to lower bound", 1, 0, 1, 1, 0},
		{"negative limit clamps to lower bound", 1, -5, 1, 1, 0},
		{"limit above range", 1, 500, 1, 50, 0},
		{"limit at max", 1, 50, 1, 50, 0},
		{"page below range", 0, 10, 1, 10, 0},
		{"negative page", -3, 10, 1, 10, 0},
		{"offset math", 3, 20, 3, 20, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, off := ClampPaging(tt.page, tt.limit)
			if page != tt.wantPage || limit != tt.wantLimit || off != tt.wantOff {
				t.Errorf("ClampPaging(%d, %d) = (%d, %d, %d), want (%d, %d, %d)",
					tt.page, tt.limit, page, limit, off, tt.wantPage, tt.wantLimit, tt.wantOff)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{45, 20, 3},
		{100, 50, 2},
		{-1, 20, 0},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}
