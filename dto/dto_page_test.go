package dto

import "testing"

func TestParsePageQueryDefaults(t *testing.T) {
	cases := []struct {
		page, limit         string
		wantPage, wantLimit int
	}{
		{"", "", 1, 10},
		{"3", "25", 3, 25},
		{"0", "0", 1, 10},
		{"-2", "-5", 1, 10},
		{"abc", "xyz", 1, 10},
	}
	for _, tc := range cases {
		q := ParsePageQuery("", tc.page, tc.limit)
		if q.Page != tc.wantPage || q.Limit != tc.wantLimit {
			t.Errorf("ParsePageQuery(%q, %q) = page %d limit %d, want %d/%d",
				tc.page, tc.limit, q.Page, q.Limit, tc.wantPage, tc.wantLimit)
		}
	}
}

func TestSkip(t *testing.T) {
	q := PageQuery{Page: 3, Limit: 20}
	if got := q.Skip(); got != 40 {
		t.Errorf("Skip() = %d, want 40", got)
	}
}

func TestNewPaginationCeil(t *testing.T) {
	cases := []struct {
		total     int64
		limit     int
		wantPages int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{100, 10, 10},
		{101, 10, 11},
	}
	for _, tc := range cases {
		p := NewPagination(tc.total, PageQuery{Page: 1, Limit: tc.limit})
		if p.Pages != tc.wantPages {
			t.Errorf("NewPagination(total=%d, limit=%d).Pages = %d, want %d",
				tc.total, tc.limit, p.Pages, tc.wantPages)
		}
		if p.Total != tc.total {
			t.Errorf("Total = %d, want %d", p.Total, tc.total)
		}
	}
}
