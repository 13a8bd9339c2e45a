package pagination

import (
	"strconv"
	"testing"
)

func TestParse_Defaults(t *testing.T) {
	cases := []struct {
		name        string
		page, per   string
		wantPage    int
		wantPerPage int
	}{
		{"empty", "", "", 1, 20},
		{"garbage", "abc", "x", 1, 20},
		{"zero and negative", "0", "-5", 1, 20},
		{"explicit", "3", "7", 3, 7},
		{"capped", "1", "500", 1, MaxPerPage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Parse(tc.page, tc.per)
			if p.Page != tc.wantPage || p.PerPage != tc.wantPerPage {
				t.Fatalf("Parse(%q, %q) = %+v, want page=%d per_page=%d",
					tc.page, tc.per, p, tc.wantPage, tc.wantPerPage)
			}
		})
	}
}

func TestPages(t *testing.T) {
	cases := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{3, 1, 3},
	}

	for _, tc := range cases {
		if got := Pages(tc.total, tc.perPage); got != tc.want {
			t.Errorf("Pages(%d, %d) = %d, want %d", tc.total, tc.perPage, got, tc.want)
		}
	}
}

func TestParams_Offset(t *testing.T) {
	p := Params{Page: 2, PerPage: 1}
	if p.Offset() != 1 {
		t.Fatalf("expected offset 1, got %d", p.Offset())
	}

	p = Params{Page: 1, PerPage: 20}
	if p.Offset() != 0 {
		t.Fatalf("expected offset 0, got %d", p.Offset())
	}
}

func TestParse_HugePageKeepsOffsetPositive(t *testing.T) {
	for _, raw := range []string{"461168601842738792", "99999999999999999999999"} {
		p := Parse(raw, "20")
		if p.Page != MaxPage {
			t.Fatalf("Parse(%q) page = %d, want %d", raw, p.Page, MaxPage)
		}
		if p.Offset() < 0 {
			t.Fatalf("Parse(%q) offset overflowed: %d", raw, p.Offset())
		}
	}

	p := Parse("5", strconv.Itoa(MaxPerPage))
	if p.Offset() != 4*MaxPerPage {
		t.Fatalf("unexpected offset %d", p.Offset())
	}
}

func TestMap_KeepsCounters(t *testing.T) {
	in := New([]int{1, 2}, 5, Params{Page: 2, PerPage: 2})
	out := Map(in, func(v int) string { return string(rune('a' + v)) })

	if out.Total != 5 || out.Pages != 3 || out.CurrentPage != 2 {
		t.Fatalf("counters not preserved: %+v", out)
	}
	if len(out.Items) != 2 || out.Items[0] != "b" {
		t.Fatalf("unexpected items: %v", out.Items)
	}
}
