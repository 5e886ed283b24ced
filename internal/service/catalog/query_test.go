package catalog

import (
	"testing"

	"handestiy-storefront/internal/domain"
)

func TestPageCount(t *testing.T) {
	cases := []struct {
		total int
		want  int
	}{
		{total: 0, want: 1},
		{total: 1, want: 1},
		{total: 12, want: 1},
		{total: 13, want: 2},
		{total: 25, want: 3},
		{total: 24, want: 2},
	}
	for _, tc := range cases {
		q := New()
		req := q.Build()
		q.Apply(Result{Seq: req.Seq, Total: tc.total})
		if got := q.PageCount(); got != tc.want {
			t.Fatalf("total=%d: expected %d pages, got %d", tc.total, tc.want, got)
		}
	}
}

func TestDefaults(t *testing.T) {
	q := New()
	req := q.Build()
	if req.Category != CategoryAll || req.Sort != SortNewest || req.Page != 1 || req.PageSize != PageSize {
		t.Fatalf("unexpected default request: %+v", req)
	}
}

func TestIdenticalFiltersBuildIdenticalRequests(t *testing.T) {
	q := New()
	q.SetCategory("Pots")
	q.SetSort(SortPriceAsc)
	q.SetPage(2)

	a := q.Build()
	b := q.Build()

	a.Seq, b.Seq = 0, 0
	if a != b {
		t.Fatalf("same filter produced different requests: %+v vs %+v", a, b)
	}
}

func TestCategoryChangeResetsPage(t *testing.T) {
	q := New()
	q.SetPage(3)
	q.SetCategory("Paintings")

	req := q.Build()
	if req.Page != 1 {
		t.Fatalf("category change must reset to page 1, got %d", req.Page)
	}
	if req.Category != "Paintings" {
		t.Fatalf("expected category Paintings, got %q", req.Category)
	}
}

func TestSortChangeResetsPage(t *testing.T) {
	q := New()
	q.SetPage(3)
	q.SetSort(SortPriceDesc)

	if req := q.Build(); req.Page != 1 {
		t.Fatalf("sort change must reset to page 1, got %d", req.Page)
	}
}

func TestPageChangePreservesFilter(t *testing.T) {
	q := New()
	q.SetCategory("Pots")
	q.SetSort(SortPriceAsc)
	q.SetPage(4)

	req := q.Build()
	if req.Category != "Pots" || req.Sort != SortPriceAsc || req.Page != 4 {
		t.Fatalf("page change disturbed the filter: %+v", req)
	}
}

func TestUnknownSortFallsBackToNewest(t *testing.T) {
	q := New()
	q.SetSort("price_sideways")
	if req := q.Build(); req.Sort != SortNewest {
		t.Fatalf("expected fallback to newest, got %q", req.Sort)
	}
}

func TestPageBeyondCountIsNotCorrected(t *testing.T) {
	q := New()
	req := q.Build()
	q.Apply(Result{Seq: req.Seq, Total: 25})

	q.SetPage(9)
	if req := q.Build(); req.Page != 9 {
		t.Fatalf("page beyond count must pass through, got %d", req.Page)
	}
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	q := New()

	first := q.Build()
	q.SetCategory("Pots")
	second := q.Build()

	fresh := []domain.Product{{ID: "p1", Category: "Pots"}}
	if ok := q.Apply(Result{Seq: second.Seq, Items: fresh, Total: 1}); !ok {
		t.Fatalf("current response must be applied")
	}
	if ok := q.Apply(Result{Seq: first.Seq, Items: []domain.Product{{ID: "stale"}}, Total: 99}); ok {
		t.Fatalf("stale response must be discarded")
	}

	items := q.Items()
	if len(items) != 1 || items[0].ID != "p1" {
		t.Fatalf("stale response overwrote state: %+v", items)
	}
	if q.Total() != 1 {
		t.Fatalf("stale total applied: %d", q.Total())
	}
}

func TestNegativeTotalClampsToZero(t *testing.T) {
	q := New()
	req := q.Build()
	q.Apply(Result{Seq: req.Seq, Total: -5})
	if q.Total() != 0 {
		t.Fatalf("expected total clamped to 0, got %d", q.Total())
	}
	if q.PageCount() != 1 {
		t.Fatalf("expected one page for empty catalog, got %d", q.PageCount())
	}
}
