// Package catalog turns filter/sort/page selections into deterministic
// fetch requests and reconciles returned pages into pagination state.
package catalog

import (
	"sync"

	"handestiy-storefront/internal/domain"
)

// PageSize is fixed; the pager derives everything else from the total.
const PageSize = 12

const CategoryAll = "All"

// Categories the storefront sells, in display order.
var Categories = []string{"Accessories", "Pots", "Paintings"}

type Sort string

const (
	SortNewest    Sort = "newest"
	SortPriceAsc  Sort = "price_asc"
	SortPriceDesc Sort = "price_desc"
)

// ValidSort reports whether s is a supported sort key.
func ValidSort(s Sort) bool {
	switch s {
	case SortNewest, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

// Request describes one catalog fetch. Identical filter state always
// yields an identical request apart from Seq, which orders in-flight
// fetches.
type Request struct {
	Category string
	Sort     Sort
	Page     int
	PageSize int
	Seq      uint64
}

// Result carries a collaborator response back to the query. Seq must
// echo the Request that produced it.
type Result struct {
	Seq   uint64
	Items []domain.Product
	Total int
}

// Query holds the current filter selection and the last reconciled
// page. Filter changes invalidate the prior page context; responses to
// superseded requests are discarded by sequence comparison.
type Query struct {
	mu       sync.Mutex
	category string
	sort     Sort
	page     int
	seq      uint64
	items    []domain.Product
	total    int
}

func New() *Query {
	return &Query{category: CategoryAll, sort: SortNewest, page: 1}
}

// SetCategory selects a category ("" means All) and resets to page 1.
func (q *Query) SetCategory(category string) {
	if category == "" {
		category = CategoryAll
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.category = category
	q.page = 1
}

// SetSort selects a sort order and resets to page 1. Unknown keys fall
// back to newest.
func (q *Query) SetSort(sort Sort) {
	if !ValidSort(sort) {
		sort = SortNewest
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.sort = sort
	q.page = 1
}

// SetPage changes only the page, preserving category and sort. Pages
// below 1 clamp to 1; pages beyond the count are passed through, the
// collaborator legitimately answers them with an empty item list.
func (q *Query) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.page = page
}

// Build issues the next fetch request for the current filter state.
func (q *Query) Build() Request {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.seq++
	return Request{
		Category: q.category,
		Sort:     q.sort,
		Page:     q.page,
		PageSize: PageSize,
		Seq:      q.seq,
	}
}

// Apply reconciles a collaborator response. Responses whose sequence
// is not the latest issued one are stale and dropped; Apply reports
// whether the result was taken.
func (q *Query) Apply(res Result) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if res.Seq != q.seq {
		return false
	}
	q.items = res.Items
	if res.Total < 0 {
		res.Total = 0
	}
	q.total = res.Total
	return true
}

// PageCount is max(1, ceil(total/PageSize)); an empty catalog still
// has one page.
func (q *Query) PageCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return pageCount(q.total)
}

func pageCount(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + PageSize - 1) / PageSize
}

func (q *Query) Category() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.category
}

func (q *Query) SortKey() Sort {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.sort
}

func (q *Query) Page() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.page
}

func (q *Query) Items() []domain.Product {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := make([]domain.Product, len(q.items))
	copy(items, q.items)
	return items
}

func (q *Query) Total() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.total
}
