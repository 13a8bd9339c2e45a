package pagination

import (
	"errors"
	"math"
	"strconv"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100

	// MaxPage keeps Offset inside int for any accepted per_page.
	MaxPage = math.MaxInt / MaxPerPage
)

type Params struct {
	Page    int
	PerPage int
}

// Page is one page of a listing plus the counters clients need to walk it.
type Page[T any] struct {
	Items       []T
	Total       int64
	Pages       int
	CurrentPage int
	PerPage     int
}

// Parse reads raw query values. Missing, malformed or non-positive values
// fall back to the defaults; page is capped at MaxPage and per_page at
// MaxPerPage.
func Parse(pageStr, perPageStr string) Params {
	page, err := strconv.Atoi(pageStr)
	if errors.Is(err, strconv.ErrRange) && page > 0 {
		page, err = MaxPage, nil
	}
	if err != nil || page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}

	perPage, err := strconv.Atoi(perPageStr)
	if err != nil || perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	return Params{Page: page, PerPage: perPage}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p Params) Limit() int {
	return p.PerPage
}

// Pages returns ceil(total/perPage), 0 for an empty listing.
func Pages(total int64, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func New[T any](items []T, total int64, p Params) Page[T] {
	return Page[T]{
		Items:       items,
		Total:       total,
		Pages:       Pages(total, p.PerPage),
		CurrentPage: p.Page,
		PerPage:     p.PerPage,
	}
}

// Map converts the items of a page, keeping the counters.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Items))
	for _, item := range p.Items {
		out = append(out, fn(item))
	}
	return Page[U]{
		Items:       out,
		Total:       p.Total,
		Pages:       p.Pages,
		CurrentPage: p.CurrentPage,
		PerPage:     p.PerPage,
	}
}
