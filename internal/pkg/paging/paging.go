package paging

import (
	"cmp"
	"math"
	"slices"

	"deliveryquery/internal/pkg/errs"
)

const (
	// DefaultCountOnPage is the page size used when WithCountOnPage is not given.
	DefaultCountOnPage = 100

	// DefaultPageNumber is the 1-based page used when WithPageNumber is not given.
	DefaultPageNumber = 1
)

type options struct {
	countOnPage int
	pageNumber  int
}

// Option customizes a Paging call.
type Option func(*options)

// WithCountOnPage sets the maximum number of elements on a page.
func WithCountOnPage(n int) Option {
	return func(o *options) {
		o.countOnPage = n
	}
}

// WithPageNumber selects the 1-based page to return.
func WithPageNumber(n int) Option {
	return func(o *options) {
		o.pageNumber = n
	}
}

// Validate checks page arguments. Both failures match errs.ErrInvalidArgument.
func Validate(countOnPage int, pageNumber int) error {
	if pageNumber < 1 {
		return errs.NewValueIsOutOfRangeError("pageNumber", pageNumber, 1, math.MaxInt)
	}
	if countOnPage <= 0 {
		return errs.NewValueIsOutOfRangeError("countOnPage", countOnPage, 1, math.MaxInt)
	}
	return nil
}

// Paging returns one page of elements: filtered, stably sorted by ordering
// ascending, then sliced. A nil filter keeps every element. A page past the end
// of the data is an empty, non-nil slice.
func Paging[E any, K cmp.Ordered](
	elements []E,
	ordering func(E) K,
	filter func(E) bool,
	opts ...Option,
) ([]E, error) {
	return PagingFunc(elements, ordering, cmp.Compare[K], filter, opts...)
}

// PagingFunc is Paging for ordering keys that are not cmp.Ordered. compare must
// return a negative number when a sorts before b, zero when they are equal and
// a positive number otherwise.
func PagingFunc[E any, K any](
	elements []E,
	ordering func(E) K,
	compare func(a, b K) int,
	filter func(E) bool,
	opts ...Option,
) ([]E, error) {
	o := options{
		countOnPage: DefaultCountOnPage,
		pageNumber:  DefaultPageNumber,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := Validate(o.countOnPage, o.pageNumber); err != nil {
		return nil, err
	}

	kept := Filter(elements, filter)
	slices.SortStableFunc(kept, func(a, b E) int {
		return compare(ordering(a), ordering(b))
	})

	offset := (o.pageNumber - 1) * o.countOnPage
	// Guard against overflow for absurd page numbers as well as plain overrun.
	if o.pageNumber-1 > len(kept)/o.countOnPage || offset >= len(kept) {
		return make([]E, 0), nil
	}

	end := min(offset+o.countOnPage, len(kept))
	page := make([]E, end-offset)
	copy(page, kept[offset:end])

	return page, nil
}

// Filter returns a new slice with the elements accepted by filter, in input
// order. A nil filter copies every element.
func Filter[E any](elements []E, filter func(E) bool) []E {
	kept := make([]E, 0, len(elements))
	for _, e := range elements {
		if filter == nil || filter(e) {
			kept = append(kept, e)
		}
	}
	return kept
}

// Total counts the elements accepted by filter; it is the population a page
// is cut from.
func Total[E any](elements []E, filter func(E) bool) int {
	if filter == nil {
		return len(elements)
	}
	n := 0
	for _, e := range elements {
		if filter(e) {
			n++
		}
	}
	return n
}

// PageCount is the number of non-empty pages for total elements.
func PageCount(total int, countOnPage int) int {
	if total <= 0 || countOnPage <= 0 {
		return 0
	}
	return (total + countOnPage - 1) / countOnPage
}
