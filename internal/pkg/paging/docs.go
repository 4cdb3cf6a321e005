// Package paging provides offset-based pagination over in-memory slices.
//
// A page is always computed in the same order:
//
//  1. filter  - keep only the elements accepted by the predicate (nil keeps all)
//  2. order   - stable sort of the kept elements by an ordering key, ascending
//  3. slice   - skip (pageNumber-1)*countOnPage elements and take countOnPage
//
// The package is generic over the element type and the ordering key type and
// knows nothing about the domain. Paging covers keys that satisfy cmp.Ordered;
// PagingFunc accepts any key together with a comparison function, which is how
// time.Time or composite keys are paged.
//
// Example:
//
//	page, err := paging.Paging(orders,
//	    func(o Order) string { return o.Number },
//	    func(o Order) bool { return o.Paid },
//	    paging.WithCountOnPage(20),
//	    paging.WithPageNumber(2),
//	)
//	if errors.Is(err, errs.ErrInvalidArgument) {
//	    // pageNumber < 1 or countOnPage <= 0
//	}
//
// Input slices are never modified; every call returns a freshly allocated slice.
package paging
