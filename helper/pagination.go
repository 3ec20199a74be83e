package helper

import "strconv"

// SortKey is a single-field sort directive. Direction follows the store
// convention: 1 ascending, -1 descending.
type SortKey struct {
	Field     string
	Direction int
}

// Allow-lists for the sortBy query parameter, per listing.
var (
	MenuSortKeys = map[string]SortKey{
		"newest":       {Field: "created_at", Direction: -1},
		"oldest":       {Field: "created_at", Direction: 1},
		"lowestprice":  {Field: "price", Direction: 1},
		"highestprice": {Field: "price", Direction: -1},
	}
	ReviewSortKeys = map[string]SortKey{
		"newest":        {Field: "created_at", Direction: -1},
		"oldest":        {Field: "created_at", Direction: 1},
		"lowestrating":  {Field: "rating", Direction: 1},
		"highestrating": {Field: "rating", Direction: -1},
	}
)

type Pagination struct {
	Limit int
	Page  int
	Skip  int
	Sort  *SortKey
}

// ParsePagination resolves the raw limit/page query strings. Empty values
// fall back to "10" and "1".
func ParsePagination(rawLimit, rawPage string) (*Pagination, *AppError) {
	if rawLimit == "" {
		rawLimit = "10"
	}
	if rawPage == "" {
		rawPage = "1"
	}

	limit, err := strconv.Atoi(rawLimit)
	if err != nil {
		return nil, NewInvalidArgument("limit query is not a number")
	}
	page, err := strconv.Atoi(rawPage)
	if err != nil {
		return nil, NewInvalidArgument("page query is not a number")
	}

	return &Pagination{
		Limit: limit,
		Page:  page,
		Skip:  limit * (page - 1),
	}, nil
}

// WithSort resolves the raw sortBy query string against a closed allow-list.
// Empty input defaults to "newest".
func (p *Pagination) WithSort(rawSortBy string, allowed map[string]SortKey) *AppError {
	if rawSortBy == "" {
		rawSortBy = "newest"
	}
	key, ok := allowed[rawSortBy]
	if !ok {
		return NewInvalidArgument("sortBy query is not valid")
	}
	p.Sort = &key
	return nil
}

// TotalPages is ceil(total / limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// ExceedsTotal reports whether the requested page lies beyond the last page.
// Page 1 is always reachable, even over an empty result set.
func (p *Pagination) ExceedsTotal(totalPages int) bool {
	return p.Page != 1 && p.Page > totalPages
}
