package refresh

import "fmt"

// intensifiers appended to free-text searches, selected by seed mod 6.
var intensifiers = []string{"latest", "trending", "recent", "popular", "important", "breaking"}

// sortOptions for category browsing, selected by seed mod 3.
var sortOptions = []string{"relevancy", "popularity", "publishedAt"}

// ModulateQuery derives the query, sort order and page size actually sent
// upstream from the base request plus an optional seed, so repeated
// refreshes of the same logical query return visibly different results.
// It is a pure function: a fixed seed always yields the same modulation,
// and a nil seed leaves everything untouched.
//
// With a free-text query the seed appends one intensifier word. With a
// pure category browse it instead picks a sort strategy and adds 0-2 extra
// items to the page size.
func ModulateQuery(query, sortBy string, pageSize int, seed *int) (string, string, int) {
	if seed == nil {
		return query, sortBy, pageSize
	}

	s := *seed
	if s < 0 {
		s = -s
	}

	if query != "" {
		return fmt.Sprintf("%s %s", query, intensifiers[s%len(intensifiers)]), sortBy, pageSize
	}

	return query, sortOptions[s%len(sortOptions)], pageSize + s%3
}
