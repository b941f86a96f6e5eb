package question

import "strconv"

// PageSize is the number of questions per page.
const PageSize = 10

// ParsePage reads the 1-based page query value. Absent, malformed and
// non-positive values all mean page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate returns items[(page-1)*PageSize, page*PageSize) clipped to the
// slice. A page past the end yields an empty, non-nil slice.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		page = 1
	}
	if page-1 > len(items)/PageSize {
		return []T{}
	}
	start := (page - 1) * PageSize
	if start >= len(items) {
		return []T{}
	}
	end := min(start+PageSize, len(items))
	return items[start:end]
}

// outOfRange reports whether an explicitly requested page landed past the
// data. Page 1 of an empty collection is not out of range.
func outOfRange(page int, pageLen int) bool {
	return page > 1 && pageLen == 0
}
