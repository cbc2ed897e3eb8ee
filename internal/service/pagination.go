package service

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// pageCount returns ceil(total/limit). An empty dataset has zero pages.
func pageCount(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}

	return int((total + int64(limit) - 1) / int64(limit))
}

func skipFor(page, limit int) int64 {
	return int64(page-1) * int64(limit)
}
