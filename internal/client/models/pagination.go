package models

// DefaultPageWindow is the number of page buttons shown at once.
const DefaultPageWindow = 5

// PageWindow returns the page numbers to offer around current, at most size
// of them, shifted so the window never runs past either end. It returns nil
// when there is nothing to paginate.
func PageWindow(current, total, size int) []int {
	if total <= 1 || size <= 0 {
		return nil
	}

	start := max(1, current-size/2)
	end := min(total, start+size-1)
	if end-start+1 < size {
		start = max(1, end-size+1)
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}
