package table

// Paginate slices one page out of a record list. The requested page is
// clamped into [1, totalPages] rather than rejected, and totalPages is at
// least 1 even for an empty list, so CurrentPage always satisfies
// 1 <= CurrentPage <= max(totalPages, 1).
func Paginate(records []Record, page, pageSize int) PageResult {
	if pageSize < 1 {
		pageSize = 1
	}

	totalItems := len(records)
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return PageResult{
		Items:       records[start:end],
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		PageSize:    pageSize,
	}
}
