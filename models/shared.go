package models

import "math"

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Page is a paginated listing response.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Paginate slices items for a 1-based page. Non-positive page or limit fall back to the defaults.
func Paginate[T any](items []T, page, limit, defaultLimit int) Page[T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	total := len(items)
	offset := (page - 1) * limit
	data := []T{}
	if offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		data = append(data, items[offset:end]...)
	}
	return Page[T]{
		Data: data,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}
}
