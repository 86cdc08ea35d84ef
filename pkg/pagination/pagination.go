// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides the index arithmetic behind "show more" paging.
//
// # Overview
//
// Pages are 1-indexed and cumulative: after page N has been revealed, the
// client holds items [0, N*size). Every helper clips against the total so the
// last page may be partial and nothing ever goes negative.
package pagination

const (
	// DefaultPageSize is the number of items revealed per page if not configured.
	DefaultPageSize = 36
	// MaxPageSize is the upper bound accepted from configuration.
	MaxPageSize = 500
	// FirstPage is the cursor value after every reset.
	FirstPage = 1
)

// Window returns the half-open range [start, end) newly revealed by page,
// clipped to total. A page beyond the end yields an empty range at total.
func Window(page, size, total int) (start, end int) {
	if page < FirstPage || size <= 0 {
		return 0, 0
	}

	start = min((page-1)*size, total)
	end = min(page*size, total)
	return start, end
}

// Shown returns how many items are revealed once page pages have been loaded.
func Shown(page, size, total int) int {
	if page < FirstPage || size <= 0 {
		return 0
	}
	return min(page*size, total)
}

// Remaining returns max(0, total - page*size).
func Remaining(page, size, total int) int {
	return max(0, total-Shown(page, size, total))
}

// Meta is the pagination metadata included in API page responses.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Shown      int  `json:"shown"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	Remaining  int  `json:"remaining"`
	Empty      bool `json:"empty"`
}

// NewMeta constructs pagination metadata for a response.
//
// It derives TotalPages, Shown and Remaining from the cursor position.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Shown:      Shown(page, limit, total),
		Total:      total,
		TotalPages: totalPages,
		Remaining:  Remaining(page, limit, total),
		Empty:      total == 0,
	}
}
