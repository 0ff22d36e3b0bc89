package domain

// TagAll is the sentinel pseudo-tag meaning "no filter applied". It is never
// stored on a video; the tags endpoint prepends it to the distinct tag list.
const TagAll = "All"

// DefaultPageSize matches the twelve-per-page video grid.
const DefaultPageSize = 12

// ListParams holds pagination and filter parameters for video listings.
type ListParams struct {
	Page  int    // 1-indexed page number
	Limit int    // items per page
	Tag   string // exact tag filter; "" or TagAll disables filtering
}

// Validate corrects out-of-bound values in place. This is bound correction,
// not validation.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Tag == TagAll {
		p.Tag = ""
	}
}

// Filtered reports whether a tag filter is in effect.
func (p *ListParams) Filtered() bool {
	return p.Tag != "" && p.Tag != TagAll
}

// Offset calculates the storage offset for pagination.
func (p *ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the derived paging envelope returned with every listing.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalVideos int  `json:"totalVideos"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

// NewPagination computes the envelope for a total row count and page/limit.
// Invariants: totalPages == ceil(total/limit), hasPrev == (page > 1),
// hasNext == (page < totalPages).
func NewPagination(total int64, page, limit int) Pagination {
	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalVideos: int(total),
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// VideoList holds one page of videos with its pagination envelope. Ordering is
// server-defined (day descending); consumers do not re-sort.
type VideoList struct {
	Videos     []*Video   `json:"videos"`
	Pagination Pagination `json:"pagination"`
}
