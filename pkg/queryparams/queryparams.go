package queryparams

import "math"

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
	DefaultOrderBy = "desc"
)

// ListParams liste sayfalarının sorgu parametreleri.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
	Status  string `query:"status"`
	Search  string `query:"q"`
	SortBy  string `query:"sort_by"`
	OrderBy string `query:"order_by"`
}

// PaginationMeta sayfalama bilgisi.
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

func (m PaginationMeta) HasPrev() bool { return m.CurrentPage > 1 }
func (m PaginationMeta) HasNext() bool { return m.CurrentPage < m.TotalPages }
func (m PaginationMeta) PrevPage() int { return m.CurrentPage - 1 }
func (m PaginationMeta) NextPage() int { return m.CurrentPage + 1 }

// PaginatedResult sayfalanmış veri ve meta bilgisi.
type PaginatedResult struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

func DefaultListParams(sortBy string) ListParams {
	return ListParams{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
		SortBy:  sortBy,
		OrderBy: DefaultOrderBy,
	}
}

// Validate sınır dışı değerleri varsayılanlara çeker.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = DefaultOrderBy
	}
}

func (p ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

func CalculateTotalPages(totalItems int64, perPage int) int {
	if perPage <= 0 || totalItems <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalItems) / float64(perPage)))
}

// PaginateSlice bellekteki sıralı bir listeyi sayfalar.
func PaginateSlice[T any](items []T, params ListParams) *PaginatedResult {
	params.Validate()
	total := int64(len(items))
	start := params.CalculateOffset()
	if start > len(items) {
		start = len(items)
	}
	end := start + params.PerPage
	if end > len(items) {
		end = len(items)
	}
	return &PaginatedResult{
		Data: items[start:end],
		Meta: PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  total,
			TotalPages:  CalculateTotalPages(total, params.PerPage),
		},
	}
}
