package entity

import (
	"math"
	"time"
)

const (
	// DefaultPageLimit is used when a request does not specify a page size.
	DefaultPageLimit = 50
	// MaxPageLimit caps the page size a caller may request.
	MaxPageLimit = 500
)

// SortOrder is the direction of a listing sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder defaults to descending for anything but "asc".
func ParseSortOrder(s string) SortOrder {
	if s == string(SortAsc) {
		return SortAsc
	}

	return SortDesc
}

// DonationFilter is the optional filter set shared by donation and donor listings.
type DonationFilter struct {
	StartDate      *time.Time // Inclusive.
	EndDate        *time.Time // Exclusive.
	MinAmount      *float64
	MaxAmount      *float64
	Donor          string // Free text matched against donor name and email.
	IsRecurring    *bool
	ReceiptSent    *bool
	DonationType   string
	OrganizationID string // Sub-filter within the merchant scope.
}

// LegacyApplicable reports whether legacy log rows can satisfy the filter at all.
// Legacy rows are always one-time, receipt-sent and untyped.
func (f DonationFilter) LegacyApplicable() bool {
	if f.IsRecurring != nil && *f.IsRecurring {
		return false
	}
	if f.ReceiptSent != nil && !*f.ReceiptSent {
		return false
	}

	return f.DonationType == ""
}

// Applied returns the non-empty filters, keyed by their request parameter names.
func (f DonationFilter) Applied() map[string]any {
	applied := map[string]any{}
	if f.StartDate != nil {
		applied["start_date"] = f.StartDate.Format(time.RFC3339)
	}
	if f.EndDate != nil {
		applied["end_date"] = f.EndDate.Format(time.RFC3339)
	}
	if f.MinAmount != nil {
		applied["min_amount"] = *f.MinAmount
	}
	if f.MaxAmount != nil {
		applied["max_amount"] = *f.MaxAmount
	}
	if f.Donor != "" {
		applied["donor"] = f.Donor
	}
	if f.IsRecurring != nil {
		applied["is_recurring"] = *f.IsRecurring
	}
	if f.ReceiptSent != nil {
		applied["receipt_sent"] = *f.ReceiptSent
	}
	if f.DonationType != "" {
		applied["donation_type"] = f.DonationType
	}
	if f.OrganizationID != "" {
		applied["organization_id"] = f.OrganizationID
	}

	return applied
}

// PageRequest is a 1-based offset/limit page selector.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize clamps the page request into its valid range.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}

	return p
}

// Offset returns the zero-based index of the first row on the page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination describes a returned page.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalCount int  `json:"total_count"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewPagination builds pagination metadata for a normalized page request.
func NewPagination(p PageRequest, total int) Pagination {
	pages := int(math.Ceil(float64(total) / float64(p.Limit)))

	return Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		TotalCount: total,
		TotalPages: pages,
		HasNext:    p.Page < pages,
		HasPrev:    p.Page > 1,
	}
}

// Paginate slices items for the page. Out-of-range pages yield an empty slice.
func Paginate[T any](items []T, p PageRequest) []T {
	start := p.Offset()
	if start >= len(items) {
		return []T{}
	}

	end := min(start+p.Limit, len(items))

	return items[start:end]
}
