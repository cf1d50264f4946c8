// Package viewstate holds the pure derived-state transforms behind the
// catalog and admin list views: category and free-text filters, status tabs
// with their counts, and the optimistic patch reducers applied after a
// successful mutation. Everything here operates on an already-fetched
// in-memory slice and never touches the database.
package viewstate

import (
	"strings"

	"github.com/mueblessanmiguel/catalogo_api/internal/models"
)

// isAllFilter reports whether the value means "no filter" for a tab or
// dropdown ("", "all" and the Spanish label "todos" are all accepted).
func isAllFilter(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "all", "todos":
		return true
	}
	return false
}

// FilterProductsByCategory keeps products matching the category exactly.
// An "all" selection is the identity filter. Source order is preserved.
func FilterProductsByCategory(products []models.Product, category string) []models.Product {
	if isAllFilter(category) {
		return products
	}
	var out []models.Product
	for _, p := range products {
		if string(p.Category) == category {
			out = append(out, p)
		}
	}
	return out
}

// FilterProductsByActive keeps products whose active flag matches. A nil
// filter is the identity.
func FilterProductsByActive(products []models.Product, active *bool) []models.Product {
	if active == nil {
		return products
	}
	var out []models.Product
	for _, p := range products {
		if p.Active == *active {
			out = append(out, p)
		}
	}
	return out
}

// SearchProducts keeps products whose Spanish or English name contains the
// query, case-insensitively. An empty query is the identity filter.
func SearchProducts(products []models.Product, query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}
	var out []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
			continue
		}
		if p.NameEN != nil && strings.Contains(strings.ToLower(*p.NameEN), q) {
			out = append(out, p)
		}
	}
	return out
}

// FilterInquiriesByStatus keeps inquiries with the given status. The "all"
// tab is the identity filter.
func FilterInquiriesByStatus(inquiries []models.Inquiry, status string) []models.Inquiry {
	if isAllFilter(status) {
		return inquiries
	}
	var out []models.Inquiry
	for _, i := range inquiries {
		if string(i.Status) == status {
			out = append(out, i)
		}
	}
	return out
}

// InquiryStatusCounts carries the per-tab badge counts. The counts are always
// derived from the same source list as the filtered results, so the two can
// never disagree.
type InquiryStatusCounts struct {
	All      int `json:"all"`
	New      int `json:"new"`
	Reviewed int `json:"reviewed"`
	Archived int `json:"archived"`
}

// CountInquiriesByStatus tallies inquiries per status tab.
func CountInquiriesByStatus(inquiries []models.Inquiry) InquiryStatusCounts {
	counts := InquiryStatusCounts{All: len(inquiries)}
	for _, i := range inquiries {
		switch i.Status {
		case models.InquiryStatusNew:
			counts.New++
		case models.InquiryStatusReviewed:
			counts.Reviewed++
		case models.InquiryStatusArchived:
			counts.Archived++
		}
	}
	return counts
}

// PatchProductByID returns a new list with the entry matching updated.ID
// replaced. If the id is absent the list is returned unchanged. This is the
// optimistic-update reducer applied after a confirmed mutation; no rollback
// exists because nothing is patched before confirmation.
func PatchProductByID(products []models.Product, updated models.Product) []models.Product {
	out := make([]models.Product, len(products))
	for i, p := range products {
		if p.ID == updated.ID {
			out[i] = updated
		} else {
			out[i] = p
		}
	}
	return out
}

// PatchInquiryByID returns a new list with the entry matching updated.ID
// replaced, leaving the list unchanged when the id is absent.
func PatchInquiryByID(inquiries []models.Inquiry, updated models.Inquiry) []models.Inquiry {
	out := make([]models.Inquiry, len(inquiries))
	for i, q := range inquiries {
		if q.ID == updated.ID {
			out[i] = updated
		} else {
			out[i] = q
		}
	}
	return out
}
