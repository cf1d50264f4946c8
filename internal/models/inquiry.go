package models

import "time"

// InquiryStatus enumerates the triage states of a contact-form submission.
// Transitions are deliberately unrestricted: the repository accepts any of the
// three values regardless of the current one.
type InquiryStatus string

const (
	InquiryStatusNew      InquiryStatus = "new"
	InquiryStatusReviewed InquiryStatus = "reviewed"
	InquiryStatusArchived InquiryStatus = "archived"
)

// DefaultInquirySource identifies the originating channel when the caller
// does not supply one.
const DefaultInquirySource = "website"

// IsValidInquiryStatus reports whether s is one of the enumerated statuses.
func IsValidInquiryStatus(s string) bool {
	switch InquiryStatus(s) {
	case InquiryStatusNew, InquiryStatusReviewed, InquiryStatusArchived:
		return true
	}
	return false
}

// Inquiry represents a contact-form submission awaiting triage.
type Inquiry struct {
	ID              string        `db:"id" json:"id"`
	Name            string        `db:"name" json:"name"`
	Contact         string        `db:"contact" json:"contact"`
	ProductCategory *string       `db:"product_category" json:"productCategory,omitempty"`
	Message         string        `db:"message" json:"message"`
	Source          string        `db:"source" json:"source"`
	Status          InquiryStatus `db:"status" json:"status"`
	CreatedAt       time.Time     `db:"created_at" json:"createdAt"`
}
