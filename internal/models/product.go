package models

import (
	"time"

	"github.com/lib/pq"
)

// ProductCategory enumerates the fixed catalog categories. Category names are
// stored in Spanish (the shop's primary language); English labels are attached
// for the bilingual surface.
type ProductCategory string

const (
	CategoryRoperos       ProductCategory = "Roperos"
	CategoryTrinchantes   ProductCategory = "Trinchantes"
	CategoryLibreros      ProductCategory = "Libreros"
	CategoryBuros         ProductCategory = "Burós"
	CategoryCunas         ProductCategory = "Cunas"
	CategoryMesas         ProductCategory = "Mesas"
	CategoryPersonalizado ProductCategory = "Personalizado"
)

// ProductCategories lists every valid category in display order.
var ProductCategories = []ProductCategory{
	CategoryRoperos,
	CategoryTrinchantes,
	CategoryLibreros,
	CategoryBuros,
	CategoryCunas,
	CategoryMesas,
	CategoryPersonalizado,
}

// categoryLabelsEN maps each category to its English display label.
var categoryLabelsEN = map[ProductCategory]string{
	CategoryRoperos:       "Wardrobes",
	CategoryTrinchantes:   "Sideboards",
	CategoryLibreros:      "Bookshelves",
	CategoryBuros:         "Nightstands",
	CategoryCunas:         "Cribs",
	CategoryMesas:         "Tables",
	CategoryPersonalizado: "Custom",
}

// IsValidCategory reports whether s is one of the enumerated categories.
func IsValidCategory(s string) bool {
	_, ok := categoryLabelsEN[ProductCategory(s)]
	return ok
}

// CategoryLabelEN returns the English label for a category, or the category
// itself when unknown.
func CategoryLabelEN(c ProductCategory) string {
	if label, ok := categoryLabelsEN[c]; ok {
		return label
	}
	return string(c)
}

// Product represents a catalog entry. English fields are optional and fall
// back to the Spanish ones at the presentation layer. The active flag is the
// soft-delete marker: inactive products never appear on the public surface.
type Product struct {
	ID                 string          `db:"id" json:"id"`
	Slug               string          `db:"slug" json:"slug"`
	Name               string          `db:"name" json:"name"`
	NameEN             *string         `db:"name_en" json:"nameEn,omitempty"`
	Category           ProductCategory `db:"category" json:"category"`
	ShortDescription   string          `db:"short_description" json:"shortDescription"`
	ShortDescriptionEN *string         `db:"short_description_en" json:"shortDescriptionEn,omitempty"`
	ImageURL           *string         `db:"image_url" json:"imageUrl,omitempty"`
	ImageAlt           *string         `db:"image_alt" json:"imageAlt,omitempty"`
	ImageAltEN         *string         `db:"image_alt_en" json:"imageAltEn,omitempty"`
	Features           pq.StringArray  `db:"features" json:"features,omitempty"`
	Featured           bool            `db:"featured" json:"featured"`
	Active             bool            `db:"active" json:"active"`
	CreatedAt          time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time       `db:"updated_at" json:"updatedAt"`
}

// DisplayName returns the English name when requested and present, otherwise
// the Spanish name.
func (p *Product) DisplayName(lang string) string {
	if lang == "en" && p.NameEN != nil && *p.NameEN != "" {
		return *p.NameEN
	}
	return p.Name
}
