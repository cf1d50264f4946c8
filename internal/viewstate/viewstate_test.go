package viewstate

import (
	"testing"

	"github.com/mueblessanmiguel/catalogo_api/internal/models"
)

func strPtr(s string) *string { return &s }

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Ropero Clásico", NameEN: strPtr("Classic Wardrobe"), Category: models.CategoryRoperos, Active: true},
		{ID: "2", Name: "Mesa de Comedor", Category: models.CategoryMesas, Active: true},
		{ID: "3", Name: "Ropero Moderno", Category: models.CategoryRoperos, Active: false},
		{ID: "4", Name: "Cuna Infantil", Category: models.CategoryCunas, Active: true},
	}
}

func TestFilterProductsByCategory(t *testing.T) {
	products := sampleProducts()

	got := FilterProductsByCategory(products, "Roperos")
	if len(got) != 2 {
		t.Fatalf("got %d products, want 2", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("source order not preserved: %s, %s", got[0].ID, got[1].ID)
	}

	for _, all := range []string{"", "all", "Todos", "TODOS"} {
		if got := FilterProductsByCategory(products, all); len(got) != len(products) {
			t.Errorf("filter %q should be identity, got %d products", all, len(got))
		}
	}

	if got := FilterProductsByCategory(products, "Sillas"); len(got) != 0 {
		t.Errorf("unknown category should match nothing, got %d", len(got))
	}
}

func TestFilterProductsByActive(t *testing.T) {
	products := sampleProducts()

	if got := FilterProductsByActive(products, nil); len(got) != 4 {
		t.Errorf("nil filter should be identity, got %d", len(got))
	}

	active := true
	if got := FilterProductsByActive(products, &active); len(got) != 3 {
		t.Errorf("got %d active products, want 3", len(got))
	}

	inactive := false
	got := FilterProductsByActive(products, &inactive)
	if len(got) != 1 || got[0].ID != "3" {
		t.Errorf("expected only the inactive product, got %v", got)
	}
}

func TestSearchProducts(t *testing.T) {
	products := sampleProducts()

	if got := SearchProducts(products, ""); len(got) != 4 {
		t.Errorf("empty query should be identity, got %d", len(got))
	}

	got := SearchProducts(products, "ropero")
	if len(got) != 2 {
		t.Errorf("got %d matches for 'ropero', want 2", len(got))
	}

	// English names match too.
	got = SearchProducts(products, "wardrobe")
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("expected the bilingual product, got %v", got)
	}

	if got := SearchProducts(products, "  MESA "); len(got) != 1 {
		t.Errorf("query should be trimmed and case-insensitive, got %d", len(got))
	}
}

func sampleInquiries() []models.Inquiry {
	return []models.Inquiry{
		{ID: "a", Status: models.InquiryStatusNew},
		{ID: "b", Status: models.InquiryStatusReviewed},
		{ID: "c", Status: models.InquiryStatusNew},
		{ID: "d", Status: models.InquiryStatusArchived},
	}
}

func TestFilterInquiriesByStatus(t *testing.T) {
	inquiries := sampleInquiries()

	if got := FilterInquiriesByStatus(inquiries, "all"); len(got) != 4 {
		t.Errorf("all tab should be identity, got %d", len(got))
	}
	got := FilterInquiriesByStatus(inquiries, "new")
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("unexpected new-tab result: %v", got)
	}
}

func TestCountInquiriesByStatus(t *testing.T) {
	counts := CountInquiriesByStatus(sampleInquiries())
	want := InquiryStatusCounts{All: 4, New: 2, Reviewed: 1, Archived: 1}
	if counts != want {
		t.Errorf("counts = %+v, want %+v", counts, want)
	}

	if got := CountInquiriesByStatus(nil); got.All != 0 {
		t.Errorf("empty list should count zero, got %+v", got)
	}
}

func TestCountsAgreeWithFilter(t *testing.T) {
	inquiries := sampleInquiries()
	counts := CountInquiriesByStatus(inquiries)

	for status, want := range map[string]int{"new": counts.New, "reviewed": counts.Reviewed, "archived": counts.Archived} {
		if got := len(FilterInquiriesByStatus(inquiries, status)); got != want {
			t.Errorf("tab %q: filter found %d, count says %d", status, got, want)
		}
	}
}

func TestPatchProductByID(t *testing.T) {
	products := sampleProducts()
	updated := products[1]
	updated.Name = "Mesa Redonda"

	got := PatchProductByID(products, updated)
	if got[1].Name != "Mesa Redonda" {
		t.Errorf("patch not applied: %q", got[1].Name)
	}
	if products[1].Name != "Mesa de Comedor" {
		t.Error("source list must not be mutated")
	}

	// Unknown id leaves the list unchanged.
	got = PatchProductByID(products, models.Product{ID: "missing", Name: "x"})
	for i := range products {
		if got[i].ID != products[i].ID || got[i].Name != products[i].Name {
			t.Errorf("entry %d changed for an absent id", i)
		}
	}
}

func TestPatchInquiryByID(t *testing.T) {
	inquiries := sampleInquiries()
	updated := inquiries[0]
	updated.Status = models.InquiryStatusReviewed

	got := PatchInquiryByID(inquiries, updated)
	if got[0].Status != models.InquiryStatusReviewed {
		t.Errorf("patch not applied: %q", got[0].Status)
	}
	if inquiries[0].Status != models.InquiryStatusNew {
		t.Error("source list must not be mutated")
	}
}
