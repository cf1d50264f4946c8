package service

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/mueblessanmiguel/catalogo_api/internal/models"
	"github.com/mueblessanmiguel/catalogo_api/internal/utils"
)

type mockProductStore struct {
	products   map[string]*models.Product
	bySlug     map[string]*models.Product
	setActive  []string
	deleted    []string
	lastUpdate *models.Product
}

func newMockProductStore() *mockProductStore {
	return &mockProductStore{
		products: make(map[string]*models.Product),
		bySlug:   make(map[string]*models.Product),
	}
}

func (m *mockProductStore) add(p *models.Product) {
	m.products[p.ID] = p
	m.bySlug[p.Slug] = p
}

func (m *mockProductStore) ListAdmin() ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProductStore) GetByID(id string) (*models.Product, error) {
	if p, ok := m.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockProductStore) GetAdminBySlug(slug string) (*models.Product, error) {
	if p, ok := m.bySlug[slug]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockProductStore) Create(p *models.Product) error {
	p.ID = "created-id"
	m.add(p)
	return nil
}

func (m *mockProductStore) Update(p *models.Product) error {
	m.lastUpdate = p
	m.add(p)
	return nil
}

func (m *mockProductStore) SetActive(id string, active bool) error {
	m.setActive = append(m.setActive, id)
	if p, ok := m.products[id]; ok {
		p.Active = active
	}
	return nil
}

func (m *mockProductStore) Delete(id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func TestCreateDerivesSlugOnlyWhenBlank(t *testing.T) {
	store := newMockProductStore()
	svc := NewProductAdminService(store)

	got, err := svc.Create(&CreateProductRequest{
		Name:             "Ropero Clásico",
		Category:         "Roperos",
		ShortDescription: "Madera de cedro",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if got.Slug != "ropero-clasico" {
		t.Errorf("Slug = %q, want ropero-clasico", got.Slug)
	}
	if !got.Active {
		t.Error("active must default to true")
	}
}

func TestCreateKeepsExplicitSlug(t *testing.T) {
	store := newMockProductStore()
	svc := NewProductAdminService(store)

	got, err := svc.Create(&CreateProductRequest{
		Name:             "Ropero Clásico",
		Slug:             "ropero-especial",
		Category:         "Roperos",
		ShortDescription: "Madera de cedro",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if got.Slug != "ropero-especial" {
		t.Errorf("Slug = %q, operator slug must win", got.Slug)
	}
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	store := newMockProductStore()
	store.add(&models.Product{ID: "p1", Slug: "ropero-clasico"})
	svc := NewProductAdminService(store)

	_, err := svc.Create(&CreateProductRequest{
		Name:             "Ropero Clásico",
		Category:         "Roperos",
		ShortDescription: "x",
	})
	if !errors.Is(err, utils.ErrSlugExists) {
		t.Errorf("err = %v, want ErrSlugExists", err)
	}
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	svc := NewProductAdminService(newMockProductStore())

	_, err := svc.Create(&CreateProductRequest{
		Name:             "Silla",
		Category:         "Sillas",
		ShortDescription: "x",
	})
	if !errors.Is(err, utils.ErrInvalidCategory) {
		t.Errorf("err = %v, want ErrInvalidCategory", err)
	}
}

func TestCreateRejectsUnusableName(t *testing.T) {
	svc := NewProductAdminService(newMockProductStore())

	_, err := svc.Create(&CreateProductRequest{
		Name:             "¿¡!?",
		Category:         "Mesas",
		ShortDescription: "x",
	})
	if !errors.Is(err, utils.ErrInvalidSlug) {
		t.Errorf("err = %v, want ErrInvalidSlug", err)
	}
}

func TestUpdateNeverRederivesSlug(t *testing.T) {
	store := newMockProductStore()
	store.add(&models.Product{ID: "p1", Slug: "ropero-clasico", Name: "Ropero Clásico", Category: models.CategoryRoperos})
	svc := NewProductAdminService(store)

	got, err := svc.Update("p1", &UpdateProductRequest{Name: "Ropero Renovado"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.Slug != "ropero-clasico" {
		t.Errorf("Slug = %q, a rename must not touch the slug", got.Slug)
	}
	if got.Name != "Ropero Renovado" {
		t.Errorf("Name = %q", got.Name)
	}
}

func TestUpdateChecksSlugUniqueness(t *testing.T) {
	store := newMockProductStore()
	store.add(&models.Product{ID: "p1", Slug: "ropero-clasico"})
	store.add(&models.Product{ID: "p2", Slug: "mesa-comedor"})
	svc := NewProductAdminService(store)

	if _, err := svc.Update("p1", &UpdateProductRequest{Slug: "mesa-comedor"}); !errors.Is(err, utils.ErrSlugExists) {
		t.Errorf("err = %v, want ErrSlugExists", err)
	}
}

func TestUpdateLeavesOmittedFieldsAlone(t *testing.T) {
	en := "Classic Wardrobe"
	store := newMockProductStore()
	store.add(&models.Product{
		ID: "p1", Slug: "ropero-clasico", Name: "Ropero Clásico",
		NameEN: &en, Category: models.CategoryRoperos, Featured: true,
	})
	svc := NewProductAdminService(store)

	got, err := svc.Update("p1", &UpdateProductRequest{ShortDescription: "Nueva descripción"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.NameEN == nil || *got.NameEN != en {
		t.Error("english name must survive an unrelated patch")
	}
	if !got.Featured {
		t.Error("featured flag must survive an unrelated patch")
	}
}

func TestUpdateMissingProduct(t *testing.T) {
	svc := NewProductAdminService(newMockProductStore())
	if _, err := svc.Update("ghost", &UpdateProductRequest{Name: "x"}); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSoftDeleteIsIdempotent(t *testing.T) {
	store := newMockProductStore()
	store.add(&models.Product{ID: "p1", Slug: "ropero-clasico", Active: true})
	svc := NewProductAdminService(store)

	if err := svc.SoftDelete("p1"); err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}
	if err := svc.SoftDelete("p1"); err != nil {
		t.Fatalf("second SoftDelete failed: %v", err)
	}
	if store.products["p1"].Active {
		t.Error("product should be inactive")
	}
	if len(store.deleted) != 0 {
		t.Error("soft delete must not remove the row")
	}
}

func TestHardDelete(t *testing.T) {
	store := newMockProductStore()
	svc := NewProductAdminService(store)

	if err := svc.HardDelete("p1"); err != nil {
		t.Fatalf("HardDelete failed: %v", err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "p1" {
		t.Errorf("deleted = %v", store.deleted)
	}
}
