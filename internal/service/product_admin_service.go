package service

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/mueblessanmiguel/catalogo_api/internal/models"
	"github.com/mueblessanmiguel/catalogo_api/internal/utils"
)

// productStore is the slice of the product repository the admin panel writes
// through.
type productStore interface {
	ListAdmin() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetAdminBySlug(slug string) (*models.Product, error)
	Create(p *models.Product) error
	Update(p *models.Product) error
	SetActive(id string, active bool) error
	Delete(id string) error
}

// ProductAdminService handles product CRUD for the admin panel. Admin reads
// ignore the active flag; deletes are soft by default.
type ProductAdminService struct {
	products productStore
}

// NewProductAdminService constructs a ProductAdminService.
func NewProductAdminService(products productStore) *ProductAdminService {
	return &ProductAdminService{products: products}
}

// CreateProductRequest represents the request to create a product. Slug is
// optional: when absent it is derived from the Spanish name.
type CreateProductRequest struct {
	Name               string   `json:"name" binding:"required"`
	NameEN             *string  `json:"nameEn"`
	Slug               string   `json:"slug"`
	Category           string   `json:"category" binding:"required"`
	ShortDescription   string   `json:"shortDescription" binding:"required"`
	ShortDescriptionEN *string  `json:"shortDescriptionEn"`
	ImageURL           *string  `json:"imageUrl"`
	ImageAlt           *string  `json:"imageAlt"`
	ImageAltEN         *string  `json:"imageAltEn"`
	Features           []string `json:"features"`
	Featured           bool     `json:"featured"`
	Active             *bool    `json:"active"`
}

// UpdateProductRequest represents a partial product update. Nil / empty
// fields are left untouched. Slug is never re-derived on update: an
// operator-set slug stays as written.
type UpdateProductRequest struct {
	Name               string    `json:"name"`
	NameEN             *string   `json:"nameEn"`
	Slug               string    `json:"slug"`
	Category           string    `json:"category"`
	ShortDescription   string    `json:"shortDescription"`
	ShortDescriptionEN *string   `json:"shortDescriptionEn"`
	ImageURL           *string   `json:"imageUrl"`
	ImageAlt           *string   `json:"imageAlt"`
	ImageAltEN         *string   `json:"imageAltEn"`
	Features           *[]string `json:"features"`
	Featured           *bool     `json:"featured"`
	Active             *bool     `json:"active"`
}

// List returns every product, inactive ones included.
func (s *ProductAdminService) List() ([]models.Product, error) {
	return s.products.ListAdmin()
}

// Get returns a product by id regardless of active flag.
func (s *ProductAdminService) Get(id string) (*models.Product, error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

// GetBySlug returns a product by slug regardless of active flag.
func (s *ProductAdminService) GetBySlug(slug string) (*models.Product, error) {
	product, err := s.products.GetAdminBySlug(slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

// Create validates and inserts a new product. The slug is derived from the
// name only when the operator left it blank; either way it must be unique.
func (s *ProductAdminService) Create(req *CreateProductRequest) (*models.Product, error) {
	if !models.IsValidCategory(req.Category) {
		return nil, utils.ErrInvalidCategory
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if slug == "" {
		return nil, utils.ErrInvalidSlug
	}
	existing, err := s.products.GetAdminBySlug(slug)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrSlugExists
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product := &models.Product{
		Slug:               slug,
		Name:               req.Name,
		NameEN:             req.NameEN,
		Category:           models.ProductCategory(req.Category),
		ShortDescription:   req.ShortDescription,
		ShortDescriptionEN: req.ShortDescriptionEN,
		ImageURL:           req.ImageURL,
		ImageAlt:           req.ImageAlt,
		ImageAltEN:         req.ImageAltEN,
		Features:           pq.StringArray(req.Features),
		Featured:           req.Featured,
		Active:             active,
	}

	if err := s.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update patches a product field by field and writes the row back. There is
// no version check: for concurrent admin edits the last writer wins.
func (s *ProductAdminService) Update(id string, req *UpdateProductRequest) (*models.Product, error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}

	if req.Slug != "" && req.Slug != product.Slug {
		existing, err := s.products.GetAdminBySlug(req.Slug)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		if existing != nil {
			return nil, utils.ErrSlugExists
		}
		product.Slug = req.Slug
	}
	if req.Name != "" {
		product.Name = req.Name
	}
	if req.NameEN != nil {
		product.NameEN = req.NameEN
	}
	if req.Category != "" {
		if !models.IsValidCategory(req.Category) {
			return nil, utils.ErrInvalidCategory
		}
		product.Category = models.ProductCategory(req.Category)
	}
	if req.ShortDescription != "" {
		product.ShortDescription = req.ShortDescription
	}
	if req.ShortDescriptionEN != nil {
		product.ShortDescriptionEN = req.ShortDescriptionEN
	}
	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}
	if req.ImageAlt != nil {
		product.ImageAlt = req.ImageAlt
	}
	if req.ImageAltEN != nil {
		product.ImageAltEN = req.ImageAltEN
	}
	if req.Features != nil {
		product.Features = pq.StringArray(*req.Features)
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := s.products.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// SoftDelete hides a product from the public surface by clearing its active
// flag. Repeating the call leaves the same end state and raises no error.
func (s *ProductAdminService) SoftDelete(id string) error {
	return s.products.SetActive(id, false)
}

// HardDelete permanently removes a product. No admin screen triggers this;
// it exists for operational cleanup.
func (s *ProductAdminService) HardDelete(id string) error {
	return s.products.Delete(id)
}
