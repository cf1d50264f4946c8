package service

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/mueblessanmiguel/catalogo_api/internal/models"
	"github.com/mueblessanmiguel/catalogo_api/internal/utils"
	"github.com/mueblessanmiguel/catalogo_api/internal/viewstate"
)

// DefaultFeaturedLimit caps the homepage featured strip.
const DefaultFeaturedLimit = 6

// DefaultRelatedLimit caps the related-products strip on a detail page.
const DefaultRelatedLimit = 3

// catalogStore is the slice of the product repository the public catalog
// reads through.
type catalogStore interface {
	ListPublic() ([]models.Product, error)
	ListByCategory(category string) ([]models.Product, error)
	ListFeatured(limit int) ([]models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	ListRelated(productID, category string, limit int) ([]models.Product, error)
	ListRelatedBackfill(productID, category string, limit int) ([]models.Product, error)
}

// CatalogService serves the public, anonymous read surface: active products
// only, with list failures degrading to an empty result rather than an error
// page.
type CatalogService struct {
	products catalogStore
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(products catalogStore) *CatalogService {
	return &CatalogService{products: products}
}

// ListProducts returns active products, optionally narrowed to a category at
// the database and to a free-text name query in memory. List failures are
// logged and collapse to an empty catalog.
func (s *CatalogService) ListProducts(category, query string) []models.Product {
	var (
		products []models.Product
		err      error
	)
	if category == "" {
		products, err = s.products.ListPublic()
	} else {
		products, err = s.products.ListByCategory(category)
	}
	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("Failed to list products")
		return []models.Product{}
	}
	return viewstate.SearchProducts(products, query)
}

// ListFeatured returns the homepage strip of featured products.
func (s *CatalogService) ListFeatured(limit int) []models.Product {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	products, err := s.products.ListFeatured(limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list featured products")
		return []models.Product{}
	}
	return products
}

// GetBySlug returns one active product. A missing row is utils.ErrNotFound, a
// distinct outcome from any other storage failure so the page layer can
// choose between a 404 and a generic error.
func (s *CatalogService) GetBySlug(slug string) (*models.Product, error) {
	product, err := s.products.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		log.Error().Err(err).Str("slug", slug).Msg("Failed to get product by slug")
		return nil, err
	}
	return product, nil
}

// GetRelated returns up to limit active products for the "you may also like"
// strip: same-category matches first, then a backfill from other categories
// when the primary query comes back short. The backfill's category filter is
// disjoint from the primary's, so the two result sets cannot overlap.
func (s *CatalogService) GetRelated(productID, category string, limit int) []models.Product {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	related, err := s.products.ListRelated(productID, category, limit)
	if err != nil {
		log.Error().Err(err).Str("productId", productID).Msg("Failed to list related products")
		return []models.Product{}
	}

	if remaining := limit - len(related); remaining > 0 {
		more, err := s.products.ListRelatedBackfill(productID, category, remaining)
		if err != nil {
			log.Error().Err(err).Str("productId", productID).Msg("Failed to backfill related products")
			return related
		}
		related = append(related, more...)
	}
	return related
}
