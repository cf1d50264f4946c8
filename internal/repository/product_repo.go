package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mueblessanmiguel/catalogo_api/internal/models"
)

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ListPublic returns all active products, newest first.
func (r *ProductRepository) ListPublic() ([]models.Product, error) {
	const q = `SELECT * FROM products WHERE active = true ORDER BY created_at DESC`
	var products []models.Product
	if err := r.db.Select(&products, q); err != nil {
		return nil, err
	}
	return products, nil
}

// ListByCategory returns active products in a category, newest first.
func (r *ProductRepository) ListByCategory(category string) ([]models.Product, error) {
	const q = `
        SELECT * FROM products
        WHERE active = true AND category = $1
        ORDER BY created_at DESC`
	var products []models.Product
	if err := r.db.Select(&products, q, category); err != nil {
		return nil, err
	}
	return products, nil
}

// ListFeatured returns active featured products, newest first, capped at limit.
func (r *ProductRepository) ListFeatured(limit int) ([]models.Product, error) {
	const q = `
        SELECT * FROM products
        WHERE active = true AND featured = true
        ORDER BY created_at DESC
        LIMIT $1`
	var products []models.Product
	if err := r.db.Select(&products, q, limit); err != nil {
		return nil, err
	}
	return products, nil
}

// GetBySlug returns a single active product by slug. Inactive products are
// invisible here; admin reads go through GetAdminBySlug.
func (r *ProductRepository) GetBySlug(slug string) (*models.Product, error) {
	const q = `SELECT * FROM products WHERE slug = $1 AND active = true LIMIT 1`
	var p models.Product
	if err := r.db.Get(&p, q, slug); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAdminBySlug returns a single product by slug regardless of active flag.
func (r *ProductRepository) GetAdminBySlug(slug string) (*models.Product, error) {
	const q = `SELECT * FROM products WHERE slug = $1 LIMIT 1`
	var p models.Product
	if err := r.db.Get(&p, q, slug); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID returns a single product by id, with no active filter.
func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	const q = `SELECT * FROM products WHERE id = $1 LIMIT 1`
	var p models.Product
	if err := r.db.Get(&p, q, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListRelated returns active products in the same category, excluding the
// product itself, capped at limit.
func (r *ProductRepository) ListRelated(productID, category string, limit int) ([]models.Product, error) {
	const q = `
        SELECT * FROM products
        WHERE active = true AND category = $1 AND id != $2
        ORDER BY created_at DESC
        LIMIT $3`
	var products []models.Product
	if err := r.db.Select(&products, q, category, productID, limit); err != nil {
		return nil, err
	}
	return products, nil
}

// ListRelatedBackfill returns active products from other categories, used to
// top up a related-products list that came back short. Its category filter is
// disjoint from ListRelated's, so no de-duplication pass is needed.
func (r *ProductRepository) ListRelatedBackfill(productID, category string, limit int) ([]models.Product, error) {
	const q = `
        SELECT * FROM products
        WHERE active = true AND category != $1 AND id != $2
        ORDER BY created_at DESC
        LIMIT $3`
	var products []models.Product
	if err := r.db.Select(&products, q, category, productID, limit); err != nil {
		return nil, err
	}
	return products, nil
}

// ListAdmin returns all products including inactive ones, newest first.
func (r *ProductRepository) ListAdmin() ([]models.Product, error) {
	const q = `SELECT * FROM products ORDER BY created_at DESC`
	var products []models.Product
	if err := r.db.Select(&products, q); err != nil {
		return nil, err
	}
	return products, nil
}

// Create inserts a new product. The id is generated here; timestamps are
// assigned by the database and scanned back into the model.
func (r *ProductRepository) Create(p *models.Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	const q = `
        INSERT INTO products (
            id, slug, name, name_en, category,
            short_description, short_description_en,
            image_url, image_alt, image_alt_en,
            features, featured, active
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING created_at, updated_at`

	return r.db.QueryRowx(q,
		p.ID,
		p.Slug,
		p.Name,
		p.NameEN,
		p.Category,
		p.ShortDescription,
		p.ShortDescriptionEN,
		p.ImageURL,
		p.ImageAlt,
		p.ImageAltEN,
		p.Features,
		p.Featured,
		p.Active,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

// Update writes the full row back. There is no version check: the last
// writer wins.
func (r *ProductRepository) Update(p *models.Product) error {
	const q = `
        UPDATE products
        SET slug = $1, name = $2, name_en = $3, category = $4,
            short_description = $5, short_description_en = $6,
            image_url = $7, image_alt = $8, image_alt_en = $9,
            features = $10, featured = $11, active = $12,
            updated_at = NOW()
        WHERE id = $13
        RETURNING updated_at`

	return r.db.QueryRowx(q,
		p.Slug,
		p.Name,
		p.NameEN,
		p.Category,
		p.ShortDescription,
		p.ShortDescriptionEN,
		p.ImageURL,
		p.ImageAlt,
		p.ImageAltEN,
		p.Features,
		p.Featured,
		p.Active,
		p.ID,
	).Scan(&p.UpdatedAt)
}

// SetActive flips the visibility flag. Setting it to the value it already
// holds is a no-op, which makes soft delete idempotent.
func (r *ProductRepository) SetActive(id string, active bool) error {
	const q = `UPDATE products SET active = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(q, id, active)
	return err
}

// Delete permanently removes a product row.
func (r *ProductRepository) Delete(id string) error {
	const q = `DELETE FROM products WHERE id = $1`
	_, err := r.db.Exec(q, id)
	return err
}
