package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mueblessanmiguel/catalogo_api/internal/models"
)

// InquiryRepository handles data access for contact-form inquiries.
type InquiryRepository struct {
	db *sqlx.DB
}

// NewInquiryRepository creates a new InquiryRepository.
func NewInquiryRepository(db *sqlx.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

// Create inserts a new inquiry. Status and source are expected to be set by
// the caller (the service forces status to "new" for public submissions).
func (r *InquiryRepository) Create(i *models.Inquiry) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	const q = `
        INSERT INTO inquiries (id, name, contact, product_category, message, source, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at`

	return r.db.QueryRowx(q,
		i.ID,
		i.Name,
		i.Contact,
		i.ProductCategory,
		i.Message,
		i.Source,
		i.Status,
	).Scan(&i.CreatedAt)
}

// ListAll returns every inquiry, newest first.
func (r *InquiryRepository) ListAll() ([]models.Inquiry, error) {
	const q = `SELECT * FROM inquiries ORDER BY created_at DESC`
	var inquiries []models.Inquiry
	if err := r.db.Select(&inquiries, q); err != nil {
		return nil, err
	}
	return inquiries, nil
}

// ListByStatus returns inquiries with the given status, newest first.
func (r *InquiryRepository) ListByStatus(status string) ([]models.Inquiry, error) {
	const q = `SELECT * FROM inquiries WHERE status = $1 ORDER BY created_at DESC`
	var inquiries []models.Inquiry
	if err := r.db.Select(&inquiries, q, status); err != nil {
		return nil, err
	}
	return inquiries, nil
}

// CountNew returns how many inquiries still await triage.
func (r *InquiryRepository) CountNew() (int, error) {
	const q = `SELECT COUNT(1) FROM inquiries WHERE status = 'new'`
	var count int
	if err := r.db.Get(&count, q); err != nil {
		return 0, err
	}
	return count, nil
}

// GetByID returns a single inquiry by id.
func (r *InquiryRepository) GetByID(id string) (*models.Inquiry, error) {
	const q = `SELECT * FROM inquiries WHERE id = $1 LIMIT 1`
	var i models.Inquiry
	if err := r.db.Get(&i, q, id); err != nil {
		return nil, err
	}
	return &i, nil
}

// UpdateStatus sets the triage status. Any enumerated value is accepted from
// any current state; no transition rules are enforced here.
func (r *InquiryRepository) UpdateStatus(id, status string) error {
	const q = `UPDATE inquiries SET status = $2 WHERE id = $1`
	_, err := r.db.Exec(q, id, status)
	return err
}

// Delete permanently removes an inquiry row.
func (r *InquiryRepository) Delete(id string) error {
	const q = `DELETE FROM inquiries WHERE id = $1`
	_, err := r.db.Exec(q, id)
	return err
}
