package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"careshift/internal/domain"
)

type InstitutionRepository interface {
	Create(ctx context.Context, inst *domain.Institution) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Institution, error)
	ListAll(ctx context.Context) ([]domain.Institution, error)
	CountAll(ctx context.Context) (int64, error)
}

type institutionRepository struct {
	db *sqlx.DB
}

func NewInstitutionRepository(db *sqlx.DB) InstitutionRepository {
	return &institutionRepository{db: db}
}

func (r *institutionRepository) Create(ctx context.Context, inst *domain.Institution) error {
	query := `
		INSERT INTO institutions (id, name, address, phone, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		inst.ID, inst.Name, inst.Address, inst.Phone, inst.Email,
	).Scan(&inst.CreatedAt)
}

func (r *institutionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Institution, error) {
	var inst domain.Institution
	query := `SELECT * FROM institutions WHERE id = $1`

	err := r.db.GetContext(ctx, &inst, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func (r *institutionRepository) ListAll(ctx context.Context) ([]domain.Institution, error) {
	var institutions []domain.Institution
	query := `SELECT * FROM institutions ORDER BY name ASC`
	err := r.db.SelectContext(ctx, &institutions, query)
	return institutions, err
}

func (r *institutionRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM institutions`
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}
