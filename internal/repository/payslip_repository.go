package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"careshift/internal/domain"
)

type PayslipRepository interface {
	// CreateSettled persists the payslip and locks every included shift from
	// validated to paid inside one transaction. If any shift changed since it
	// was selected the whole settlement rolls back with
	// domain.ErrSettlementConflict.
	CreateSettled(ctx context.Context, payslip *domain.Payslip) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payslip, error)
	ListAll(ctx context.Context) ([]domain.Payslip, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Payslip, error)
}

type payslipRepository struct {
	db *sqlx.DB
}

func NewPayslipRepository(db *sqlx.DB) PayslipRepository {
	return &payslipRepository{db: db}
}

func (r *payslipRepository) CreateSettled(ctx context.Context, payslip *domain.Payslip) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO payslips (id, user_id, period, shift_ids, gross_total, commission, net_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err = tx.QueryRowxContext(ctx, query,
		payslip.ID, payslip.UserID, payslip.Period, payslip.ShiftIDs,
		payslip.GrossTotal, payslip.Commission, payslip.NetTotal,
	).Scan(&payslip.CreatedAt)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE shifts SET status = $1 WHERE id = ANY($2::uuid[]) AND status = $3`,
		domain.ShiftPaid, pq.Array([]string(payslip.ShiftIDs)), domain.ShiftValidated,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows != int64(len(payslip.ShiftIDs)) {
		return domain.ErrSettlementConflict
	}

	return tx.Commit()
}

func (r *payslipRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payslip, error) {
	var payslip domain.Payslip
	query := `SELECT * FROM payslips WHERE id = $1`

	err := r.db.GetContext(ctx, &payslip, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payslip, nil
}

func (r *payslipRepository) ListAll(ctx context.Context) ([]domain.Payslip, error) {
	var payslips []domain.Payslip
	query := `SELECT * FROM payslips ORDER BY period DESC, created_at DESC`
	err := r.db.SelectContext(ctx, &payslips, query)
	return payslips, err
}

func (r *payslipRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Payslip, error) {
	var payslips []domain.Payslip
	query := `SELECT * FROM payslips WHERE user_id = $1 ORDER BY period DESC, created_at DESC`
	err := r.db.SelectContext(ctx, &payslips, query, userID)
	return payslips, err
}
