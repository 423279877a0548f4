package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"careshift/internal/domain"
)

type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Shift, error)
	ListAll(ctx context.Context) ([]domain.Shift, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]domain.Shift, error)
	// AdvanceStatus flips a shift from exactly `from` to `to` in one guarded
	// statement. A shift that is not in `from` anymore is reported as
	// domain.ErrInvalidTransition, which also covers concurrent movers.
	AdvanceStatus(ctx context.Context, id uuid.UUID, from, to domain.ShiftStatus) error
	// ResetToPending is the administrative override; it ignores the current
	// status.
	ResetToPending(ctx context.Context, id uuid.UUID) error
	ListValidatedForPeriod(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.Shift, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.ShiftStatus) (int64, error)
	SumTotalsCreatedSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
}

type shiftRepository struct {
	db *sqlx.DB
}

func NewShiftRepository(db *sqlx.DB) ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) Create(ctx context.Context, shift *domain.Shift) error {
	query := `
		INSERT INTO shifts (id, user_id, institution_id, date, hours, hourly_rate, travel_cost, total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		shift.ID, shift.UserID, shift.InstitutionID, shift.Date,
		shift.Hours, shift.HourlyRate, shift.TravelCost, shift.Total, shift.Status,
	).Scan(&shift.CreatedAt)
}

func (r *shiftRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Shift, error) {
	var shift domain.Shift
	query := `SELECT * FROM shifts WHERE id = $1`

	err := r.db.GetContext(ctx, &shift, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) ListAll(ctx context.Context) ([]domain.Shift, error) {
	var shifts []domain.Shift
	query := `SELECT * FROM shifts ORDER BY date DESC, created_at DESC`
	err := r.db.SelectContext(ctx, &shifts, query)
	return shifts, err
}

func (r *shiftRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]domain.Shift, error) {
	var shifts []domain.Shift
	query := `SELECT * FROM shifts WHERE user_id = $1 ORDER BY date DESC, created_at DESC`
	err := r.db.SelectContext(ctx, &shifts, query, userID)
	return shifts, err
}

func (r *shiftRepository) AdvanceStatus(ctx context.Context, id uuid.UUID, from, to domain.ShiftStatus) error {
	query := `UPDATE shifts SET status = $3 WHERE id = $1 AND status = $2`
	res, err := r.db.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInvalidTransition
	}
	return nil
}

func (r *shiftRepository) ResetToPending(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE shifts SET status = $2 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, domain.ShiftPending)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrShiftNotFound
	}
	return nil
}

func (r *shiftRepository) ListValidatedForPeriod(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]domain.Shift, error) {
	var shifts []domain.Shift
	query := `
		SELECT * FROM shifts
		WHERE user_id = $1 AND status = $2 AND date >= $3 AND date < $4
		ORDER BY date ASC`
	err := r.db.SelectContext(ctx, &shifts, query, userID, domain.ShiftValidated, start, end)
	return shifts, err
}

func (r *shiftRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM shifts`
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}

func (r *shiftRepository) CountByStatus(ctx context.Context, status domain.ShiftStatus) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM shifts WHERE status = $1`
	err := r.db.GetContext(ctx, &count, query, status)
	return count, err
}

func (r *shiftRepository) SumTotalsCreatedSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(total), 0) FROM shifts WHERE created_at >= $1`
	err := r.db.GetContext(ctx, &sum, query, since)
	return sum, err
}
