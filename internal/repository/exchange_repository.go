package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"careshift/internal/domain"
)

type ExchangeRepository interface {
	Create(ctx context.Context, exchange *domain.ShiftExchange) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ShiftExchange, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ShiftExchange, error)
	// Accept resolves the exchange and reassigns the shift's owner in one
	// transaction. It fails with domain.ErrExchangeResolved if the exchange
	// is no longer pending and with domain.ErrStaleExchange if the shift is
	// no longer owned by the recorded proposer, so two accepts racing over
	// the same shift can never both win.
	Accept(ctx context.Context, exchange *domain.ShiftExchange) error
	// Reject resolves the exchange without touching the shift.
	Reject(ctx context.Context, id uuid.UUID) error
}

type exchangeRepository struct {
	db *sqlx.DB
}

func NewExchangeRepository(db *sqlx.DB) ExchangeRepository {
	return &exchangeRepository{db: db}
}

func (r *exchangeRepository) Create(ctx context.Context, exchange *domain.ShiftExchange) error {
	query := `
		INSERT INTO shift_exchanges (id, proposer_id, target_id, shift_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		exchange.ID, exchange.ProposerID, exchange.TargetID, exchange.ShiftID, exchange.Status,
	).Scan(&exchange.CreatedAt)
}

func (r *exchangeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ShiftExchange, error) {
	var exchange domain.ShiftExchange
	query := `SELECT * FROM shift_exchanges WHERE id = $1`

	err := r.db.GetContext(ctx, &exchange, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &exchange, nil
}

func (r *exchangeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ShiftExchange, error) {
	var exchanges []domain.ShiftExchange
	query := `
		SELECT * FROM shift_exchanges
		WHERE proposer_id = $1 OR target_id = $1
		ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &exchanges, query, userID)
	return exchanges, err
}

func (r *exchangeRepository) Accept(ctx context.Context, exchange *domain.ShiftExchange) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE shift_exchanges SET status = $2 WHERE id = $1 AND status = $3`,
		exchange.ID, domain.ExchangeAccepted, domain.ExchangePending,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrExchangeResolved
	}

	res, err = tx.ExecContext(ctx,
		`UPDATE shifts SET user_id = $2 WHERE id = $1 AND user_id = $3`,
		exchange.ShiftID, exchange.TargetID, exchange.ProposerID,
	)
	if err != nil {
		return err
	}
	rows, err = res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrStaleExchange
	}

	return tx.Commit()
}

func (r *exchangeRepository) Reject(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE shift_exchanges SET status = $2 WHERE id = $1 AND status = $3`
	res, err := r.db.ExecContext(ctx, query, id, domain.ExchangeRejected, domain.ExchangePending)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrExchangeResolved
	}
	return nil
}
