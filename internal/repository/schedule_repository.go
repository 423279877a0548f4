package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"careshift/internal/domain"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Schedule, error)
	ListAll(ctx context.Context) ([]domain.Schedule, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Schedule, error)
	Update(ctx context.Context, schedule *domain.Schedule) error
}

type scheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) error {
	query := `
		INSERT INTO schedules (id, user_id, institution_id, date, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		schedule.ID, schedule.UserID, schedule.InstitutionID,
		schedule.Date, schedule.StartTime, schedule.EndTime, schedule.Status,
	).Scan(&schedule.CreatedAt)
}

func (r *scheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Schedule, error) {
	var schedule domain.Schedule
	query := `SELECT * FROM schedules WHERE id = $1`

	err := r.db.GetContext(ctx, &schedule, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) ListAll(ctx context.Context) ([]domain.Schedule, error) {
	var schedules []domain.Schedule
	query := `SELECT * FROM schedules ORDER BY date ASC, start_time ASC`
	err := r.db.SelectContext(ctx, &schedules, query)
	return schedules, err
}

func (r *scheduleRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Schedule, error) {
	var schedules []domain.Schedule
	query := `SELECT * FROM schedules WHERE user_id = $1 ORDER BY date ASC, start_time ASC`
	err := r.db.SelectContext(ctx, &schedules, query, userID)
	return schedules, err
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *domain.Schedule) error {
	query := `
		UPDATE schedules
		SET date = $2, start_time = $3, end_time = $4, status = $5
		WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query,
		schedule.ID, schedule.Date, schedule.StartTime, schedule.EndTime, schedule.Status,
	)
	return err
}
