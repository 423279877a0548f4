package domain

import (
	"time"

	"github.com/google/uuid"
)

type Schedule struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	UserID        uuid.UUID      `json:"user_id" db:"user_id"`
	InstitutionID uuid.UUID      `json:"institution_id" db:"institution_id"`
	Date          time.Time      `json:"date" db:"date"`
	StartTime     string         `json:"start_time" db:"start_time"`
	EndTime       string         `json:"end_time" db:"end_time"`
	Status        ScheduleStatus `json:"status" db:"status"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
}

type ScheduleStatus string

const (
	ScheduleAvailable ScheduleStatus = "AVAILABLE"
	ScheduleBooked    ScheduleStatus = "BOOKED"
	ScheduleCompleted ScheduleStatus = "COMPLETED"
)

func (s ScheduleStatus) IsValid() bool {
	switch s {
	case ScheduleAvailable, ScheduleBooked, ScheduleCompleted:
		return true
	default:
		return false
	}
}

type CreateScheduleInput struct {
	UserID        uuid.UUID `json:"user_id" validate:"required"`
	InstitutionID uuid.UUID `json:"institution_id" validate:"required"`
	Date          time.Time `json:"date" validate:"required"`
	StartTime     string    `json:"start_time" validate:"required"`
	EndTime       string    `json:"end_time" validate:"required"`
}

// UpdateScheduleInput is a whitelisted partial update; absent fields are left
// untouched.
type UpdateScheduleInput struct {
	Date      *time.Time      `json:"date,omitempty"`
	StartTime *string         `json:"start_time,omitempty"`
	EndTime   *string         `json:"end_time,omitempty"`
	Status    *ScheduleStatus `json:"status,omitempty"`
}
