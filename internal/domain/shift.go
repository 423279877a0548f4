package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Shift is one instance of worked time by a caregiver at an institution.
// Total is always derived from hours, rate and travel cost; it is never
// settable from outside.
type Shift struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	UserID        uuid.UUID       `json:"user_id" db:"user_id"`
	InstitutionID uuid.UUID       `json:"institution_id" db:"institution_id"`
	Date          time.Time       `json:"date" db:"date"`
	Hours         decimal.Decimal `json:"hours" db:"hours"`
	HourlyRate    decimal.Decimal `json:"hourly_rate" db:"hourly_rate"`
	TravelCost    decimal.Decimal `json:"travel_cost" db:"travel_cost"`
	Total         decimal.Decimal `json:"total" db:"total"`
	Status        ShiftStatus     `json:"status" db:"status"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// ComputeTotal returns hours*rate + travel cost exactly.
func ComputeTotal(hours, hourlyRate, travelCost decimal.Decimal) decimal.Decimal {
	return hours.Mul(hourlyRate).Add(travelCost)
}

type ShiftStatus string

const (
	ShiftPending   ShiftStatus = "PENDING"
	ShiftValidated ShiftStatus = "VALIDATED"
	ShiftPaid      ShiftStatus = "PAID"
)

func (s ShiftStatus) IsValid() bool {
	switch s {
	case ShiftPending, ShiftValidated, ShiftPaid:
		return true
	default:
		return false
	}
}

// CanAdvanceTo reports whether s may move forward to next in the normal
// lifecycle. The only forward moves are pending→validated and validated→paid;
// resetting to pending is a separate administrative override.
func (s ShiftStatus) CanAdvanceTo(next ShiftStatus) bool {
	switch {
	case s == ShiftPending && next == ShiftValidated:
		return true
	case s == ShiftValidated && next == ShiftPaid:
		return true
	default:
		return false
	}
}

type CreateShiftInput struct {
	UserID        uuid.UUID       `json:"user_id" validate:"required"`
	InstitutionID uuid.UUID       `json:"institution_id" validate:"required"`
	Date          time.Time       `json:"date" validate:"required"`
	Hours         decimal.Decimal `json:"hours" validate:"required"`
	HourlyRate    decimal.Decimal `json:"hourly_rate" validate:"required"`
	TravelCost    decimal.Decimal `json:"travel_cost"`
}
