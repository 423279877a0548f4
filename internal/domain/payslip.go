package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Payslip is an immutable settlement record. GrossTotal is the exact sum of
// the included shifts' totals, Commission is 7% of gross rounded half-even to
// the cent, and NetTotal is gross minus commission.
type Payslip struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	UserID     uuid.UUID       `json:"user_id" db:"user_id"`
	Period     string          `json:"period" db:"period"`
	ShiftIDs   pq.StringArray  `json:"shift_ids" db:"shift_ids"`
	GrossTotal decimal.Decimal `json:"gross_total" db:"gross_total"`
	Commission decimal.Decimal `json:"commission" db:"commission"`
	NetTotal   decimal.Decimal `json:"net_total" db:"net_total"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
}

type GeneratePayslipInput struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Period string    `json:"period" validate:"required"`
}
