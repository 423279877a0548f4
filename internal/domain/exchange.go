package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShiftExchange is a proposal by a shift's current owner to hand the shift
// over to another caregiver. Once accepted or rejected it is immutable.
type ShiftExchange struct {
	ID         uuid.UUID      `json:"id" db:"id"`
	ProposerID uuid.UUID      `json:"proposer_id" db:"proposer_id"`
	TargetID   uuid.UUID      `json:"target_id" db:"target_id"`
	ShiftID    uuid.UUID      `json:"shift_id" db:"shift_id"`
	Status     ExchangeStatus `json:"status" db:"status"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
}

type ExchangeStatus string

const (
	ExchangePending  ExchangeStatus = "PENDING"
	ExchangeAccepted ExchangeStatus = "ACCEPTED"
	ExchangeRejected ExchangeStatus = "REJECTED"
)

func (s ExchangeStatus) IsValid() bool {
	switch s {
	case ExchangePending, ExchangeAccepted, ExchangeRejected:
		return true
	default:
		return false
	}
}

type ProposeExchangeInput struct {
	ShiftID  uuid.UUID `json:"shift_id" validate:"required"`
	TargetID uuid.UUID `json:"target_id" validate:"required"`
}

type ExchangeDecision string

const (
	DecisionAccept ExchangeDecision = "accept"
	DecisionReject ExchangeDecision = "reject"
)

func (d ExchangeDecision) IsValid() bool {
	return d == DecisionAccept || d == DecisionReject
}

type RespondExchangeInput struct {
	Decision ExchangeDecision `json:"decision" validate:"required"`
}
