package domain

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"user_id" db:"user_id"`
	Type      NotificationType `json:"type" db:"type"`
	Content   string           `json:"content" db:"content"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	ReadAt    *time.Time       `json:"read_at,omitempty" db:"read_at"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

type NotificationType string

const (
	NotifNewUser          NotificationType = "NEW_USER"
	NotifAccountStatus    NotificationType = "ACCOUNT_STATUS"
	NotifNewMessage       NotificationType = "NEW_MESSAGE"
	NotifExchangeRequest  NotificationType = "EXCHANGE_REQUEST"
	NotifExchangeAccepted NotificationType = "EXCHANGE_ACCEPTED"
	NotifExchangeRejected NotificationType = "EXCHANGE_REJECTED"
	NotifPayslipIssued    NotificationType = "PAYSLIP_ISSUED"
)
