package domain

import (
	"time"

	"github.com/google/uuid"
)

type Institution struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Address   string    `json:"address" db:"address"`
	Phone     string    `json:"phone" db:"phone"`
	Email     *string   `json:"email,omitempty" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateInstitutionInput struct {
	Name    string  `json:"name" validate:"required,min=2,max=200"`
	Address string  `json:"address" validate:"required,max=300"`
	Phone   string  `json:"phone" validate:"required,max=30"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
}
