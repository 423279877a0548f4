package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Email         string     `json:"email" db:"email"`
	PasswordHash  string     `json:"-" db:"password_hash"`
	FirstName     string     `json:"first_name" db:"first_name"`
	LastName      string     `json:"last_name" db:"last_name"`
	Role          UserRole   `json:"role" db:"role"`
	Status        UserStatus `json:"status" db:"status"`
	Phone         *string    `json:"phone,omitempty" db:"phone"`
	PhotoURL      *string    `json:"photo_url,omitempty" db:"photo_url"`
	InstitutionID *uuid.UUID `json:"institution_id,omitempty" db:"institution_id"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type UserRole string

const (
	RoleAdmin         UserRole = "admin"
	RoleNurse         UserRole = "nurse"
	RoleCareAssistant UserRole = "care_assistant"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleNurse, RoleCareAssistant:
		return true
	default:
		return false
	}
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsCaregiver reports whether the user works shifts (any non-admin role).
func (u *User) IsCaregiver() bool {
	return u.Role == RoleNurse || u.Role == RoleCareAssistant
}

type UserStatus string

const (
	UserPending  UserStatus = "PENDING"
	UserApproved UserStatus = "APPROVED"
	UserRejected UserStatus = "REJECTED"
)

func (s UserStatus) IsValid() bool {
	switch s {
	case UserPending, UserApproved, UserRejected:
		return true
	default:
		return false
	}
}

type CreateUserInput struct {
	Email         string     `json:"email" validate:"required,email"`
	Password      string     `json:"password" validate:"required,min=8"`
	FirstName     string     `json:"first_name" validate:"required,min=2"`
	LastName      string     `json:"last_name" validate:"required,min=2"`
	Role          UserRole   `json:"role" validate:"required"`
	Phone         *string    `json:"phone,omitempty"`
	InstitutionID *uuid.UUID `json:"institution_id,omitempty"`
}

type UpdateUserInput struct {
	FirstName     *string     `json:"first_name,omitempty" validate:"omitempty,min=2"`
	LastName      *string     `json:"last_name,omitempty" validate:"omitempty,min=2"`
	Password      *string     `json:"password,omitempty" validate:"omitempty,min=8"`
	Phone         **string    `json:"phone,omitempty"`
	InstitutionID **uuid.UUID `json:"institution_id,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	User        *User  `json:"user"`
}
