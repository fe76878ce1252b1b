package models

import (
	"time"

	"gorm.io/gorm"
)

// UserKind discriminates the two disjoint identity kinds of the directory.
type UserKind string

const (
	UserKindRegular      UserKind = "regular"
	UserKindVeterinarian UserKind = "veterinarian"
)

/** --------------------ENTITIES-------------------- */

// User represents a member of the directory. Regular users and veterinarians
// share one table; Kind tells them apart and CRMV is only set for vets.
type User struct {
	ID       string   `gorm:"primaryKey;type:uuid" json:"id"`
	Name     string   `gorm:"not null" json:"name"`
	Username string   `gorm:"uniqueIndex;not null" json:"username"`
	Email    string   `gorm:"uniqueIndex;not null" json:"email"`
	Password string   `gorm:"not null" json:"-"`
	Kind     UserKind `gorm:"not null;type:varchar(20)" json:"kind"`
	CRMV     string   `gorm:"type:varchar(20)" json:"crmv,omitempty"`
	PhotoURL string   `json:"photoUrl,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) IsVet() bool {
	return u.Kind == UserKindVeterinarian
}

/** -------------------- DTOs -------------------- */

// Request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	// CRMV registers the account as a veterinarian when present.
	CRMV string `json:"crmv"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
}

// Response
type UserResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Kind     UserKind `json:"kind"`
	CRMV     string   `json:"crmv,omitempty"`
	PhotoURL string   `json:"photoUrl,omitempty"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Kind:     u.Kind,
		CRMV:     u.CRMV,
		PhotoURL: u.PhotoURL,
	}
}
