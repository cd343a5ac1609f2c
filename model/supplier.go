package model

import "time"

type Supplier struct {
	ID            uint64     `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	ContactPerson string     `db:"contact_person" json:"contact_person,omitempty"`
	Email         string     `db:"email" json:"email,omitempty"`
	Phone         string     `db:"phone" json:"phone,omitempty"`
	Address       string     `db:"address" json:"address,omitempty"`
	Rating        *float64   `db:"rating" json:"rating,omitempty"`
	IsActive      bool       `db:"is_active" json:"is_active"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

type SupplierRequest struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

type SupplierFilter struct {
	IncludeInactive bool
	Search          string
	Page            int
	PerPage         int
}
