package domain

import (
	"context"
	"time"
)

// Profile is the seller profile stamped on generated invoices.
type Profile struct {
	ID          int64     `gorm:"primaryKey" json:"id,string"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	GSTIN       string    `gorm:"size:15;uniqueIndex" json:"gstin"`
	StateCode   string    `gorm:"size:2;not null" json:"state_code"`
	StateName   string    `gorm:"size:64" json:"state_name"`
	Address     string    `gorm:"type:text" json:"address"`
	Phone       string    `gorm:"size:32" json:"phone"`
	Email       string    `gorm:"size:255" json:"email"`
	BankName    string    `gorm:"size:255" json:"bank_name"`
	BankAccount string    `gorm:"size:64" json:"bank_account"`
	BankIFSC    string    `gorm:"size:16" json:"bank_ifsc"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "company_profiles" }

// SaveInput carries the writable profile fields.
type SaveInput struct {
	Name        string `json:"name"`
	GSTIN       string `json:"gstin"`
	StateCode   string `json:"state_code"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	BankName    string `json:"bank_name"`
	BankAccount string `json:"bank_account"`
	BankIFSC    string `json:"bank_ifsc"`
}

// Repository persists the single seller profile.
type Repository interface {
	Get(ctx context.Context) (*Profile, error)
	Upsert(ctx context.Context, profile *Profile) error
}

// Service exposes profile reads and writes with GSTIN validation.
type Service interface {
	Get(ctx context.Context) (*Profile, error)
	Save(ctx context.Context, in SaveInput) (*Profile, error)
}
