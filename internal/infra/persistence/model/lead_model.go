package model

import (
	"time"

	"github.com/google/uuid"
)

// LeadModel mirrors the 'leads' table.
type LeadModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ListingID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ListingKind     string    `gorm:"type:varchar(20);not null"`
	Name            string    `gorm:"type:varchar(100);not null"`
	Email           string    `gorm:"type:varchar(255);not null"`
	Phone           string    `gorm:"type:varchar(30)"`
	Message         string    `gorm:"type:text"`
	Status          string    `gorm:"type:varchar(20);not null;index"`
	AssignedAgentID uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (LeadModel) TableName() string {
	return "leads"
}
