package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID           `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Specialization  string              `gorm:"type:varchar(100);not null;default:'';index" json:"specialization"`
	Bio             string              `gorm:"type:text" json:"bio,omitempty"`
	AvailableSlots  string              `gorm:"type:text" json:"available_slots,omitempty"`
	ConsultationFee decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"consultation_fee"`
	CreatedAt       time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time           `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}

func (p *DoctorProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
