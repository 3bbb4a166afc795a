package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Prescription is issued once per appointment, when the doctor completes it
type Prescription struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"appointment_id"`
	Medications   string    `gorm:"type:text;not null" json:"medications"`
	Instructions  string    `gorm:"type:text" json:"instructions,omitempty"`
	DocumentKey   *string   `gorm:"type:varchar(255)" json:"document_key,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

func (p *Prescription) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
