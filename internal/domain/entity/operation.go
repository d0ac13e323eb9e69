package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alavista-lab/cotizador-api/internal/domain/enum"
)

// Operation is a persisted quotation record under review. The payload column
// snapshots the whole QuotationDocument; each save overwrites the previous
// snapshot, there is no version history.
type Operation struct {
	ID        uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string               `gorm:"size:255;not null" json:"name"`
	Date      time.Time            `gorm:"type:date;not null" json:"date"`
	Status    enum.OperationStatus `gorm:"default:0" json:"status"`
	Area      string               `gorm:"size:100;index" json:"area"`
	Payload   DocumentPayload      `gorm:"type:jsonb" json:"payload"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
	DeletedAt gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// BeforeCreate generates a UUID before inserting a new operation
func (o *Operation) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Operation model
func (Operation) TableName() string {
	return "operations"
}
