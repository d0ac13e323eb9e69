package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. "cotizador" users build and save quotations; "admin" users
// additionally manage operation records.
const (
	RoleCotizador = "cotizador"
	RoleAdmin     = "admin"
)

// User represents a sales user of the cotizador.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Username  string         `gorm:"size:255;unique;not null" json:"username"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:50;default:'cotizador'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before inserting a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsAdmin reports whether the user can manage other users' operations.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
