// Package model holds the GORM persistence models. They never leave the infra layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Unique index names, also used to tell which constraint a write violated.
const (
	IdentityEmailIndex       = "idx_identities_email"
	IdentityFederatedIDIndex = "idx_identities_federated_id"
)

// IdentityModel mirrors the 'identities' table. IDs are generated by the
// application (UUIDv7) so the model stays portable across drivers.
type IdentityModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_identities_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FederatedID  *string   `gorm:"type:varchar(255);uniqueIndex:idx_identities_federated_id"`
	FirstName    string    `gorm:"type:varchar(100)"`
	LastName     string    `gorm:"type:varchar(100)"`
	Gender       *string   `gorm:"type:varchar(16)"`
	Origin       string    `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}
