package models

import (
	"time"

	"github.com/google/uuid"
)

// RevokedToken records a refresh token that was invalidated on logout.
// Rows become dead weight once ExpiresAt passes and can be pruned freely.
type RevokedToken struct {
	JTI       string    `gorm:"primaryKey" json:"jti"`
	UserID    uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
