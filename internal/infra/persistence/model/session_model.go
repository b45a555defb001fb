package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table used by the database session store.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_sessions_user_id"`
	IPAddress string    `gorm:"type:varchar(64)"`
	UserAgent string    `gorm:"type:varchar(512)"`
	ExpiresAt time.Time `gorm:"not null;index:idx_sessions_expires_at"`
	CreatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
