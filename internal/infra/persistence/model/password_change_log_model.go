package model

import (
	"time"

	"github.com/google/uuid"
)

// PasswordChangeLogModel mirrors the append-only 'password_change_logs' table.
// Both user references are restricted so audited users cannot be removed underneath their history.
type PasswordChangeLogModel struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	ActorID   uuid.UUID `gorm:"type:uuid;not null;index:idx_password_change_logs_actor_id"`
	TargetID  uuid.UUID `gorm:"type:uuid;not null;index:idx_password_change_logs_target_id"`
	Reason    *string   `gorm:"type:text"`
	IP        *string   `gorm:"type:varchar(64)"`
	Timestamp time.Time `gorm:"not null;index:idx_password_change_logs_timestamp"`

	Actor  *UserModel `gorm:"foreignKey:ActorID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Target *UserModel `gorm:"foreignKey:TargetID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (PasswordChangeLogModel) TableName() string {
	return "password_change_logs"
}
