package models

import (
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"

	"gorm.io/gorm"
)

// AuditLogModel is the GORM database model for audit log entries
type AuditLogModel struct {
	ID          string                 `gorm:"primaryKey;type:uuid"`
	Action      string                 `gorm:"not null;type:varchar(8)"`
	LoggedAt    time.Time              `gorm:"not null;index"`
	ObjectID    string                 `gorm:"not null;type:varchar(64);uniqueIndex:idx_audit_object_version"`
	ObjectClass string                 `gorm:"not null;type:varchar(255);uniqueIndex:idx_audit_object_version"`
	Version     int                    `gorm:"not null;uniqueIndex:idx_audit_object_version"`
	Data        map[string]interface{} `gorm:"serializer:json;type:text"`
	Username    string                 `gorm:"type:varchar(255);index"`
}

// TableName specifies the table name for GORM
func (AuditLogModel) TableName() string {
	return "audit_logs"
}

// BeforeCreate stamps the log date when it is not set.
func (m *AuditLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.LoggedAt.IsZero() {
		m.LoggedAt = time.Now().UTC()
	}
	return nil
}

// ToDomain converts GORM model to domain entity
func (m *AuditLogModel) ToDomain() *audit.LogEntry {
	return &audit.LogEntry{
		ID:          m.ID,
		Action:      m.Action,
		LoggedAt:    m.LoggedAt,
		ObjectID:    m.ObjectID,
		ObjectClass: m.ObjectClass,
		Version:     m.Version,
		Data:        m.Data,
		Username:    m.Username,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AuditLogModel) FromDomain(e *audit.LogEntry) {
	m.ID = e.ID
	m.Action = e.Action
	m.LoggedAt = e.LoggedAt
	m.ObjectID = e.ObjectID
	m.ObjectClass = e.ObjectClass
	m.Version = e.Version
	m.Data = e.Data
	m.Username = e.Username
}
