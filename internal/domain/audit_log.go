package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	UserID     uuid.UUID       `json:"userId" db:"user_id"`
	UserName   *string         `json:"userName,omitempty" db:"user_name"`
	Action     string          `json:"action" db:"action"`
	EntityType string          `json:"entityType" db:"entity_type"`
	EntityID   uuid.UUID       `json:"entityId" db:"entity_id"`
	OldValue   json.RawMessage `json:"oldValue,omitempty" db:"old_value"`
	NewValue   json.RawMessage `json:"newValue,omitempty" db:"new_value"`
	IPAddress  *string         `json:"ipAddress,omitempty" db:"ip_address"`
	UserAgent  *string         `json:"userAgent,omitempty" db:"user_agent"`
	CreatedAt  time.Time       `json:"createdAt" db:"created_at"`
}
