// internal/models/audit_log.go
package models

type AuditLog struct {
	BaseModel
	UserEmail    string `json:"user_email" gorm:"size:255;index"`
	Action       string `json:"action" gorm:"size:100;not null;index"`
	ResourceType string `json:"resource_type" gorm:"size:50;not null;index"`
	ResourceID   string `json:"resource_id" gorm:"size:64;index"`
	NewValues    JSONB  `json:"new_values" gorm:"type:jsonb"`
	Status       int    `json:"status"`
	DurationMs   int64  `json:"duration_ms"`
	RequestID    string `json:"request_id" gorm:"size:36"`
	IPAddress    string `json:"ip_address" gorm:"size:45"`
	UserAgent    string `json:"user_agent" gorm:"type:text"`
}
