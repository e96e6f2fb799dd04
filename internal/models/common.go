// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BaseModel is embedded by tables that use a generated UUID key. Products
// are keyed by SKU instead.
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("cannot scan %T into JSONB", value)
	}
}

// Staff roles carried in the sign-in provider's token.
type StaffRole string

const (
	StaffRoleAdmin  StaffRole = "admin"
	StaffRoleEditor StaffRole = "editor"
	StaffRoleViewer StaffRole = "viewer"
)

// CanEdit reports whether the role may change catalog data.
func (r StaffRole) CanEdit() bool {
	return r == StaffRoleAdmin || r == StaffRoleEditor
}
