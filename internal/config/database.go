// internal/config/database.go
package config

import (
	"fmt"
	"strings"
)

// DSN renders the libpq keyword/value connection string used by the gorm
// postgres driver. Optional settings are left out when unset.
func (d *DatabaseConfig) DSN() string {
	parts := []string{
		"host=" + d.Host,
		"port=" + d.Port,
		"user=" + d.User,
		"password=" + d.Password,
		"dbname=" + d.Database,
		"sslmode=" + d.SSLMode,
	}
	if d.ConnectTimeout > 0 {
		parts = append(parts, fmt.Sprintf("connect_timeout=%d", d.ConnectTimeout))
	}
	if d.ApplicationName != "" {
		parts = append(parts, "application_name="+d.ApplicationName)
	}
	return strings.Join(parts, " ")
}

func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}
