package main

import (
	"net/http"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ParseDatabaseDriver picks the gorm dialector for a database URL. MySQL
// URLs carry the mysql:// scheme; anything else is treated as a sqlite
// file path. Returns nil for an empty URL.
func ParseDatabaseDriver(dbURL string) gorm.Dialector {
	if len(dbURL) == 0 {
		return nil
	}
	if strings.HasPrefix(dbURL, "mysql://") {
		return mysql.Open(strings.TrimPrefix(dbURL, "mysql://"))
	}
	return sqlite.Open(dbURL)
}

// checkOrigin builds the origin checker for the socket.io transports. An
// empty allowlist permits every origin, matching the CORS default.
func checkOrigin(allowedOrigins []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		if len(allowedOrigins) == 0 {
			return true
		}
		origin := r.Header.Get("Origin")
		if len(origin) == 0 {
			return true
		}
		for _, allowed := range allowedOrigins {
			if strings.EqualFold(origin, allowed) {
				return true
			}
		}
		return false
	}
}
