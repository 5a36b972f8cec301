package dbx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		in      string
		want    string
	}{
		{"sqlite untouched", DialectSQLite, "SELECT * FROM letters WHERE feeling = ?", "SELECT * FROM letters WHERE feeling = ?"},
		{"postgres numbered", DialectPostgres, "INSERT INTO letters (feeling, message, timestamp) VALUES (?, ?, ?)", "INSERT INTO letters (feeling, message, timestamp) VALUES ($1, $2, $3)"},
		{"postgres no placeholders", DialectPostgres, "SELECT 1", "SELECT 1"},
		{"postgres quoted literal", DialectPostgres, "SELECT '?' AS q, id FROM letters WHERE id = ?", "SELECT '?' AS q, id FROM letters WHERE id = $1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rebind(tt.dialect, tt.in))
		})
	}
}
