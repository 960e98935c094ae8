package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// Reset admin memakai soft delete; index unik (user, hari) harus parsial
// supaya baris terhapus tidak memblokir check-in ulang di hari yang sama
// dengan 23505.
func TestUniqueIndexMelepasBarisSoftDelete(t *testing.T) {
	s, err := schema.Parse(&AttendanceLogModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	idx, ok := s.ParseIndexes()["uq_attendance_logs_user_day"]
	require.True(t, ok, "index unik (user, hari) harus ada")

	assert.Equal(t, "UNIQUE", idx.Class)
	assert.Equal(t, "attendance_log_deleted_at IS NULL", idx.Where)
	assert.Len(t, idx.Fields, 2)
}
