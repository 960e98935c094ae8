package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsWeekend(t *testing.T) {
	sabtu := time.Date(2025, time.June, 7, 10, 0, 0, 0, jakartaLoc)
	minggu := time.Date(2025, time.June, 8, 10, 0, 0, 0, jakartaLoc)
	senin := time.Date(2025, time.June, 9, 10, 0, 0, 0, jakartaLoc)

	assert.True(t, isWeekend(sabtu))
	assert.True(t, isWeekend(minggu))
	assert.False(t, isWeekend(senin))
}

// Check-out sebelum 16:00 ditolak, tepat 16:00 dibuka.
func TestBeforeCheckOutOpen(t *testing.T) {
	assert.True(t, beforeCheckOutOpen(time.Date(2025, time.June, 9, 15, 59, 59, 0, jakartaLoc)))
	assert.False(t, beforeCheckOutOpen(time.Date(2025, time.June, 9, 16, 0, 0, 0, jakartaLoc)))
	assert.False(t, beforeCheckOutOpen(time.Date(2025, time.June, 9, 17, 30, 0, 0, jakartaLoc)))
}
