package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseLeaveDuration_RentangDuaTanggal(t *testing.T) {
	r, ok := ParseLeaveDuration("2025-01-03 - 2025-01-07")
	require.True(t, ok)

	assert.True(t, r.Contains(day(2025, time.January, 3)), "hari pertama harus masuk")
	assert.True(t, r.Contains(day(2025, time.January, 5)))
	assert.True(t, r.Contains(day(2025, time.January, 7)), "hari terakhir harus masuk")
	assert.False(t, r.Contains(day(2025, time.January, 2)))
	assert.False(t, r.Contains(day(2025, time.January, 8)))
}

func TestParseLeaveDuration_SatuTanggal(t *testing.T) {
	r, ok := ParseLeaveDuration("2025-01-03")
	require.True(t, ok)

	assert.True(t, r.Contains(day(2025, time.January, 3)))
	assert.False(t, r.Contains(day(2025, time.January, 2)))
	assert.False(t, r.Contains(day(2025, time.January, 4)))
}

func TestParseLeaveDuration_ContainsAbaikanJamDanZona(t *testing.T) {
	r, ok := ParseLeaveDuration("2025-01-03 - 2025-01-07")
	require.True(t, ok)

	jakarta := time.FixedZone("WIB", 7*3600)
	assert.True(t, r.Contains(time.Date(2025, time.January, 7, 23, 45, 0, 0, jakarta)))
	assert.True(t, r.Contains(time.Date(2025, time.January, 3, 0, 0, 1, 0, jakarta)))
}

func TestParseLeaveDuration_InputRusak(t *testing.T) {
	cases := []string{
		"",
		"bukan tanggal",
		"2025-13-40",
		"2025-01-03 - bukan",
		"2025-01-03 - 2025-01-05 - 2025-01-07",
	}
	for _, raw := range cases {
		_, ok := ParseLeaveDuration(raw)
		assert.Falsef(t, ok, "input %q seharusnya gagal parse", raw)
	}
}

func TestParseLeaveDuration_UjungTertukarTidakMencakupApapun(t *testing.T) {
	// End sebelum Start: rentang kosong, tidak ada hari yang tercakup
	r, ok := ParseLeaveDuration("2025-01-07 - 2025-01-03")
	require.True(t, ok)

	for d := 1; d <= 10; d++ {
		assert.False(t, r.Contains(day(2025, time.January, d)))
	}
}

func TestLeaveRequestRange(t *testing.T) {
	req := LeaveRequestModel{LeaveRequestDuration: "2025-02-10 - 2025-02-12"}
	r, ok := req.Range()
	require.True(t, ok)
	assert.True(t, r.Contains(day(2025, time.February, 11)))

	broken := LeaveRequestModel{LeaveRequestDuration: "???"}
	_, ok = broken.Range()
	assert.False(t, ok)
}
