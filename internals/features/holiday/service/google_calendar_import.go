package service

import (
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"absensiku_backend/internals/configs"
	"absensiku_backend/internals/features/holiday/model"
)

const googleCalendarID = "id.indonesian%23holiday%40group.v.calendar.google.com"

type calendarEvent struct {
	Summary string `json:"summary"`
	Start   struct {
		Date string `json:"date"`
	} `json:"start"`
}

type calendarResponse struct {
	Items []calendarEvent `json:"items"`
}

// ImportIndonesianHolidays menarik kalender libur nasional Indonesia dari
// Google Calendar API untuk satu tahun dan menyimpan tanggal yang belum ada.
// Entri duplikat dilewati, bukan digagalkan.
func ImportIndonesianHolidays(db *gorm.DB, year int) (int, error) {
	apiKey := configs.GetEnv("GOOGLE_CALENDAR_API_KEY")
	if apiKey == "" {
		return 0, fmt.Errorf("GOOGLE_CALENDAR_API_KEY belum diset")
	}

	url := fmt.Sprintf(
		"https://www.googleapis.com/calendar/v3/calendars/%s/events?key=%s&timeMin=%d-01-01T00:00:00Z&timeMax=%d-12-31T23:59:59Z&maxResults=100",
		googleCalendarID, apiKey, year, year,
	)

	agent := fiber.Get(url)
	agent.Timeout(15 * time.Second)
	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, fmt.Errorf("gagal memanggil Google Calendar: %v", errs[0])
	}
	if statusCode != fiber.StatusOK {
		return 0, fmt.Errorf("Google Calendar merespons status %d", statusCode)
	}

	var parsed calendarResponse
	if err := sonic.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("gagal parse respons kalender: %w", err)
	}

	imported := 0
	for _, ev := range parsed.Items {
		day, err := time.Parse("2006-01-02", ev.Start.Date)
		if err != nil || ev.Summary == "" {
			continue
		}

		entry := model.HolidayModel{
			HolidayDate: datatypes.Date(day),
			HolidayName: ev.Summary,
		}
		var count int64
		if err := db.Model(&model.HolidayModel{}).
			Where("holiday_date = ?", day.Format("2006-01-02")).
			Count(&count).Error; err != nil {
			return imported, err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&entry).Error; err != nil {
			log.Printf("[WARN] Gagal simpan libur %s (%s): %v", ev.Summary, ev.Start.Date, err)
			continue
		}
		imported++
	}

	log.Printf("[INFO] Import kalender libur %d selesai: %d entri baru", year, imported)
	return imported, nil
}
