package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"absensiku_backend/internals/features/attendance/summary/service"
)

// StartDailySummaryScheduler menjalankan materialisasi summary setiap pukul
// 23:59 waktu Jakarta. Idempoten, jadi aman walau proses restart dan job
// terpicu dua kali untuk tanggal yang sama.
func StartDailySummaryScheduler(db *gorm.DB) {
	go func() {
		loc, err := time.LoadLocation("Asia/Jakarta")
		if err != nil {
			loc = time.Local
		}

		for {
			now := time.Now().In(loc)
			next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, loc)
			if !next.After(now) {
				next = next.AddDate(0, 0, 1)
			}

			log.Printf("[INFO] Scheduler summary tidur sampai %s", next.Format("2006-01-02 15:04"))
			time.Sleep(time.Until(next))

			runAt := time.Now().In(loc)
			day := time.Date(runAt.Year(), runAt.Month(), runAt.Day(), 0, 0, 0, 0, time.UTC)
			if _, err := service.MaterializeDay(db, day, day); err != nil {
				log.Printf("[ERROR] Materialisasi summary gagal: %v", err)
			}
		}
	}()
}
