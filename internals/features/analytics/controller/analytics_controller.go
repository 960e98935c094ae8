package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/analytics/service"
	checkinModel "absensiku_backend/internals/features/attendance/checkin/model"
	recapService "absensiku_backend/internals/features/attendance/recap/service"
	leaveModel "absensiku_backend/internals/features/leave/model"
	userModel "absensiku_backend/internals/features/users/user/model"
	helper "absensiku_backend/internals/helpers"
)

const highRiskThreshold = 80

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

var jakartaLoc = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.Local
	}
	return loc
}()

// GET /api/a/analytics/employee/:user_id?month=&year=&force=
// Narasi performa AI + fakta pendukungnya. Hasil narasi disimpan di profil
// user dan dipakai ulang selama 24 jam kecuali ?force=true.
func (ctl *AnalyticsController) EmployeeAnalytics(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}

	var user userModel.UserModel
	err = ctl.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now().In(jakartaLoc)
	month := c.QueryInt("month", int(now.Month()))
	year := c.QueryInt("year", now.Year())
	if month < 1 || month > 12 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Bulan tidak valid")
	}
	force := c.QueryBool("force", false)

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	in, err := recapService.LoadResolveInput(ctl.DB.WithContext(c.Context()), user, first, last, today)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	buckets, row := recapService.AggregateOne(in, first, last, recapService.ProfileAttendance)
	rate := attendanceRate(buckets, row.WorkingDays)

	// Tren terhadap bulan sebelumnya
	prevFirst := first.AddDate(0, -1, 0)
	prevLast := prevFirst.AddDate(0, 1, -1)
	prevIn, err := recapService.LoadResolveInput(ctl.DB.WithContext(c.Context()), user, prevFirst, prevLast, today)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	prevBuckets, prevRow := recapService.AggregateOne(prevIn, prevFirst, prevLast, recapService.ProfileAttendance)
	trend := service.ComputeTrend(rate, attendanceRate(prevBuckets, prevRow.WorkingDays))

	// Flag fraud: pola izin Senin/Jumat, jam check-in seragam, alfa tinggi,
	// plus jumlah check-in berskor risiko tinggi pada bulan itu
	var logs []checkinModel.AttendanceLogModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("attendance_log_user_id = ?", userID).
		Where("attendance_log_day >= ? AND attendance_log_day <= ?",
			first.Format("2006-01-02"), last.Format("2006-01-02")).
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	highRisk := 0
	for _, l := range logs {
		if l.AttendanceLogRiskScore >= highRiskThreshold {
			highRisk++
		}
	}

	var approved []leaveModel.LeaveRequestModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("leave_request_user_id = ?", userID).
		Where("leave_request_status = ?", leaveModel.LeaveStatusApproved).
		Find(&approved).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	monthLeaves := make([]leaveModel.LeaveRequestModel, 0, len(approved))
	for _, l := range approved {
		if r, ok := l.Range(); ok && !r.Start.Before(first) && !r.Start.After(last) {
			monthLeaves = append(monthLeaves, l)
		}
	}

	fraudFlags := service.DetectFraudFlags(monthLeaves, logs, buckets[recapService.BucketAlfa])

	facts := service.PerformanceFacts{
		Name:           user.UserName,
		Position:       user.UserPosition,
		Month:          first.Format("2006-01"),
		AttendanceRate: rate,
		TepatWaktu:     buckets[recapService.BucketTepatWaktu],
		Terlambat:      buckets[recapService.BucketTerlambat],
		Izin:           buckets[recapService.BucketIzin],
		Alfa:           buckets[recapService.BucketAlfa],
		HighRiskCount:  highRisk,
		FraudFlags:     fraudFlags,
		Trend:          trend,
	}

	summary := ""
	if !force && user.UserAISummary != nil && user.UserLastAIGeneratedAt != nil &&
		time.Since(*user.UserLastAIGeneratedAt) < 24*time.Hour {
		summary = *user.UserAISummary
	} else {
		summary = service.GenerateAISummary(facts)
		generatedAt := time.Now()
		if err := ctl.DB.WithContext(c.Context()).
			Model(&user).
			Updates(map[string]any{
				"user_ai_summary":           summary,
				"user_last_ai_generated_at": generatedAt,
			}).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonOK(c, "Analitik karyawan berhasil dihitung", fiber.Map{
		"user_id":         user.UserID,
		"user_name":       user.UserName,
		"month":           facts.Month,
		"attendance_rate": rate,
		"buckets":         buckets,
		"working_days":    row.WorkingDays,
		"trend":           trend,
		"high_risk_count": highRisk,
		"fraud_flags":     fraudFlags,
		"category":        service.CategorizePerformance(rate, facts.Alfa),
		"ai_summary":      summary,
	})
}

func attendanceRate(buckets map[string]int, workingDays int) float64 {
	if workingDays == 0 {
		return 0
	}
	present := buckets[recapService.BucketTepatWaktu] + buckets[recapService.BucketTerlambat]
	return float64(present) / float64(workingDays) * 100
}
