package controller

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/configs"
	"absensiku_backend/internals/features/attendance/checkin/dto"
	"absensiku_backend/internals/features/attendance/checkin/model"
	"absensiku_backend/internals/features/attendance/checkin/service"
	holidayModel "absensiku_backend/internals/features/holiday/model"
	ondutyModel "absensiku_backend/internals/features/onduty/model"
	helper "absensiku_backend/internals/helpers"
)

type CheckinController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCheckinController(db *gorm.DB) *CheckinController {
	return &CheckinController{DB: db, Validator: validator.New()}
}

var jakartaLoc = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.Local
	}
	return loc
}()

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Check-out baru dibuka pukul 16:00
func beforeCheckOutOpen(now time.Time) bool {
	return now.Before(time.Date(now.Year(), now.Month(), now.Day(), 16, 0, 0, 0, now.Location()))
}

func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "SQLSTATE 23505")
}

// POST /api/u/attendance/check-in
func (ctl *CheckinController) CheckIn(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	now := time.Now().In(jakartaLoc)
	today := startOfDay(now)

	// 1) Akhir pekan: tidak ada kewajiban absen
	if isWeekend(now) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Hari ini akhir pekan, tidak perlu absen.")
	}

	// 2) Hari libur nasional/kantor
	var hol holidayModel.HolidayModel
	err = ctl.DB.WithContext(c.Context()).
		Where("holiday_date = ?", today.Format("2006-01-02")).
		First(&hol).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, fmt.Sprintf("Hari ini libur: %s.", hol.HolidayName))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// 3) Satu check-in per hari
	var existing model.AttendanceLogModel
	err = ctl.DB.WithContext(c.Context()).
		Where("attendance_log_user_id = ? AND attendance_log_day = ?", userID, today.Format("2006-01-02")).
		First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Anda sudah melakukan check-in hari ini.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// 4) Izin dinas approved yang mencakup hari ini menonaktifkan geofence
	onDuty, err := ondutyModel.IsOnDutyOn(ctl.DB.WithContext(c.Context()), userID, today)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// 5) Geofence keras (di luar radius dan bukan dinas → tolak)
	if !onDuty && configs.Office != nil {
		distKm := helper.HaversineKm(req.Latitude, req.Longitude, configs.Office.Latitude, configs.Office.Longitude)
		if distKm*1000 > configs.Office.AllowedRadiusMeters {
			return helper.JsonError(c, fiber.StatusForbidden,
				fmt.Sprintf("Anda berada di luar radius kantor (%.0f m).", distKm*1000))
		}
	}

	// 6) Skor risiko: disimpan untuk review, tidak memblokir
	history, err := ctl.recentLogs(c, userID, 3)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	risk := service.ScoreCheckin(service.FraudInput{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Now:       now,
		OnDuty:    onDuty,
		Office:    configs.Office,
		History:   history,
	})
	if risk.Score >= 80 {
		log.Printf("[WARN] Check-in berisiko tinggi user=%s score=%d note=%q", userID, risk.Score, risk.Note())
	}

	// 7) Jam minimal check-in 08:00
	if now.Before(time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, jakartaLoc)) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Check-in belum dibuka, mulai pukul 08:00.")
	}

	// 8) Lewat 09:30 dihitung terlambat
	status := model.StatusTepatWaktu
	if now.After(time.Date(now.Year(), now.Month(), now.Day(), 9, 30, 0, 0, jakartaLoc)) {
		status = model.StatusTerlambat
	}

	entry := model.AttendanceLogModel{
		AttendanceLogUserID:      userID,
		AttendanceLogDay:         today,
		AttendanceLogCheckInTime: now,
		AttendanceLogStatus:      status,
		AttendanceLogLatitude:    &req.Latitude,
		AttendanceLogLongitude:   &req.Longitude,
		AttendanceLogRiskScore:   risk.Score,
	}
	if note := risk.Note(); note != "" {
		entry.AttendanceLogRiskNote = &note
	}
	if device := strings.TrimSpace(firstNonEmpty(req.DeviceInfo, c.Get("User-Agent"))); device != "" {
		entry.AttendanceLogDeviceInfo = &device
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&entry).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Anda sudah melakukan check-in hari ini.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Check-in berhasil", dto.CheckInResponse{
		AttendanceLogID: entry.AttendanceLogID.String(),
		Day:             today.Format("2006-01-02"),
		CheckInTime:     entry.AttendanceLogCheckInTime,
		Status:          entry.AttendanceLogStatus,
		RiskScore:       entry.AttendanceLogRiskScore,
		RiskNote:        risk.Note(),
	})
}

// POST /api/u/attendance/check-out
func (ctl *CheckinController) CheckOut(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	now := time.Now().In(jakartaLoc)
	today := startOfDay(now)

	// 1) Akhir pekan
	if isWeekend(now) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Hari ini akhir pekan, tidak perlu absen.")
	}

	// 2) Hari libur nasional/kantor
	var hol holidayModel.HolidayModel
	err = ctl.DB.WithContext(c.Context()).
		Where("holiday_date = ?", today.Format("2006-01-02")).
		First(&hol).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, fmt.Sprintf("Hari ini libur: %s.", hol.HolidayName))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// 3) Jam minimal check-out 16:00
	if beforeCheckOutOpen(now) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Check-out baru bisa dilakukan mulai pukul 16:00.")
	}

	var entry model.AttendanceLogModel
	err = ctl.DB.WithContext(c.Context()).
		Where("attendance_log_user_id = ? AND attendance_log_day = ?", userID, today.Format("2006-01-02")).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Anda belum check-in hari ini.")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if entry.AttendanceLogCheckOutTime != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Anda sudah check-out hari ini.")
	}

	if err := ctl.DB.WithContext(c.Context()).
		Model(&entry).
		Update("attendance_log_check_out_time", now).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Check-out berhasil", fiber.Map{
		"attendance_log_id": entry.AttendanceLogID,
		"check_out_time":    now,
	})
}

// GET /api/u/attendance/history?month=&year=
func (ctl *CheckinController) History(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	now := time.Now().In(jakartaLoc)
	month, _ := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
	year, _ := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
	if month < 1 || month > 12 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Bulan tidak valid")
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, jakartaLoc)
	next := first.AddDate(0, 1, 0)

	var logs []model.AttendanceLogModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("attendance_log_user_id = ?", userID).
		Where("attendance_log_day >= ? AND attendance_log_day < ?",
			first.Format("2006-01-02"), next.Format("2006-01-02")).
		Order("attendance_log_day ASC").
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Riwayat absensi berhasil diambil", fiber.Map{
		"month": month,
		"year":  year,
		"logs":  logs,
	})
}

func (ctl *CheckinController) recentLogs(c *fiber.Ctx, userID uuid.UUID, limit int) ([]model.AttendanceLogModel, error) {
	var logs []model.AttendanceLogModel
	err := ctl.DB.WithContext(c.Context()).
		Where("attendance_log_user_id = ?", userID).
		Order("attendance_log_check_in_time DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
