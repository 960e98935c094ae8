package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/constants"
	"absensiku_backend/internals/features/attendance/checkin/dto"
	"absensiku_backend/internals/features/attendance/checkin/model"
	userModel "absensiku_backend/internals/features/users/user/model"
	helper "absensiku_backend/internals/helpers"
)

type CheckinAdminController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCheckinAdminController(db *gorm.DB) *CheckinAdminController {
	return &CheckinAdminController{DB: db, Validator: validator.New()}
}

// GET /api/a/attendance/logs?user_id=&status=&min_risk=&start_date=&end_date=&page=&per_page=
func (ctl *CheckinAdminController) Logs(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&model.AttendanceLogModel{})

	if raw := strings.TrimSpace(c.Query("user_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
		}
		tx = tx.Where("attendance_log_user_id = ?", id)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		tx = tx.Where("attendance_log_status = ?", status)
	}
	if minRisk := c.QueryInt("min_risk", 0); minRisk > 0 {
		tx = tx.Where("attendance_log_risk_score >= ?", minRisk)
	}
	if start := strings.TrimSpace(c.Query("start_date")); start != "" {
		tx = tx.Where("attendance_log_day >= ?", start)
	}
	if end := strings.TrimSpace(c.Query("end_date")); end != "" {
		tx = tx.Where("attendance_log_day <= ?", end)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var logs []model.AttendanceLogModel
	if err := tx.
		Order("attendance_log_day DESC, attendance_log_check_in_time DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar log absensi berhasil diambil", logs, &pagination)
}

// GET /api/a/attendance/daily?date=
// Papan harian: semua karyawan aktif + log hari tsb (kalau ada).
func (ctl *CheckinAdminController) DailyAttendance(c *fiber.Ctx) error {
	dateStr := strings.TrimSpace(c.Query("date", time.Now().In(jakartaLoc).Format("2006-01-02")))
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	var users []userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_role = ?", constants.RoleEmployee).
		Where("user_status = ?", constants.StatusActive).
		Order("user_name ASC").
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var logs []model.AttendanceLogModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("attendance_log_day = ?", day.Format("2006-01-02")).
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	logByUser := make(map[uuid.UUID]*model.AttendanceLogModel, len(logs))
	for i := range logs {
		logByUser[logs[i].AttendanceLogUserID] = &logs[i]
	}

	type row struct {
		UserID       uuid.UUID                 `json:"user_id"`
		UserName     string                    `json:"user_name"`
		UserPosition string                    `json:"user_position"`
		Log          *model.AttendanceLogModel `json:"log,omitempty"`
	}
	rows := make([]row, 0, len(users))
	checkedIn := 0
	for _, u := range users {
		l := logByUser[u.UserID]
		if l != nil {
			checkedIn++
		}
		rows = append(rows, row{
			UserID:       u.UserID,
			UserName:     u.UserName,
			UserPosition: u.UserPosition,
			Log:          l,
		})
	}

	return helper.JsonOK(c, "Absensi harian berhasil diambil", fiber.Map{
		"date":        day.Format("2006-01-02"),
		"total_users": len(users),
		"checked_in":  checkedIn,
		"not_yet":     len(users) - checkedIn,
		"rows":        rows,
	})
}

// DELETE /api/a/attendance/reset-today/:user_id
// Reset administratif: hapus log hari ini agar karyawan bisa check-in ulang.
func (ctl *CheckinAdminController) ResetToday(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}

	today := startOfDay(time.Now().In(jakartaLoc))

	var entry model.AttendanceLogModel
	err = ctl.DB.WithContext(c.Context()).
		Where("attendance_log_user_id = ? AND attendance_log_day = ?", userID, today.Format("2006-01-02")).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Tidak ada absensi hari ini untuk user tersebut")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Absensi hari ini berhasil direset", fiber.Map{
		"user_id": userID,
		"day":     today.Format("2006-01-02"),
	})
}

// POST /api/a/attendance/manual
// Koreksi manual admin: upsert log untuk (user, hari) tertentu.
func (ctl *CheckinAdminController) ManualUpsert(c *fiber.Ctx) error {
	var req dto.ManualAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	userID, _ := uuid.Parse(req.UserID)
	day, _ := time.Parse("2006-01-02", req.Day)

	checkIn, err := time.ParseInLocation("2006-01-02 15:04", req.Day+" "+req.CheckInTime, jakartaLoc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format check_in_time harus HH:MM")
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	note := "Input manual oleh admin."
	if req.Note != nil && strings.TrimSpace(*req.Note) != "" {
		note = strings.TrimSpace(*req.Note)
	}

	var entry model.AttendanceLogModel
	err = ctl.DB.WithContext(c.Context()).
		Where("attendance_log_user_id = ? AND attendance_log_day = ?", userID, day.Format("2006-01-02")).
		First(&entry).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry = model.AttendanceLogModel{
			AttendanceLogUserID:      userID,
			AttendanceLogDay:         day,
			AttendanceLogCheckInTime: checkIn,
			AttendanceLogStatus:      req.Status,
			AttendanceLogRiskNote:    &note,
		}
		if err := ctl.DB.WithContext(c.Context()).Create(&entry).Error; err != nil {
			if isDuplicateKey(err) {
				return helper.JsonError(c, fiber.StatusConflict, "Log untuk hari tersebut sudah ada")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonCreated(c, "Absensi manual berhasil dibuat", entry)
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	default:
		updates := map[string]any{
			"attendance_log_check_in_time": checkIn,
			"attendance_log_status":        req.Status,
			"attendance_log_risk_note":     note,
		}
		if err := ctl.DB.WithContext(c.Context()).Model(&entry).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonUpdated(c, "Absensi manual berhasil diperbarui", entry)
	}
}
