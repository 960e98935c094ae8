package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/attendance/recap/service"
	leaveController "absensiku_backend/internals/features/leave/controller"
	leaveModel "absensiku_backend/internals/features/leave/model"
	ondutyModel "absensiku_backend/internals/features/onduty/model"
	userModel "absensiku_backend/internals/features/users/user/model"
	helper "absensiku_backend/internals/helpers"
)

type RecapController struct {
	DB *gorm.DB
}

func NewRecapController(db *gorm.DB) *RecapController {
	return &RecapController{DB: db}
}

var jakartaLoc = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.Local
	}
	return loc
}()

func todayDate() time.Time {
	now := time.Now().In(jakartaLoc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func parsePeriod(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now().In(jakartaLoc)
	defStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	defEnd := defStart.AddDate(0, 1, -1)

	start := defStart
	end := defEnd
	var err error
	if raw := strings.TrimSpace(c.Query("start_date")); raw != "" {
		if start, err = time.Parse("2006-01-02", raw); err != nil {
			return start, end, errors.New("start_date harus YYYY-MM-DD")
		}
	}
	if raw := strings.TrimSpace(c.Query("end_date")); raw != "" {
		if end, err = time.Parse("2006-01-02", raw); err != nil {
			return start, end, errors.New("end_date harus YYYY-MM-DD")
		}
	}
	if end.Before(start) {
		return start, end, errors.New("end_date tidak boleh sebelum start_date")
	}
	return start, end, nil
}

func (ctl *RecapController) runRecap(c *fiber.Ctx, profile service.Profile, okMsg string) error {
	start, end, err := parsePeriod(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	filter := service.AggregateFilter{Query: strings.TrimSpace(c.Query("q"))}
	rows, err := service.Aggregate(ctl.DB.WithContext(c.Context()), start, end, todayDate(), profile, filter)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, okMsg, fiber.Map{
		"period_start": start.Format("2006-01-02"),
		"period_end":   end.Format("2006-01-02"),
		"profile":      profile,
		"rows":         rows,
	})
}

// GET /api/a/recap/attendance?start_date=&end_date=&q=
func (ctl *RecapController) AttendanceRecap(c *fiber.Ctx) error {
	return ctl.runRecap(c, service.ProfileAttendance, "Rekap kehadiran berhasil dihitung")
}

// GET /api/a/recap/leave?start_date=&end_date=&q=
func (ctl *RecapController) LeaveRecap(c *fiber.Ctx) error {
	return ctl.runRecap(c, service.ProfileLeave, "Rekap izin-absen berhasil dihitung")
}

// GET /api/a/recap/leave-days?start_date=&end_date=&q=
func (ctl *RecapController) LeaveDaysRecap(c *fiber.Ctx) error {
	return ctl.runRecap(c, service.ProfileLeaveDays, "Total hari izin berhasil dihitung")
}

// GET /api/a/recap/dashboard
// Ringkasan hari ini untuk kartu dashboard admin.
func (ctl *RecapController) DashboardSummary(c *fiber.Ctx) error {
	today := todayDate()

	rows, err := service.Aggregate(ctl.DB.WithContext(c.Context()), today, today, today,
		service.ProfileAttendance, service.AggregateFilter{})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	totals := map[string]int{
		service.BucketTepatWaktu: 0,
		service.BucketTerlambat:  0,
		service.BucketIzin:       0,
		service.BucketAlfa:       0,
	}
	for _, row := range rows {
		for k, v := range row.Buckets {
			totals[k] += v
		}
	}

	var pendingLeaves int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&leaveModel.LeaveRequestModel{}).
		Where("leave_request_status = ?", leaveModel.LeaveStatusPending).
		Count(&pendingLeaves).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	var pendingOnDuties int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&ondutyModel.OnDutyModel{}).
		Where("on_duty_status = ?", ondutyModel.OnDutyStatusPending).
		Count(&pendingOnDuties).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Ringkasan dashboard berhasil diambil", fiber.Map{
		"date":              today.Format("2006-01-02"),
		"attendance":        totals,
		"total_employees":   len(rows),
		"pending_leaves":    pendingLeaves,
		"pending_on_duties": pendingOnDuties,
	})
}

// GET /api/a/recap/employee/:user_id?month=&year=
// Detail satu karyawan: status per hari, bucket bulan itu, sisa cuti, dan
// grafik kehadiran 6 bulan terakhir.
func (ctl *RecapController) EmployeeMonthDetail(c *fiber.Ctx) error {
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

	detail, err := ctl.monthDetail(c, user, year, time.Month(month))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	usedCuti, err := leaveController.ApprovedAnnualLeaveDays(ctl.DB.WithContext(c.Context()), userID, year)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	graph, err := ctl.sixMonthGraph(c, user, year, time.Month(month))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	sisa := 12 - usedCuti // jatah cuti tahunan 12 hari
	if sisa < 0 {
		sisa = 0
	}

	return helper.JsonOK(c, "Detail karyawan berhasil diambil", fiber.Map{
		"user": fiber.Map{
			"user_id":       user.UserID,
			"user_name":     user.UserName,
			"user_position": user.UserPosition,
			"join_date":     user.JoinDate().Format("2006-01-02"),
		},
		"month":     month,
		"year":      year,
		"detail":    detail,
		"sisa_cuti": sisa,
		"graph":     graph,
	})
}

// GET /api/u/attendance/calendar?month=&year=
// Kalender status harian milik karyawan yang sedang login.
func (ctl *RecapController) MyCalendar(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	var user userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now().In(jakartaLoc)
	month := c.QueryInt("month", int(now.Month()))
	year := c.QueryInt("year", now.Year())
	if month < 1 || month > 12 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Bulan tidak valid")
	}

	detail, err := ctl.monthDetail(c, user, year, time.Month(month))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Kalender absensi berhasil diambil", fiber.Map{
		"month":  month,
		"year":   year,
		"detail": detail,
	})
}

type dayEntry struct {
	Day    string            `json:"day"`
	Status service.DayStatus `json:"status"`
}

func (ctl *RecapController) monthDetail(c *fiber.Ctx, user userModel.UserModel, year int, month time.Month) (fiber.Map, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	in, err := ctl.resolveInput(c, user, first, last)
	if err != nil {
		return nil, err
	}

	var days []dayEntry
	buckets := map[string]int{}
	service.EachDay(in, first, last, func(day time.Time, status service.DayStatus) {
		days = append(days, dayEntry{Day: day.Format("2006-01-02"), Status: status})
		buckets[string(status.Kind)]++
	})

	return fiber.Map{"days": days, "buckets": buckets}, nil
}

// sixMonthGraph menghitung persentase kehadiran per bulan untuk 6 bulan
// terakhir (termasuk bulan yang diminta).
func (ctl *RecapController) sixMonthGraph(c *fiber.Ctx, user userModel.UserModel, year int, month time.Month) ([]fiber.Map, error) {
	graph := make([]fiber.Map, 0, 6)
	anchor := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	for i := 5; i >= 0; i-- {
		first := anchor.AddDate(0, -i, 0)
		last := first.AddDate(0, 1, -1)

		in, err := ctl.resolveInput(c, user, first, last)
		if err != nil {
			return nil, err
		}

		buckets, row := service.AggregateOne(in, first, last, service.ProfileAttendance)
		present := buckets[service.BucketTepatWaktu] + buckets[service.BucketTerlambat]
		rate := 0.0
		if row.WorkingDays > 0 {
			rate = float64(present) / float64(row.WorkingDays) * 100
		}

		graph = append(graph, fiber.Map{
			"month":           first.Format("2006-01"),
			"working_days":    row.WorkingDays,
			"present":         present,
			"attendance_rate": rate,
		})
	}
	return graph, nil
}

func (ctl *RecapController) resolveInput(c *fiber.Ctx, user userModel.UserModel, start, end time.Time) (service.ResolveInput, error) {
	return service.LoadResolveInput(ctl.DB.WithContext(c.Context()), user, start, end, todayDate())
}
