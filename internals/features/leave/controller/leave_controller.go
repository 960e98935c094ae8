package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/leave/dto"
	"absensiku_backend/internals/features/leave/model"
	helper "absensiku_backend/internals/helpers"
)

const annualLeaveQuota = 12 // jatah cuti tahunan per karyawan

type LeaveController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLeaveController(db *gorm.DB) *LeaveController {
	return &LeaveController{DB: db, Validator: validator.New()}
}

// POST /api/u/leave-requests
func (ctl *LeaveController) Store(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	var req dto.CreateLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Data baru harus terbaca sebagai rentang; data lama tetap ditoleransi
	// saat dibaca ulang lewat ParseLeaveDuration.
	if _, ok := model.ParseLeaveDuration(req.Duration); !ok {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Durasi harus berformat YYYY-MM-DD atau 'YYYY-MM-DD - YYYY-MM-DD'")
	}

	entry := model.LeaveRequestModel{
		LeaveRequestUserID:          userID,
		LeaveRequestReason:          strings.TrimSpace(req.Reason),
		LeaveRequestDuration:        strings.TrimSpace(req.Duration),
		LeaveRequestType:            model.LeaveType(req.Type),
		LeaveRequestStatus:          model.LeaveStatusPending,
		LeaveRequestSupportFileName: req.SupportFileName,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Pengajuan izin berhasil dibuat", entry)
}

// GET /api/u/leave-requests
func (ctl *LeaveController) MyRequests(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).
		Model(&model.LeaveRequestModel{}).
		Where("leave_request_user_id = ?", userID)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		tx = tx.Where("leave_request_status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var items []model.LeaveRequestModel
	if err := tx.
		Order("leave_request_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Pengajuan izin berhasil diambil", items, &pagination)
}

// GET /api/u/leave-requests/quota
// Sisa cuti tahunan = 12 − hari kerja cuti approved tahun berjalan (dihitung
// kasar per hari kalender di sini; perhitungan hari kerja ada di recap).
func (ctl *LeaveController) RemainingQuota(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	year := time.Now().Year()
	used, err := ApprovedAnnualLeaveDays(ctl.DB.WithContext(c.Context()), userID, year)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	remaining := annualLeaveQuota - used
	if remaining < 0 {
		remaining = 0
	}
	return helper.JsonOK(c, "Sisa cuti berhasil dihitung", fiber.Map{
		"year":      year,
		"quota":     annualLeaveQuota,
		"used":      used,
		"remaining": remaining,
	})
}

// ApprovedAnnualLeaveDays menjumlah hari kalender cuti (tipe "cuti") yang
// sudah approved dan jatuh di tahun tertentu. Durasi yang tidak terbaca
// dilewati, bukan digagalkan.
func ApprovedAnnualLeaveDays(db *gorm.DB, userID uuid.UUID, year int) (int, error) {
	var requests []model.LeaveRequestModel
	if err := db.
		Where("leave_request_user_id = ?", userID).
		Where("leave_request_type = ?", model.LeaveTypeCuti).
		Where("leave_request_status = ?", model.LeaveStatusApproved).
		Find(&requests).Error; err != nil {
		return 0, err
	}

	total := 0
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	for _, req := range requests {
		r, ok := req.Range()
		if !ok {
			continue
		}
		for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
			if d.Before(yearStart) || d.After(yearEnd) {
				continue
			}
			total++
		}
	}
	return total, nil
}
