package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/onduty/dto"
	"absensiku_backend/internals/features/onduty/model"
	helper "absensiku_backend/internals/helpers"
)

type OnDutyController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewOnDutyController(db *gorm.DB) *OnDutyController {
	return &OnDutyController{DB: db, Validator: validator.New()}
}

// POST /api/u/on-duties
func (ctl *OnDutyController) Store(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	var req dto.CreateOnDutyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if end.Before(start) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal selesai tidak boleh sebelum tanggal mulai")
	}

	// Satu pengajuan aktif per user per tanggal mulai
	var count int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&model.OnDutyModel{}).
		Where("on_duty_user_id = ?", userID).
		Where("on_duty_start_date = ?", req.StartDate).
		Where("on_duty_status IN ?", []model.OnDutyStatus{model.OnDutyStatusPending, model.OnDutyStatusApproved}).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.JsonValidationError(c, map[string][]string{
			"start_date": {"Sudah ada pengajuan dinas aktif untuk tanggal mulai tersebut"},
		})
	}

	entry := model.OnDutyModel{
		OnDutyUserID:    userID,
		OnDutyStartDate: datatypes.Date(start),
		OnDutyEndDate:   datatypes.Date(end),
		OnDutyReason:    strings.TrimSpace(req.Reason),
		OnDutyLocation:  req.Location,
		OnDutyStatus:    model.OnDutyStatusPending,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Pengajuan dinas berhasil dibuat", entry)
}

// GET /api/u/on-duties
func (ctl *OnDutyController) MyRequests(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	var items []model.OnDutyModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("on_duty_user_id = ?", userID).
		Order("on_duty_created_at DESC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Pengajuan dinas berhasil diambil", items)
}

// GET /api/a/on-duties?status=&page=&per_page=
func (ctl *OnDutyController) Index(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&model.OnDutyModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		tx = tx.Where("on_duty_status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var items []model.OnDutyModel
	if err := tx.
		Order("on_duty_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Ringkasan jumlah per status untuk kartu dashboard
	type statusCount struct {
		Status string `json:"status"`
		Count  int64  `json:"count"`
	}
	var stats []statusCount
	if err := ctl.DB.WithContext(c.Context()).
		Model(&model.OnDutyModel{}).
		Select("on_duty_status AS status, COUNT(*) AS count").
		Group("on_duty_status").
		Scan(&stats).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar pengajuan dinas berhasil diambil", fiber.Map{
		"items": items,
		"stats": stats,
	}, &pagination)
}

// PATCH /api/a/on-duties/:id/approve
func (ctl *OnDutyController) Approve(c *fiber.Ctx) error {
	return ctl.review(c, model.OnDutyStatusApproved, "Pengajuan dinas disetujui")
}

// PATCH /api/a/on-duties/:id/reject
func (ctl *OnDutyController) Reject(c *fiber.Ctx) error {
	return ctl.review(c, model.OnDutyStatusRejected, "Pengajuan dinas ditolak")
}

func (ctl *OnDutyController) review(c *fiber.Ctx, status model.OnDutyStatus, okMsg string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	var entry model.OnDutyModel
	err = ctl.DB.WithContext(c.Context()).
		Where("on_duty_id = ?", id).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengajuan dinas tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if entry.OnDutyStatus != model.OnDutyStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "Pengajuan sudah pernah diproses")
	}

	updates := map[string]any{
		"on_duty_status":      status,
		"on_duty_approved_by": adminID,
	}
	if err := ctl.DB.WithContext(c.Context()).Model(&entry).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, okMsg, entry)
}

// DELETE /api/a/on-duties/:id
func (ctl *OnDutyController) Destroy(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var entry model.OnDutyModel
	err = ctl.DB.WithContext(c.Context()).
		Where("on_duty_id = ?", id).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengajuan dinas tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Pengajuan dinas berhasil dihapus", entry)
}
