package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/leave/model"
	helper "absensiku_backend/internals/helpers"
)

type LeaveAdminController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLeaveAdminController(db *gorm.DB) *LeaveAdminController {
	return &LeaveAdminController{DB: db, Validator: validator.New()}
}

// GET /api/a/leave-requests?status=&type=&user_id=&page=&per_page=
func (ctl *LeaveAdminController) Index(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&model.LeaveRequestModel{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		tx = tx.Where("leave_request_status = ?", status)
	}
	if leaveType := strings.TrimSpace(c.Query("type")); leaveType != "" {
		tx = tx.Where("leave_request_type = ?", leaveType)
	}
	if raw := strings.TrimSpace(c.Query("user_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
		}
		tx = tx.Where("leave_request_user_id = ?", id)
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
	return helper.JsonList(c, "Daftar pengajuan izin berhasil diambil", items, &pagination)
}

// PATCH /api/a/leave-requests/:id/approve
func (ctl *LeaveAdminController) Approve(c *fiber.Ctx) error {
	return ctl.review(c, model.LeaveStatusApproved, "Pengajuan izin disetujui")
}

// PATCH /api/a/leave-requests/:id/reject
func (ctl *LeaveAdminController) Reject(c *fiber.Ctx) error {
	return ctl.review(c, model.LeaveStatusRejected, "Pengajuan izin ditolak")
}

func (ctl *LeaveAdminController) review(c *fiber.Ctx, status model.LeaveStatus, okMsg string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	var entry model.LeaveRequestModel
	err = ctl.DB.WithContext(c.Context()).
		Where("leave_request_id = ?", id).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengajuan izin tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if entry.LeaveRequestStatus != model.LeaveStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "Pengajuan sudah pernah diproses")
	}

	updates := map[string]any{
		"leave_request_status":      status,
		"leave_request_approved_by": adminID,
	}
	if err := ctl.DB.WithContext(c.Context()).Model(&entry).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, okMsg, entry)
}
