package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/users/user/dto"
	"absensiku_backend/internals/features/users/user/model"
	helper "absensiku_backend/internals/helpers"
)

type ProfileController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db, Validator: validator.New()}
}

// GET /api/u/profile
func (ctl *ProfileController) Me(c *fiber.Ctx) error {
	user, ok := ctl.currentUser(c)
	if !ok {
		return nil
	}
	return helper.JsonOK(c, "Profil berhasil diambil", user)
}

// PUT /api/u/profile
func (ctl *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	user, ok := ctl.currentUser(c)
	if !ok {
		return nil
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["user_name"] = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		updates["user_phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["user_address"] = *req.Address
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctl.DB.WithContext(c.Context()).Model(&user).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Profil berhasil diperbarui", user)
}

// PATCH /api/u/profile/password
func (ctl *ProfileController) ChangePassword(c *fiber.Ctx) error {
	user, ok := ctl.currentUser(c)
	if !ok {
		return nil
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.OldPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Password lama salah")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := ctl.DB.WithContext(c.Context()).
		Model(&user).
		Update("user_password", string(hash)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Password berhasil diganti", nil)
}

func (ctl *ProfileController) currentUser(c *fiber.Ctx) (model.UserModel, bool) {
	var user model.UserModel

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		_ = helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
		return user, false
	}

	if err := ctl.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		_ = helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		return user, false
	}
	return user, true
}
