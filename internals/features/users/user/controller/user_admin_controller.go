package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authModel "absensiku_backend/internals/features/users/auth/model"
	"absensiku_backend/internals/features/users/user/dto"
	"absensiku_backend/internals/features/users/user/model"
	helper "absensiku_backend/internals/helpers"
)

type UserAdminController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db, Validator: validator.New()}
}

func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "SQLSTATE 23505")
}

// GET /api/a/users?q=&role=&status=&position=&page=&per_page=
func (ctl *UserAdminController) Index(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&model.UserModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		pattern := fmt.Sprintf("%%%s%%", q)
		tx = tx.Where("user_name ILIKE ? OR user_email ILIKE ?", pattern, pattern)
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		tx = tx.Where("user_role = ?", role)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		tx = tx.Where("user_status = ?", status)
	}
	if position := strings.TrimSpace(c.Query("position")); position != "" {
		tx = tx.Where("user_position ILIKE ?", fmt.Sprintf("%%%s%%", position))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var users []model.UserModel
	if err := tx.
		Order("user_name ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar karyawan berhasil diambil", users, &pagination)
}

// GET /api/a/users/positions — daftar posisi unik untuk dropdown filter
func (ctl *UserAdminController) Positions(c *fiber.Ctx) error {
	var positions []string
	if err := ctl.DB.WithContext(c.Context()).
		Model(&model.UserModel{}).
		Distinct("user_position").
		Order("user_position ASC").
		Pluck("user_position", &positions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Daftar posisi berhasil diambil", positions)
}

// GET /api/a/users/:id
func (ctl *UserAdminController) Show(c *fiber.Ctx) error {
	user, ok := ctl.findUser(c)
	if !ok {
		return nil
	}
	return helper.JsonOK(c, "Detail karyawan berhasil diambil", user)
}

// POST /api/a/users
func (ctl *UserAdminController) Store(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	role := req.Role
	if role == "" {
		role = "employee"
	}

	user := model.UserModel{
		UserName:     strings.TrimSpace(req.Name),
		UserEmail:    strings.ToLower(strings.TrimSpace(req.Email)),
		UserPassword: string(hash),
		UserPhone:    req.Phone,
		UserRole:     role,
		UserPosition: strings.TrimSpace(req.Position),
		UserAddress:  req.Address,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Karyawan berhasil ditambahkan", user)
}

// PUT /api/a/users/:id
func (ctl *UserAdminController) Update(c *fiber.Ctx) error {
	user, ok := ctl.findUser(c)
	if !ok {
		return nil
	}

	var req dto.UpdateUserRequest
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
	if req.Email != nil {
		updates["user_email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		updates["user_phone"] = *req.Phone
	}
	if req.Role != nil {
		updates["user_role"] = *req.Role
	}
	if req.Position != nil {
		updates["user_position"] = strings.TrimSpace(*req.Position)
	}
	if req.Status != nil {
		updates["user_status"] = *req.Status
	}
	if req.Address != nil {
		updates["user_address"] = *req.Address
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctl.DB.WithContext(c.Context()).Model(&user).Updates(updates).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Karyawan berhasil diperbarui", user)
}

// PATCH /api/a/users/:id/password — reset password oleh admin
func (ctl *UserAdminController) SetPassword(c *fiber.Ctx) error {
	user, ok := ctl.findUser(c)
	if !ok {
		return nil
	}

	var req dto.SetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := ctl.DB.WithContext(c.Context()).
		Model(&user).
		Update("user_password", string(hash)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Password berhasil direset", nil)
}

// DELETE /api/a/users/:id — soft delete + nonaktifkan akun
func (ctl *UserAdminController) Destroy(c *fiber.Ctx) error {
	user, ok := ctl.findUser(c)
	if !ok {
		return nil
	}

	tx := ctl.DB.WithContext(c.Context())
	if err := tx.Model(&user).Update("user_status", "inactive").Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := tx.Delete(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Karyawan berhasil dihapus", fiber.Map{"user_id": user.UserID})
}

// POST /api/a/users/:id/revoke-sessions
// Token aktif tidak bisa dicabut satu per satu (stateless JWT); akun
// dinonaktifkan sementara sehingga AuthMiddleware menolak semua tokennya,
// dan token yang kebetulan kita ketahui masuk blacklist.
func (ctl *UserAdminController) RevokeSessions(c *fiber.Ctx) error {
	user, ok := ctl.findUser(c)
	if !ok {
		return nil
	}

	if err := ctl.DB.WithContext(c.Context()).
		Model(&user).
		Update("user_status", "inactive").Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// bersihkan entri blacklist lama milik siapa pun yang sudah kadaluarsa
	ctl.DB.WithContext(c.Context()).
		Where("token_blacklist_expired_at < NOW()").
		Delete(&authModel.TokenBlacklist{})

	return helper.JsonUpdated(c, "Semua sesi user dicabut, akun dinonaktifkan", fiber.Map{
		"user_id": user.UserID,
	})
}

// findUser menulis response error sendiri; ok=false berarti handler tinggal
// return nil.
func (ctl *UserAdminController) findUser(c *fiber.Ctx) (model.UserModel, bool) {
	var user model.UserModel

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
		return user, false
	}

	err = ctl.DB.WithContext(c.Context()).
		Where("user_id = ?", id).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_ = helper.JsonError(c, fiber.StatusNotFound, "Karyawan tidak ditemukan")
		return user, false
	}
	if err != nil {
		_ = helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		return user, false
	}
	return user, true
}
