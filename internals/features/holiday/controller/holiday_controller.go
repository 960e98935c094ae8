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

	"absensiku_backend/internals/features/holiday/dto"
	"absensiku_backend/internals/features/holiday/model"
	"absensiku_backend/internals/features/holiday/service"
	helper "absensiku_backend/internals/helpers"
)

type HolidayController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewHolidayController(db *gorm.DB) *HolidayController {
	return &HolidayController{DB: db, Validator: validator.New()}
}

// GET /api/u/holidays?year=
func (ctl *HolidayController) Index(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())

	var items []model.HolidayModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("holiday_date >= ? AND holiday_date <= ?",
			time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
			time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC).Format("2006-01-02")).
		Order("holiday_date ASC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Daftar hari libur berhasil diambil", fiber.Map{
		"year":     year,
		"holidays": items,
	})
}

// POST /api/a/holidays
func (ctl *HolidayController) Store(c *fiber.Ctx) error {
	var req dto.CreateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	day, _ := time.Parse("2006-01-02", req.Date)
	entry := model.HolidayModel{
		HolidayDate: datatypes.Date(day),
		HolidayName: strings.TrimSpace(req.Name),
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&entry).Error; err != nil {
		if strings.Contains(err.Error(), "SQLSTATE 23505") {
			return helper.JsonError(c, fiber.StatusConflict, "Tanggal tersebut sudah terdaftar sebagai hari libur")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Hari libur berhasil ditambahkan", entry)
}

// DELETE /api/a/holidays/:id
func (ctl *HolidayController) Destroy(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var entry model.HolidayModel
	err = ctl.DB.WithContext(c.Context()).
		Where("holiday_id = ?", id).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Hari libur tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Delete(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Hari libur berhasil dihapus", entry)
}

// POST /api/a/holidays/import?year=
// Tarik libur nasional Indonesia dari Google Calendar.
func (ctl *HolidayController) Import(c *fiber.Ctx) error {
	year := c.QueryInt("year", time.Now().Year())

	imported, err := service.ImportIndonesianHolidays(ctl.DB.WithContext(c.Context()), year)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}

	return helper.JsonOK(c, "Import hari libur selesai", fiber.Map{
		"year":     year,
		"imported": imported,
	})
}
