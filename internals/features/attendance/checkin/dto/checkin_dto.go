package dto

import "time"

type CheckInRequest struct {
	Latitude   float64 `json:"latitude"  validate:"required,gte=-90,lte=90"`
	Longitude  float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	DeviceInfo string  `json:"device_info,omitempty"`
}

type CheckInResponse struct {
	AttendanceLogID string    `json:"attendance_log_id"`
	Day             string    `json:"day"`
	CheckInTime     time.Time `json:"check_in_time"`
	Status          string    `json:"status"`
	RiskScore       int       `json:"risk_score"`
	RiskNote        string    `json:"risk_note,omitempty"`
}

// ManualAttendanceRequest dipakai admin untuk koreksi absensi manual.
type ManualAttendanceRequest struct {
	UserID      string  `json:"user_id"      validate:"required,uuid"`
	Day         string  `json:"day"          validate:"required,datetime=2006-01-02"`
	CheckInTime string  `json:"check_in_time" validate:"required"`
	Status      string  `json:"status"       validate:"required,oneof='Tepat Waktu' 'Terlambat'"`
	Note        *string `json:"note,omitempty"`
}
