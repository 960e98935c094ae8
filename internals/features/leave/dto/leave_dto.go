package dto

type CreateLeaveRequest struct {
	Reason          string  `json:"reason"   validate:"required,min=5"`
	Duration        string  `json:"duration" validate:"required"`
	Type            string  `json:"type"     validate:"required,oneof=cuti sakit izin"`
	SupportFileName *string `json:"support_file_name,omitempty"`
}

type ReviewLeaveRequest struct {
	Note *string `json:"note,omitempty"`
}
