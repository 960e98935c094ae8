package dto

type CreateOnDutyRequest struct {
	StartDate string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string  `json:"end_date"   validate:"required,datetime=2006-01-02"`
	Reason    string  `json:"reason"     validate:"required,min=5"`
	Location  *string `json:"location,omitempty"`
}
