package dto

type ExportRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
	Branch    string `json:"branch"     validate:"required,min=1"`
}
