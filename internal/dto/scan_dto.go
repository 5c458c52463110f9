package dto

import "github.com/redromiee/bag-tracker/internal/model"

type ScanRequest struct {
	BinID    string `json:"bin_id"    validate:"required,min=1"`
	BagID    string `json:"bag_id"    validate:"required,min=1"`
	ScanType string `json:"scan_type" validate:"required,oneof=FWD RTO"`
}

type ScanResponse struct {
	Status string           `json:"status"`
	Data   model.ScanRecord `json:"data"`
}
