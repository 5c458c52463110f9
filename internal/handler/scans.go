package handler

import (
	"net/http"

	"github.com/redromiee/bag-tracker/internal/dto"
	"github.com/redromiee/bag-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type ScanHandler struct{ svc service.ScanService }

func NewScanHandler(svc service.ScanService) *ScanHandler { return &ScanHandler{svc: svc} }

func (h *ScanHandler) Record(c *gin.Context) {
	var req dto.ScanRequest
	if !bindAndValidate(c, &req) {
		return
	}
	rec, err := h.svc.RecordScan(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ScanResponse{Status: "success", Data: *rec})
}

func (h *ScanHandler) Delete(c *gin.Context) {
	var req dto.ScanRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.DeleteScan(c.Request.Context(), req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "scan deleted"})
}
