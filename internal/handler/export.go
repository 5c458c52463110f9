package handler

import (
	"net/http"

	"github.com/redromiee/bag-tracker/internal/dto"
	"github.com/redromiee/bag-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct{ svc service.ExportService }

func NewExportHandler(svc service.ExportService) *ExportHandler { return &ExportHandler{svc: svc} }

// Download streams the generated workbook; every failure stays a JSON body.
func (h *ExportHandler) Download(c *gin.Context) {
	var req dto.ExportRequest
	if !bindAndValidate(c, &req) {
		return
	}
	file, err := h.svc.ExportRange(c.Request.Context(), req.StartDate, req.EndDate, req.Branch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	c.Data(http.StatusOK, xlsxContentType, file.Content)
}
