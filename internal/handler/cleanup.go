package handler

import (
	"net/http"

	"github.com/redromiee/bag-tracker/internal/apierror"
	"github.com/redromiee/bag-tracker/internal/dto"
	"github.com/redromiee/bag-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type CleanupHandler struct {
	svc       service.RetentionService
	secretKey string
}

func NewCleanupHandler(svc service.RetentionService, secretKey string) *CleanupHandler {
	return &CleanupHandler{svc: svc, secretKey: secretKey}
}

func (h *CleanupHandler) Cleanup(c *gin.Context) {
	var req dto.CleanupRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if req.SecretKey != h.secretKey {
		log.Warn().Str("ip", c.ClientIP()).Msg("cleanup rejected: bad secret key")
		writeError(c, apierror.New(apierror.CodeInvalidCredentials, "invalid secret key"))
		return
	}

	dryRun := true
	if req.DryRun != nil {
		dryRun = *req.DryRun
	}
	resp, err := h.svc.Run(c.Request.Context(), dryRun)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
