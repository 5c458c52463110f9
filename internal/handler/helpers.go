package handler

import (
	"net/http"
	"strings"

	"github.com/redromiee/bag-tracker/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails — the
// caller should return immediately without writing another response.
//
// Application-level failures are carried in the body with HTTP 200; the
// status field is the contract, not the HTTP code.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		writeError(c, apierror.New(apierror.CodeValidation, "invalid JSON body"))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var fields []string
		for _, fe := range err.(validator.ValidationErrors) {
			fields = append(fields, fe.Field())
		}
		writeError(c, apierror.New(apierror.CodeValidation, "invalid or missing fields: "+strings.Join(fields, ", ")))
		return false
	}
	return true
}

func writeError(c *gin.Context, err error) {
	c.JSON(http.StatusOK, apierror.Body(err))
}
