package handlers

import (
	"errors"
	"net/http"

	"codabs/services/appointment"
	"codabs/services/contact"
	"codabs/services/content"
	"codabs/services/user"
	"codabs/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error codes surfaced to clients. Admission rejections get their own code so
// frontends can tell an expected booking refusal from a validation mistake or
// an infrastructure failure.
const (
	codeValidation = "validation_error"
	codeAdmission  = "admission_rejected"
	codeNotFound   = "not_found"
	codeInternal   = "server_error"
	codeAuth       = "auth_error"
)

// respondError maps service errors onto HTTP responses. Validation and
// admission outcomes are 400s, unknown records 404s, failed credentials 401s;
// everything else is a dependency failure logged as a 500.
func respondError(c *gin.Context, err error) {
	var (
		apptValidation *appointment.ValidationError
		apptNotFound   *appointment.NotFoundError
		apptAdmission  *appointment.AdmissionError
		userValidation *user.ValidationError
		userNotFound   *user.NotFoundError
		userAuth       *user.AuthError
		cntValidation  *content.ValidationError
		cntNotFound    *content.NotFoundError
		ctValidation   *contact.ValidationError
	)

	switch {
	case errors.As(err, &apptAdmission):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeAdmission, "message": apptAdmission.Reason})
	case errors.As(err, &apptValidation), errors.As(err, &userValidation),
		errors.As(err, &cntValidation), errors.As(err, &ctValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": codeValidation, "message": err.Error()})
	case errors.As(err, &apptNotFound), errors.As(err, &userNotFound), errors.As(err, &cntNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "code": codeNotFound, "message": err.Error()})
	case errors.As(err, &userAuth):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "code": codeAuth, "message": err.Error()})
	default:
		utils.GetLogger().Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "code": codeInternal, "message": "Server Error"})
	}
}
