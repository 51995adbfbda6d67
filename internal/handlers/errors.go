// internal/handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/i18n"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/services"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/utils"
)

// respondError maps a service error onto the error envelope.
func respondError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)

	var resourceErr *services.ResourceError
	isResource := errors.As(err, &resourceErr)

	switch {
	case utils.IsValidationError(err):
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	case isResource && errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, resourceErr.Resource)
	case isResource && errors.Is(err, services.ErrConflict):
		utils.ConflictResponse(c, i18n.T(lang, resourceErr.Resource+".exists"))
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidCredentials))
	case errors.Is(err, services.ErrWithdrawn):
		utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyMemberWithdrawn))
	case errors.Is(err, services.ErrStorageUnavailable):
		utils.ServiceUnavailableResponse(c, i18n.T(lang, i18n.KeyStorageUnavailable))
	case errors.Is(err, services.ErrInvalidRequest):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileInvalid), err.Error())
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.Request.URL.Path,
		}).Error("Request failed")
		utils.InternalErrorResponse(c, "")
	}
}

// bindJSON decodes and validates a request body, answering 400 on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	lang := utils.GetLangFromContext(c)

	if err := c.ShouldBindJSON(req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return false
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return false
	}
	return true
}

// requireQuery reads a mandatory query parameter, answering 400 when it is absent.
func requireQuery(c *gin.Context, name string) (string, bool) {
	value := c.Query(name)
	if value == "" {
		utils.MissingParamResponse(c, name)
		return "", false
	}
	return value, true
}

// classificationCode reads the caller's code set by the auth middleware.
func classificationCode(c *gin.Context) (string, bool) {
	code, ok := utils.GetClassificationCodeFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
	}
	return code, ok
}
