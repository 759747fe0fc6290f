package handlers

import (
	"errors"
	"net/http"

	"shiv_accounts/internal/domain/entities"
	"shiv_accounts/internal/usecase"
	"shiv_accounts/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

func mapError(err error) *pkg.AppError {
	var verr *entities.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_FAILED", "One or more fields are invalid", err, http.StatusBadRequest).WithFields(verr.Fields)
	case errors.Is(err, usecase.ErrInvalidRecordID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid record id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidContactRole):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Contact kind must be customer or vendor", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRecordNotFound):
		return pkg.NewDomainErrorSimple("RECORD_NOT_FOUND", "Record not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidStatusTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", "Status change not allowed", err, http.StatusConflict)
	case errors.Is(err, entities.ErrOrderLocked):
		return pkg.NewDomainError("ORDER_LOCKED", "Completed and cancelled orders cannot be changed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrUnknownReport):
		return pkg.NewDomainErrorSimple("REPORT_NOT_FOUND", "Unknown report", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, log *logrus.Entry, err error) {
	appErr := mapError(err)
	entry := log.WithFields(logrus.Fields{"status": appErr.HTTPStatus, "code": appErr.Code})
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		entry.WithError(err).Error("request failed")
	} else {
		entry.WithError(err).Debug("request rejected")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeInvalidPayload(c *gin.Context, log *logrus.Entry, err error) {
	log.WithError(err).Debug("invalid payload")
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}
