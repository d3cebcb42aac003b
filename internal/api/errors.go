package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gymhub/internal/service"
)

// abortWithServiceError translates a service error into an HTTP status and
// aborts the request. Handlers only special-case errors when the generic
// mapping is wrong for their endpoint.
func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrUnknownDecision),
		errors.Is(err, service.ErrInvalidEquipmentStatus):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAuthenticationFailed):
		abortWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrAdminNotFound),
		errors.Is(err, service.ErrMemberNotFound),
		errors.Is(err, service.ErrTrainerNotFound),
		errors.Is(err, service.ErrPlanNotFound),
		errors.Is(err, service.ErrAnnouncementNotFound),
		errors.Is(err, service.ErrClassNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrClassFull),
		errors.Is(err, service.ErrAlreadyBooked),
		errors.Is(err, service.ErrNotBooked):
		abortWithError(c, http.StatusConflict, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
