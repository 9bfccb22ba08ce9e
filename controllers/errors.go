package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salonshop-backend/services"
	"salonshop-backend/utils"
)

// respondServiceError maps domain errors to HTTP status codes. Anything
// unrecognized is an internal error and the detail stays out of the response.
func respondServiceError(c *gin.Context, err error) {
	var code int
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrServiceInactive),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrPastBooking):
		code = http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, services.ErrSlotTaken),
		errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrAlreadyCheckedIn):
		code = http.StatusConflict
	case errors.Is(err, services.ErrStaffDeleted):
		code = http.StatusGone
	case errors.Is(err, services.ErrStoreUnavailable):
		code = http.StatusServiceUnavailable
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithError(c, code, err.Error())
}
