// controllers/booking.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salonshop-backend/services"
	"salonshop-backend/utils"
)

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

type CreateBookingInput struct {
	ServiceID string `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	TimeSlot  string `json:"time_slot" binding:"required"`
	Notes     string `json:"notes"`
}

type UpdateBookingStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// CreateBooking books a slot (Customer only)
func (bc *BookingController) CreateBooking(c *gin.Context) {
	customerID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid token claims")
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := bc.bookings.Create(c.Request.Context(), customerID, services.CreateBookingInput{
		ServiceID: input.ServiceID,
		Date:      input.Date,
		TimeSlot:  input.TimeSlot,
		Notes:     input.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// GetMyBookings lists the logged-in customer's bookings
func (bc *BookingController) GetMyBookings(c *gin.Context) {
	customerID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid token claims")
		return
	}

	bookings, err := bc.bookings.ListForCustomer(c.Request.Context(), customerID, c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    len(bookings),
	})
}

// CancelBooking cancels the customer's own still-future booking
func (bc *BookingController) CancelBooking(c *gin.Context) {
	customerID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid token claims")
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	if _, err := bc.bookings.Cancel(c.Request.Context(), bookingID, customerID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}

// GetAllBookings lists bookings with optional filters (Admin only)
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	bookings, err := bc.bookings.List(c.Request.Context(), services.BookingFilters{
		Status:    c.Query("status"),
		Date:      c.Query("date"),
		ServiceID: c.Query("service_id"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    len(bookings),
	})
}

// GetBooking returns booking details (Admin only)
func (bc *BookingController) GetBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	booking, err := bc.bookings.Get(c.Request.Context(), bookingID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// UpdateBookingStatus sets any of the four statuses; admin transitions are
// deliberately unrestricted (Admin only)
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var input UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Status is required")
		return
	}

	booking, oldStatus, err := bc.bookings.SetStatus(c.Request.Context(), bookingID, input.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Booking status updated to " + booking.Status,
		"old_status": oldStatus,
		"new_status": booking.Status,
	})
}
