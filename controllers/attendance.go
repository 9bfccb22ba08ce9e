// controllers/attendance.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salonshop-backend/services"
	"salonshop-backend/utils"
)

type AttendanceController struct {
	attendance *services.AttendanceService
}

func NewAttendanceController(attendance *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendance: attendance}
}

type CheckInInput struct {
	StaffID     string `json:"staff_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	CheckInTime string `json:"check_in_time"`
}

type CheckOutInput struct {
	StaffID          string `json:"staff_id" binding:"required"`
	Date             string `json:"date" binding:"required"`
	CheckOutTime     string `json:"check_out_time"`
	AttendanceStatus string `json:"attendance_status"`
}

type UpdateAttendanceInput struct {
	CheckInTime      *string `json:"check_in_time"`
	CheckOutTime     *string `json:"check_out_time"`
	AttendanceStatus *string `json:"attendance_status"`
}

// CheckIn records a staff member's arrival; one per staff per day (Admin only)
func (ac *AttendanceController) CheckIn(c *gin.Context) {
	var input CheckInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	attendance, err := ac.attendance.CheckIn(c.Request.Context(), services.CheckInInput{
		StaffID:     input.StaffID,
		Date:        input.Date,
		CheckInTime: input.CheckInTime,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Check-in recorded successfully",
		"attendance": attendance,
	})
}

// CheckOut closes the day's attendance record (Admin only)
func (ac *AttendanceController) CheckOut(c *gin.Context) {
	var input CheckOutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	attendance, err := ac.attendance.CheckOut(c.Request.Context(), services.CheckOutInput{
		StaffID:          input.StaffID,
		Date:             input.Date,
		CheckOutTime:     input.CheckOutTime,
		AttendanceStatus: input.AttendanceStatus,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Check-out recorded successfully",
		"attendance": attendance,
	})
}

// GetAttendance lists attendance records with filters (Admin only)
func (ac *AttendanceController) GetAttendance(c *gin.Context) {
	records, err := ac.attendance.List(c.Request.Context(), services.AttendanceFilters{
		Date:      c.Query("date"),
		StaffID:   c.Query("staff_id"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attendance": records,
		"total":      len(records),
	})
}

// UpdateAttendance is the admin correction path (Admin only)
func (ac *AttendanceController) UpdateAttendance(c *gin.Context) {
	attendanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid attendance ID")
		return
	}

	var input UpdateAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	attendance, err := ac.attendance.Update(c.Request.Context(), attendanceID, services.UpdateAttendanceInput{
		CheckInTime:      input.CheckInTime,
		CheckOutTime:     input.CheckOutTime,
		AttendanceStatus: input.AttendanceStatus,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Attendance updated successfully",
		"attendance": attendance,
	})
}
