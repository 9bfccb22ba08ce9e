// controllers/staff.go
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salonshop-backend/models"
	"salonshop-backend/services"
	"salonshop-backend/utils"
)

type StaffController struct {
	staff *services.StaffService
}

func NewStaffController(staff *services.StaffService) *StaffController {
	return &StaffController{staff: staff}
}

type CreateStaffInput struct {
	FullName     string              `json:"full_name" binding:"required"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone" binding:"required"`
	Role         string              `json:"role" binding:"required"`
	WorkingDays  models.StringList   `json:"working_days"`
	ShiftTimings models.ShiftTimings `json:"shift_timings"`
	Status       string              `json:"status"`
}

type UpdateStaffInput struct {
	FullName     *string              `json:"full_name"`
	Email        *string              `json:"email"`
	Phone        *string              `json:"phone"`
	Role         *string              `json:"role"`
	WorkingDays  *models.StringList   `json:"working_days"`
	ShiftTimings *models.ShiftTimings `json:"shift_timings"`
	Status       *string              `json:"status"`
}

// CreateStaff adds a staff member (Admin only)
func (sc *StaffController) CreateStaff(c *gin.Context) {
	var input CreateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	staff, err := sc.staff.Create(c.Request.Context(), services.CreateStaffInput{
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		Role:         input.Role,
		WorkingDays:  input.WorkingDays,
		ShiftTimings: input.ShiftTimings,
		Status:       input.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Staff created successfully",
		"staff":   staff,
	})
}

// GetAllStaff lists staff; soft-deleted records are excluded by default
// (Admin only)
func (sc *StaffController) GetAllStaff(c *gin.Context) {
	filters := services.StaffFilters{
		IncludeInactive: strings.EqualFold(c.DefaultQuery("include_inactive", "false"), "true"),
		IncludeDeleted:  strings.EqualFold(c.DefaultQuery("include_deleted", "false"), "true"),
		Status:          c.Query("status"),
	}

	staff, err := sc.staff.List(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"staff": staff,
		"total": len(staff),
	})
}

// GetStaff returns one staff member (Admin only)
func (sc *StaffController) GetStaff(c *gin.Context) {
	staffID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID")
		return
	}

	staff, err := sc.staff.Get(c.Request.Context(), staffID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

// UpdateStaff edits a staff member (Admin only)
func (sc *StaffController) UpdateStaff(c *gin.Context) {
	staffID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID")
		return
	}

	var input UpdateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	staff, err := sc.staff.Update(c.Request.Context(), staffID, services.UpdateStaffInput{
		FullName:     input.FullName,
		Email:        input.Email,
		Phone:        input.Phone,
		Role:         input.Role,
		WorkingDays:  input.WorkingDays,
		ShiftTimings: input.ShiftTimings,
		Status:       input.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Staff updated successfully",
		"staff":   staff,
	})
}

// DeactivateStaff soft deletes a staff member (Admin only)
func (sc *StaffController) DeactivateStaff(c *gin.Context) {
	staffID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID")
		return
	}

	alreadyDeleted, err := sc.staff.Deactivate(c.Request.Context(), staffID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if alreadyDeleted {
		c.JSON(http.StatusOK, gin.H{"message": "Staff is already deactivated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff deactivated successfully (soft delete)"})
}
