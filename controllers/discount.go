// controllers/discount.go
package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salonshop-backend/services"
	"salonshop-backend/utils"
)

type DiscountController struct {
	discounts *services.DiscountService
}

func NewDiscountController(discounts *services.DiscountService) *DiscountController {
	return &DiscountController{discounts: discounts}
}

type CreateDiscountInput struct {
	ServiceID     string  `json:"service_id" binding:"required"`
	DiscountType  string  `json:"discount_type" binding:"required"`
	DiscountValue float64 `json:"discount_value" binding:"required"`
	StartDate     string  `json:"start_date" binding:"required"`
	EndDate       string  `json:"end_date" binding:"required"`
}

type UpdateDiscountInput struct {
	DiscountType  *string  `json:"discount_type"`
	DiscountValue *float64 `json:"discount_value"`
	StartDate     *string  `json:"start_date"`
	EndDate       *string  `json:"end_date"`
	IsActive      *bool    `json:"is_active"`
}

// CreateDiscount opens a discount window for a service (Admin only)
func (dc *DiscountController) CreateDiscount(c *gin.Context) {
	var input CreateDiscountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	discount, err := dc.discounts.Create(c.Request.Context(), services.CreateDiscountInput{
		ServiceID:     input.ServiceID,
		DiscountType:  input.DiscountType,
		DiscountValue: input.DiscountValue,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Discount created successfully",
		"discount": discount,
	})
}

// GetDiscounts lists discounts (Admin only)
func (dc *DiscountController) GetDiscounts(c *gin.Context) {
	filters := services.DiscountFilters{
		ServiceID: c.Query("service_id"),
	}
	if isActive := c.Query("is_active"); isActive != "" {
		active := strings.EqualFold(isActive, "true")
		filters.IsActive = &active
	}

	discounts, err := dc.discounts.List(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"discounts": discounts,
		"total":     len(discounts),
	})
}

// GetDiscount returns one discount (Admin only)
func (dc *DiscountController) GetDiscount(c *gin.Context) {
	discountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid discount ID")
		return
	}

	discount, err := dc.discounts.Get(c.Request.Context(), discountID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"discount": discount})
}

// UpdateDiscount edits a discount window (Admin only)
func (dc *DiscountController) UpdateDiscount(c *gin.Context) {
	discountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid discount ID")
		return
	}

	var input UpdateDiscountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	discount, err := dc.discounts.Update(c.Request.Context(), discountID, services.UpdateDiscountInput{
		DiscountType:  input.DiscountType,
		DiscountValue: input.DiscountValue,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		IsActive:      input.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Discount updated successfully",
		"discount": discount,
	})
}

// DeleteDiscount disables a discount; records stay (Admin only)
func (dc *DiscountController) DeleteDiscount(c *gin.Context) {
	discountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid discount ID")
		return
	}

	if err := dc.discounts.Delete(c.Request.Context(), discountID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Discount disabled successfully"})
}
