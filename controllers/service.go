// controllers/service.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salonshop-backend/services"
	"salonshop-backend/utils"
)

type ServiceController struct {
	catalog *services.CatalogService
}

func NewServiceController(catalog *services.CatalogService) *ServiceController {
	return &ServiceController{catalog: catalog}
}

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	BasePrice   float64 `json:"base_price" binding:"required"`
	Duration    int     `json:"duration" binding:"required"`
	Status      string  `json:"status"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	BasePrice   *float64 `json:"base_price"`
	Duration    *int     `json:"duration"`
	Status      *string  `json:"status"`
}

// CreateService creates a new catalog entry (Admin only)
func (sc *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := sc.catalog.Create(c.Request.Context(), services.CreateServiceInput{
		Title:       input.Title,
		Description: input.Description,
		BasePrice:   input.BasePrice,
		Duration:    input.Duration,
		Status:      input.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Service created successfully",
		"service": service,
	})
}

// GetServices lists the catalog with today's pricing (Public)
func (sc *ServiceController) GetServices(c *gin.Context) {
	priced, err := sc.catalog.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"services": priced,
		"total":    len(priced),
	})
}

// GetService returns a single catalog entry with today's pricing (Public)
func (sc *ServiceController) GetService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	priced, err := sc.catalog.Get(c.Request.Context(), serviceID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": priced})
}

// UpdateService updates an existing service (Admin only)
func (sc *ServiceController) UpdateService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := sc.catalog.Update(c.Request.Context(), serviceID, services.UpdateServiceInput{
		Title:       input.Title,
		Description: input.Description,
		BasePrice:   input.BasePrice,
		Duration:    input.Duration,
		Status:      input.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Service updated successfully",
		"service": service,
	})
}

// DeleteService removes a service, or deactivates it when active bookings
// still reference it (Admin only)
func (sc *ServiceController) DeleteService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	outcome, err := sc.catalog.Delete(c.Request.Context(), serviceID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if outcome.Deactivated {
		c.JSON(http.StatusOK, gin.H{
			"message":     "Service deactivated (has active bookings)",
			"deactivated": true,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
