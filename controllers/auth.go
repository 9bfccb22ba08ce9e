package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonshop-backend/models"
	"salonshop-backend/utils"
)

type AuthController struct {
	db *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

type AdminLoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CustomerRegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

type CustomerLoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin authenticates an admin by username
func (ac *AuthController) AdminLogin(c *gin.Context) {
	var input AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var admin models.User
	err := ac.db.Where("username = ? AND role = ?", input.Username, models.RoleAdmin).First(&admin).Error
	if err != nil || !utils.CheckPasswordHash(input.Password, admin.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(admin.ID.String(), models.RoleAdmin)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"access_token": token,
		"user": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
			"role":     models.RoleAdmin,
		},
	})
}

// CustomerRegister creates a customer account. The unique index on email is
// the backstop for concurrent registrations with the same address.
func (ac *AuthController) CustomerRegister(c *gin.Context) {
	var input CustomerRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateEmail(input.Email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid email format")
		return
	}
	if len(input.Password) < 6 {
		utils.RespondWithError(c, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	email := strings.ToLower(input.Email)

	var existing models.User
	if err := ac.db.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	customer := models.User{
		Role:     models.RoleCustomer,
		Name:     input.Name,
		Email:    &email,
		Password: hashed,
		Phone:    input.Phone,
	}
	if err := ac.db.Create(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "Email already registered")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := utils.GenerateToken(customer.ID.String(), models.RoleCustomer)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Registration successful",
		"access_token": token,
		"user": gin.H{
			"id":    customer.ID,
			"name":  customer.Name,
			"email": email,
			"role":  models.RoleCustomer,
		},
	})
}

// CustomerLogin authenticates a customer by email
func (ac *AuthController) CustomerLogin(c *gin.Context) {
	var input CustomerLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var customer models.User
	err := ac.db.Where("email = ? AND role = ?", email, models.RoleCustomer).First(&customer).Error
	if err != nil || !utils.CheckPasswordHash(input.Password, customer.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(customer.ID.String(), models.RoleCustomer)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"access_token": token,
		"user": gin.H{
			"id":    customer.ID,
			"name":  customer.Name,
			"email": customer.Email,
			"role":  models.RoleCustomer,
		},
	})
}

// Me returns the authenticated user's profile
func (ac *AuthController) Me(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid token claims")
		return
	}

	var user models.User
	if err := ac.db.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	userData := gin.H{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	}
	if user.Role == models.RoleAdmin {
		userData["username"] = user.Username
	} else {
		userData["name"] = user.Name
		userData["phone"] = user.Phone
	}

	c.JSON(http.StatusOK, gin.H{"user": userData})
}

// currentUserID pulls the verified subject id set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, error) {
	raw, exists := c.Get("userId")
	if !exists {
		return uuid.Nil, errors.New("user id not in context")
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, errors.New("user id claim is not a string")
	}
	return uuid.Parse(s)
}
