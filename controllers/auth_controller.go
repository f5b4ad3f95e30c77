package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"devsfusion-backend/middleware"
	"devsfusion-backend/models"
	"devsfusion-backend/services"
	"devsfusion-backend/utils"
)

type AuthController struct {
	DB                *gorm.DB
	JWT               *services.JWTService
	AllowRegistration bool
}

func NewAuthController(db *gorm.DB, jwt *services.JWTService, allowRegistration bool) *AuthController {
	return &AuthController{DB: db, JWT: jwt, AllowRegistration: allowRegistration}
}

type registerPayload struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updatePasswordPayload struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6,max=72"`
}

// Register creates a new admin account and issues a token. Public by
// default to match the original API, but meant to be switched off with
// ALLOW_REGISTRATION=false once the first admin exists.
func (ac *AuthController) Register(c *gin.Context) {
	if !ac.AllowRegistration {
		utils.JSONError(c, http.StatusForbidden, "Registration is disabled")
		return
	}

	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please provide name, email and password")
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))

	var existing models.Admin
	if err := ac.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.JSONError(c, http.StatusBadRequest, "Admin with this email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	admin := models.Admin{
		Name:     strings.TrimSpace(payload.Name),
		Email:    email,
		Password: hash,
	}
	if err := ac.DB.Create(&admin).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create admin")
		return
	}

	token, err := ac.JWT.Issue(admin.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, "Admin registered successfully", gin.H{
		"admin": admin.Public(),
		"token": token,
	})
}

// Login checks credentials and issues a token. Unknown email and wrong
// password both answer with the same message so accounts cannot be
// enumerated.
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please provide email and password")
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))

	var admin models.Admin
	if err := ac.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if !utils.CheckPassword(payload.Password, admin.Password) {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := ac.JWT.Issue(admin.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Login successful", gin.H{
		"admin": admin.Public(),
		"token": token,
	})
}

// GetMe returns the identity the auth gate resolved.
func (ac *AuthController) GetMe(c *gin.Context) {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Admin not found. Token is invalid.")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"admin": admin.Public()})
}

// UpdatePassword replaces the stored hash after verifying the current
// password, then re-issues a token.
func (ac *AuthController) UpdatePassword(c *gin.Context) {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Admin not found. Token is invalid.")
		return
	}

	var payload updatePasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please provide currentPassword and newPassword")
		return
	}

	if !utils.CheckPassword(payload.CurrentPassword, admin.Password) {
		utils.JSONError(c, http.StatusUnauthorized, "Current password is incorrect")
		return
	}

	hash, err := utils.HashPassword(payload.NewPassword)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	if err := ac.DB.Model(admin).Update("password", hash).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update password")
		return
	}

	token, err := ac.JWT.Issue(admin.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Password updated successfully", gin.H{"token": token})
}
