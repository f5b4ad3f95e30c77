package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"devsfusion-backend/models"
	"devsfusion-backend/services"
	"devsfusion-backend/utils"
)

type ServiceController struct {
	Services *services.ServiceService
}

func NewServiceController(svc *services.ServiceService) *ServiceController {
	return &ServiceController{Services: svc}
}

type createServicePayload struct {
	Title        string   `json:"title" binding:"required,max=100"`
	Description  string   `json:"description" binding:"required,max=2000"`
	Image        string   `json:"image" binding:"required,max=500"`
	Icon         string   `json:"icon" binding:"omitempty,max=50"`
	Features     []string `json:"features"`
	Technologies []string `json:"technologies"`
	Order        int      `json:"order"`
	IsActive     *bool    `json:"isActive"`
}

type updateServicePayload struct {
	Title        *string   `json:"title" binding:"omitempty,max=100"`
	Description  *string   `json:"description" binding:"omitempty,max=2000"`
	Image        *string   `json:"image" binding:"omitempty,max=500"`
	Icon         *string   `json:"icon" binding:"omitempty,max=50"`
	Features     *[]string `json:"features"`
	Technologies *[]string `json:"technologies"`
	Order        *int      `json:"order"`
	IsActive     *bool     `json:"isActive"`
}

func (p updateServicePayload) changes() map[string]any {
	changes := map[string]any{}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.Image != nil {
		changes["image"] = *p.Image
	}
	if p.Icon != nil {
		changes["icon"] = *p.Icon
	}
	if p.Features != nil {
		changes["features"] = utils.ToJSONList(*p.Features)
	}
	if p.Technologies != nil {
		changes["technologies"] = utils.ToJSONList(*p.Technologies)
	}
	if p.Order != nil {
		changes["display_order"] = *p.Order
	}
	if p.IsActive != nil {
		changes["is_active"] = *p.IsActive
	}
	return changes
}

// GetAll handles GET /api/services (public). Supports active=true|false,
// sort, limit and page.
func (sc *ServiceController) GetAll(c *gin.Context) {
	q := parseListQuery(c)
	active := parseBoolQuery(c, "active")

	items, total, err := sc.Services.List(active, q)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch services")
		return
	}

	q = q.Normalize()
	utils.JSONList(c, http.StatusOK, len(items), total, q.Page, q.Pages(total), gin.H{"services": items})
}

func (sc *ServiceController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	svc, err := sc.Services.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Service not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch service")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"service": svc})
}

func (sc *ServiceController) Create(c *gin.Context) {
	var payload createServicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	icon := payload.Icon
	if icon == "" {
		icon = "Code"
	}
	isActive := true
	if payload.IsActive != nil {
		isActive = *payload.IsActive
	}

	svc := models.Service{
		Title:        payload.Title,
		Description:  payload.Description,
		Image:        payload.Image,
		Icon:         icon,
		Features:     utils.ToJSONList(payload.Features),
		Technologies: utils.ToJSONList(payload.Technologies),
		Order:        payload.Order,
		IsActive:     isActive,
	}
	if err := sc.Services.Create(&svc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, "Service created successfully", gin.H{"service": svc})
}

func (sc *ServiceController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload updateServicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	svc, err := sc.Services.Update(id, payload.changes())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Service not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Service updated successfully", gin.H{"service": svc})
}

func (sc *ServiceController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := sc.Services.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Service not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Service deleted successfully", nil)
}
