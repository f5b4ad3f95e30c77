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

type TestimonialController struct {
	Testimonials *services.TestimonialService
}

func NewTestimonialController(svc *services.TestimonialService) *TestimonialController {
	return &TestimonialController{Testimonials: svc}
}

type createTestimonialPayload struct {
	Name        string `json:"name" binding:"required,max=100"`
	Designation string `json:"designation" binding:"required,max=100"`
	Company     string `json:"company" binding:"omitempty,max=100"`
	Message     string `json:"message" binding:"required,max=1000"`
	Avatar      string `json:"avatar" binding:"omitempty,max=500"`
	Rating      *int   `json:"rating" binding:"omitempty,min=1,max=5"`
	Featured    bool   `json:"featured"`
	Order       int    `json:"order"`
}

type updateTestimonialPayload struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Designation *string `json:"designation" binding:"omitempty,max=100"`
	Company     *string `json:"company" binding:"omitempty,max=100"`
	Message     *string `json:"message" binding:"omitempty,max=1000"`
	Avatar      *string `json:"avatar" binding:"omitempty,max=500"`
	Rating      *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Featured    *bool   `json:"featured"`
	Order       *int    `json:"order"`
}

func (p updateTestimonialPayload) changes() map[string]any {
	changes := map[string]any{}
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.Designation != nil {
		changes["designation"] = *p.Designation
	}
	if p.Company != nil {
		changes["company"] = *p.Company
	}
	if p.Message != nil {
		changes["message"] = *p.Message
	}
	if p.Avatar != nil {
		changes["avatar"] = *p.Avatar
	}
	if p.Rating != nil {
		changes["rating"] = *p.Rating
	}
	if p.Featured != nil {
		changes["featured"] = *p.Featured
	}
	if p.Order != nil {
		changes["display_order"] = *p.Order
	}
	return changes
}

// GetAll handles GET /api/testimonials (public).
func (tc *TestimonialController) GetAll(c *gin.Context) {
	q := parseListQuery(c)
	featured := parseBoolQuery(c, "featured")

	items, total, err := tc.Testimonials.List(featured, q)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch testimonials")
		return
	}

	q = q.Normalize()
	utils.JSONList(c, http.StatusOK, len(items), total, q.Page, q.Pages(total), gin.H{"testimonials": items})
}

func (tc *TestimonialController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	t, err := tc.Testimonials.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Testimonial not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch testimonial")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"testimonial": t})
}

func (tc *TestimonialController) Create(c *gin.Context) {
	var payload createTestimonialPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	rating := 5
	if payload.Rating != nil {
		rating = *payload.Rating
	}
	if rating < 1 || rating > 5 {
		utils.JSONError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	t := models.Testimonial{
		Name:        payload.Name,
		Designation: payload.Designation,
		Company:     payload.Company,
		Message:     payload.Message,
		Avatar:      payload.Avatar,
		Rating:      rating,
		Featured:    payload.Featured,
		Order:       payload.Order,
	}
	if err := tc.Testimonials.Create(&t); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create testimonial")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, "Testimonial created successfully", gin.H{"testimonial": t})
}

func (tc *TestimonialController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload updateTestimonialPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}
	if payload.Rating != nil && (*payload.Rating < 1 || *payload.Rating > 5) {
		utils.JSONError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	t, err := tc.Testimonials.Update(id, payload.changes())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Testimonial not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update testimonial")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Testimonial updated successfully", gin.H{"testimonial": t})
}

func (tc *TestimonialController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := tc.Testimonials.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Testimonial not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete testimonial")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Testimonial deleted successfully", nil)
}
