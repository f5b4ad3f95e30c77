package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"devsfusion-backend/models"
	"devsfusion-backend/services"
	"devsfusion-backend/utils"
)

type ContactController struct {
	Contacts *services.ContactService
	Mailer   services.Mailer
}

func NewContactController(svc *services.ContactService, mailer services.Mailer) *ContactController {
	return &ContactController{Contacts: svc, Mailer: mailer}
}

type submitContactPayload struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email,max=100"`
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required,max=2000"`
	Phone   string `json:"phone" binding:"omitempty,max=20"`
}

type updateStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// Submit handles POST /api/contact (public). The submission is persisted
// first; only then are the notification and auto-reply attempted. Email
// failures are logged and never fail the request; the emailSent flag in
// the response reports the actual outcome.
func (cc *ContactController) Submit(c *gin.Context) {
	var payload submitContactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Please provide name, email, subject and message")
		return
	}

	contact := models.Contact{
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
		Phone:   payload.Phone,
		Status:  models.ContactStatusUnread,
	}
	if err := cc.Contacts.Create(&contact); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save contact submission")
		return
	}

	emailSent := false
	if err := cc.Mailer.SendContactNotification(&contact); err != nil {
		log.Printf("Contact notification email failed for submission %d: %v", contact.ID, err)
	} else if err := cc.Mailer.SendAutoReply(&contact); err != nil {
		log.Printf("Auto-reply email failed for submission %d: %v", contact.ID, err)
	} else {
		emailSent = true
		// Flag update is best-effort; a failure here is only logged.
		if err := cc.Contacts.MarkEmailSent(contact.ID); err != nil {
			log.Printf("Failed to mark submission %d as emailed: %v", contact.ID, err)
		}
	}

	utils.JSONSuccess(c, http.StatusCreated, "Thank you for contacting us! We will get back to you soon.", gin.H{
		"contact": gin.H{
			"id":      contact.ID,
			"name":    contact.Name,
			"email":   contact.Email,
			"subject": contact.Subject,
		},
		"emailSent": emailSent,
	})
}

// GetAll handles GET /api/contact (protected). Supports status filter,
// sort, limit and page.
func (cc *ContactController) GetAll(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !models.ValidContactStatus(status) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status. Must be: unread, read, replied, or archived")
		return
	}

	q := parseListQuery(c)
	contacts, total, err := cc.Contacts.List(status, q)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch contact submissions")
		return
	}

	q = q.Normalize()
	utils.JSONList(c, http.StatusOK, len(contacts), total, q.Page, q.Pages(total), gin.H{"contacts": contacts})
}

func (cc *ContactController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	contact, err := cc.Contacts.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Contact submission not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch contact submission")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"contact": contact})
}

// UpdateStatus handles PATCH /api/contact/:id/status (protected). Only
// the four enumerated values are accepted; anything else is rejected
// without touching the record.
func (cc *ContactController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload updateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil || !models.ValidContactStatus(payload.Status) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status. Must be: unread, read, replied, or archived")
		return
	}

	contact, err := cc.Contacts.UpdateStatus(id, payload.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Contact submission not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update contact status")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Contact status updated", gin.H{"contact": contact})
}

func (cc *ContactController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := cc.Contacts.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Contact submission not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete contact submission")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Contact deleted successfully", nil)
}

// GetStats handles GET /api/contact/stats (protected).
func (cc *ContactController) GetStats(c *gin.Context) {
	stats, err := cc.Contacts.Stats()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch contact stats")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"stats": stats})
}
