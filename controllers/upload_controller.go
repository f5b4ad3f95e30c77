package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devsfusion-backend/services"
	"devsfusion-backend/utils"
)

type UploadController struct {
	Images services.ImageStore
}

func NewUploadController(images services.ImageStore) *UploadController {
	return &UploadController{Images: images}
}

type deleteImagePayload struct {
	ImageURL string `json:"imageUrl" binding:"required"`
	PublicID string `json:"publicId"`
}

// Upload handles POST /api/upload/:target (protected). Target must be
// one of project, service, testimonial or general; the file arrives as
// multipart field "image".
func (uc *UploadController) Upload(c *gin.Context) {
	folder, ok := services.UploadFolders[c.Param("target")]
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Unknown upload target")
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	result, err := uc.Images.Upload(c.Request.Context(), file, folder)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Image uploaded successfully", gin.H{
		"url":      result.URL,
		"publicId": result.PublicID,
	})
}

// Delete handles DELETE /api/upload (protected). The body carries the
// image URL and optionally the public id returned at upload time, which
// is preferred over URL parsing.
func (uc *UploadController) Delete(c *gin.Context) {
	var payload deleteImagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Image URL is required")
		return
	}

	result := uc.Images.DeleteByURL(c.Request.Context(), payload.ImageURL, payload.PublicID)
	if !result.Success {
		utils.JSONError(c, http.StatusBadRequest, result.Message)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Image deleted successfully", nil)
}
