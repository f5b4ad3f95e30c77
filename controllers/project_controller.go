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

type ProjectController struct {
	Projects *services.ProjectService
}

func NewProjectController(svc *services.ProjectService) *ProjectController {
	return &ProjectController{Projects: svc}
}

type createProjectPayload struct {
	Title       string   `json:"title" binding:"required,max=100"`
	Description string   `json:"description" binding:"required,max=2000"`
	ImageLink   string   `json:"imageLink" binding:"required,max=500"`
	TechStack   []string `json:"techStack"`
	LiveLink    string   `json:"liveLink" binding:"omitempty,max=500"`
	GithubLink  string   `json:"githubLink" binding:"omitempty,max=500"`
	Featured    bool     `json:"featured"`
	Order       int      `json:"order"`
}

type updateProjectPayload struct {
	Title       *string   `json:"title" binding:"omitempty,max=100"`
	Description *string   `json:"description" binding:"omitempty,max=2000"`
	ImageLink   *string   `json:"imageLink" binding:"omitempty,max=500"`
	TechStack   *[]string `json:"techStack"`
	LiveLink    *string   `json:"liveLink" binding:"omitempty,max=500"`
	GithubLink  *string   `json:"githubLink" binding:"omitempty,max=500"`
	Featured    *bool     `json:"featured"`
	Order       *int      `json:"order"`
}

func (p updateProjectPayload) changes() map[string]any {
	changes := map[string]any{}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.ImageLink != nil {
		changes["image_link"] = *p.ImageLink
	}
	if p.TechStack != nil {
		changes["tech_stack"] = utils.ToJSONList(*p.TechStack)
	}
	if p.LiveLink != nil {
		changes["live_link"] = *p.LiveLink
	}
	if p.GithubLink != nil {
		changes["github_link"] = *p.GithubLink
	}
	if p.Featured != nil {
		changes["featured"] = *p.Featured
	}
	if p.Order != nil {
		changes["display_order"] = *p.Order
	}
	return changes
}

// GetAll handles GET /api/projects (public). Supports featured=true,
// sort, limit and page.
func (pc *ProjectController) GetAll(c *gin.Context) {
	q := parseListQuery(c)
	featured := parseBoolQuery(c, "featured")

	projects, total, err := pc.Projects.List(featured, q)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}

	q = q.Normalize()
	utils.JSONList(c, http.StatusOK, len(projects), total, q.Page, q.Pages(total), gin.H{"projects": projects})
}

// GetByID handles GET /api/projects/:id (public).
func (pc *ProjectController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	project, err := pc.Projects.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Project not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch project")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "", gin.H{"project": project})
}

// Create handles POST /api/projects (protected).
func (pc *ProjectController) Create(c *gin.Context) {
	var payload createProjectPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	project := models.Project{
		Title:       payload.Title,
		Description: payload.Description,
		ImageLink:   payload.ImageLink,
		TechStack:   utils.ToJSONList(payload.TechStack),
		LiveLink:    payload.LiveLink,
		GithubLink:  payload.GithubLink,
		Featured:    payload.Featured,
		Order:       payload.Order,
	}
	if err := pc.Projects.Create(&project); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create project")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, "Project created successfully", gin.H{"project": project})
}

// Update handles PUT /api/projects/:id (protected).
func (pc *ProjectController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload updateProjectPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	project, err := pc.Projects.Update(id, payload.changes())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Project not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update project")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Project updated successfully", gin.H{"project": project})
}

// Delete handles DELETE /api/projects/:id (protected). Associated
// uploaded media is not removed here; callers delete it through the
// upload gateway.
func (pc *ProjectController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := pc.Projects.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Project not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "Project deleted successfully", nil)
}
