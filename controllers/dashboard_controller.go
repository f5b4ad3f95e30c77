package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"devsfusion-backend/models"
	"devsfusion-backend/services"
	"devsfusion-backend/utils"
)

// DashboardController aggregates the counts the admin dashboard shows on
// load.
type DashboardController struct {
	Projects     *services.ProjectService
	Services     *services.ServiceService
	Testimonials *services.TestimonialService
	Contacts     *services.ContactService
}

func NewDashboardController(
	projects *services.ProjectService,
	svcs *services.ServiceService,
	testimonials *services.TestimonialService,
	contacts *services.ContactService,
) *DashboardController {
	return &DashboardController{
		Projects:     projects,
		Services:     svcs,
		Testimonials: testimonials,
		Contacts:     contacts,
	}
}

// GetStats handles GET /api/dashboard/stats (protected). The four reads
// are independent, so they run in parallel; any single failure fails the
// aggregate.
func (dc *DashboardController) GetStats(c *gin.Context) {
	var (
		projectTotal, projectFeatured int64
		serviceTotal, serviceActive   int64
		testimonialTotal              int64
		contactStats                  *models.ContactStats
	)

	g, ctx := errgroup.WithContext(c.Request.Context())

	g.Go(func() error {
		if err := dc.Projects.DB.WithContext(ctx).Model(&models.Project{}).Count(&projectTotal).Error; err != nil {
			return err
		}
		return dc.Projects.DB.WithContext(ctx).Model(&models.Project{}).
			Where("featured = ?", true).Count(&projectFeatured).Error
	})
	g.Go(func() error {
		if err := dc.Services.DB.WithContext(ctx).Model(&models.Service{}).Count(&serviceTotal).Error; err != nil {
			return err
		}
		return dc.Services.DB.WithContext(ctx).Model(&models.Service{}).
			Where("is_active = ?", true).Count(&serviceActive).Error
	})
	g.Go(func() error {
		return dc.Testimonials.DB.WithContext(ctx).Model(&models.Testimonial{}).Count(&testimonialTotal).Error
	})
	g.Go(func() error {
		stats, err := dc.Contacts.Stats()
		if err != nil {
			return err
		}
		contactStats = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch dashboard stats")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, "", gin.H{
		"projects":     gin.H{"total": projectTotal, "featured": projectFeatured},
		"services":     gin.H{"total": serviceTotal, "active": serviceActive},
		"testimonials": gin.H{"total": testimonialTotal},
		"contacts":     contactStats,
	})
}
