package services

import (
	"devsfusion-backend/models"

	"gorm.io/gorm"
)

var projectSortKeys = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"order":     "display_order",
	"title":     "title",
}

type ProjectService struct {
	DB *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{DB: db}
}

// List returns one page of projects plus the total match count. A nil
// featured filter means "all".
func (s *ProjectService) List(featured *bool, q ListQuery) ([]models.Project, int64, error) {
	q = q.Normalize()

	tx := s.DB.Model(&models.Project{})
	if featured != nil {
		tx = tx.Where("featured = ?", *featured)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	projects := make([]models.Project, 0)
	err := applyListQuery(tx, q, projectSortKeys).Find(&projects).Error
	return projects, total, err
}

func (s *ProjectService) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.DB.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) Create(project *models.Project) error {
	return s.DB.Create(project).Error
}

// Update merges the given changes into an existing project. Returns
// gorm.ErrRecordNotFound when the id does not exist; the store is left
// untouched in that case.
func (s *ProjectService) Update(id uint, changes map[string]any) (*models.Project, error) {
	var project models.Project
	if err := s.DB.First(&project, id).Error; err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		if err := s.DB.Model(&project).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return &project, nil
}

func (s *ProjectService) Delete(id uint) error {
	result := s.DB.Delete(&models.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
