package services

import (
	"devsfusion-backend/models"

	"gorm.io/gorm"
)

var serviceSortKeys = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"order":     "display_order",
	"title":     "title",
}

// ServiceService manages the service offerings shown on the site.
type ServiceService struct {
	DB *gorm.DB
}

func NewServiceService(db *gorm.DB) *ServiceService {
	return &ServiceService{DB: db}
}

func (s *ServiceService) List(active *bool, q ListQuery) ([]models.Service, int64, error) {
	q = q.Normalize()

	tx := s.DB.Model(&models.Service{})
	if active != nil {
		tx = tx.Where("is_active = ?", *active)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]models.Service, 0)
	err := applyListQuery(tx, q, serviceSortKeys).Find(&items).Error
	return items, total, err
}

func (s *ServiceService) GetByID(id uint) (*models.Service, error) {
	var svc models.Service
	if err := s.DB.First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *ServiceService) Create(svc *models.Service) error {
	return s.DB.Create(svc).Error
}

func (s *ServiceService) Update(id uint, changes map[string]any) (*models.Service, error) {
	var svc models.Service
	if err := s.DB.First(&svc, id).Error; err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		if err := s.DB.Model(&svc).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return &svc, nil
}

func (s *ServiceService) Delete(id uint) error {
	result := s.DB.Delete(&models.Service{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
