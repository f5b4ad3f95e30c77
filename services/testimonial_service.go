package services

import (
	"devsfusion-backend/models"

	"gorm.io/gorm"
)

var testimonialSortKeys = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"order":     "display_order",
	"name":      "name",
	"rating":    "rating",
}

type TestimonialService struct {
	DB *gorm.DB
}

func NewTestimonialService(db *gorm.DB) *TestimonialService {
	return &TestimonialService{DB: db}
}

func (s *TestimonialService) List(featured *bool, q ListQuery) ([]models.Testimonial, int64, error) {
	q = q.Normalize()

	tx := s.DB.Model(&models.Testimonial{})
	if featured != nil {
		tx = tx.Where("featured = ?", *featured)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]models.Testimonial, 0)
	err := applyListQuery(tx, q, testimonialSortKeys).Find(&items).Error
	return items, total, err
}

func (s *TestimonialService) GetByID(id uint) (*models.Testimonial, error) {
	var t models.Testimonial
	if err := s.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TestimonialService) Create(t *models.Testimonial) error {
	return s.DB.Create(t).Error
}

func (s *TestimonialService) Update(id uint, changes map[string]any) (*models.Testimonial, error) {
	var t models.Testimonial
	if err := s.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		if err := s.DB.Model(&t).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return &t, nil
}

func (s *TestimonialService) Delete(id uint) error {
	result := s.DB.Delete(&models.Testimonial{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
