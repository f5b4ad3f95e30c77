package services

import (
	"devsfusion-backend/models"

	"gorm.io/gorm"
)

var contactSortKeys = map[string]string{
	"createdAt": "created_at",
	"name":      "name",
	"status":    "status",
}

type ContactService struct {
	DB *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{DB: db}
}

func (s *ContactService) Create(contact *models.Contact) error {
	return s.DB.Create(contact).Error
}

// MarkEmailSent flips the email_sent flag after both notification mails
// went out. Callers treat a failure here as best-effort.
func (s *ContactService) MarkEmailSent(id uint) error {
	return s.DB.Model(&models.Contact{}).Where("id = ?", id).Update("email_sent", true).Error
}

// List filters by status when one is given ("" means all).
func (s *ContactService) List(status string, q ListQuery) ([]models.Contact, int64, error) {
	q = q.Normalize()

	tx := s.DB.Model(&models.Contact{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	contacts := make([]models.Contact, 0)
	err := applyListQuery(tx, q, contactSortKeys).Find(&contacts).Error
	return contacts, total, err
}

func (s *ContactService) GetByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := s.DB.First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// UpdateStatus expects an already-validated status value.
func (s *ContactService) UpdateStatus(id uint, status string) (*models.Contact, error) {
	var contact models.Contact
	if err := s.DB.First(&contact, id).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&contact).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (s *ContactService) Delete(id uint) error {
	result := s.DB.Delete(&models.Contact{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Stats counts submissions grouped by status. Every bucket is always
// present in the result, even when zero.
func (s *ContactService) Stats() (*models.ContactStats, error) {
	type row struct {
		Status string
		Count  int64
	}

	var rows []row
	err := s.DB.Model(&models.Contact{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &models.ContactStats{}
	for _, r := range rows {
		stats.Total += r.Count
		switch r.Status {
		case models.ContactStatusUnread:
			stats.Unread = r.Count
		case models.ContactStatusRead:
			stats.Read = r.Count
		case models.ContactStatusReplied:
			stats.Replied = r.Count
		case models.ContactStatusArchived:
			stats.Archived = r.Count
		}
	}
	return stats, nil
}
