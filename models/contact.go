package models

import "time"

// Contact statuses an admin can move a submission through.
const (
	ContactStatusUnread   = "unread"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

// ContactStatuses lists the allowed values in display order.
var ContactStatuses = []string{
	ContactStatusUnread,
	ContactStatusRead,
	ContactStatusReplied,
	ContactStatusArchived,
}

// ValidContactStatus reports whether s is one of the enumerated statuses.
func ValidContactStatus(s string) bool {
	for _, v := range ContactStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100" json:"name"`
	Email     string    `gorm:"size:100" json:"email"`
	Subject   string    `gorm:"size:200" json:"subject"`
	Message   string    `gorm:"size:2000" json:"message"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Status    string    `gorm:"size:20;default:unread;index" json:"status"`
	EmailSent bool      `gorm:"default:false" json:"emailSent"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactStats is the grouped-by-status summary for the admin dashboard.
// All four buckets are always present, even when zero.
type ContactStats struct {
	Total    int64 `json:"total"`
	Unread   int64 `json:"unread"`
	Read     int64 `json:"read"`
	Replied  int64 `json:"replied"`
	Archived int64 `json:"archived"`
}
