package models

import "time"

type Testimonial struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100" json:"name"`
	Designation string    `gorm:"size:100" json:"designation"`
	Company     string    `gorm:"size:100" json:"company"`
	Message     string    `gorm:"size:1000" json:"message"`
	Avatar      string    `gorm:"size:500" json:"avatar"`
	Rating      int       `gorm:"default:5" json:"rating"`
	Featured    bool      `gorm:"default:false;index" json:"featured"`
	Order       int       `gorm:"column:display_order;default:0" json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
