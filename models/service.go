package models

import (
	"time"

	"gorm.io/datatypes"
)

type Service struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"size:100" json:"title"`
	Description  string         `gorm:"size:2000" json:"description"`
	Image        string         `gorm:"size:500" json:"image"`
	Icon         string         `gorm:"size:50;default:Code" json:"icon"` // Lucide icon name
	Features     datatypes.JSON `json:"features"`
	Technologies datatypes.JSON `json:"technologies"`
	Order        int            `gorm:"column:display_order;default:0" json:"order"`
	IsActive     bool           `gorm:"default:true;index" json:"isActive"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
