package models

import (
	"time"

	"gorm.io/datatypes"
)

type Project struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:100" json:"title"`
	Description string         `gorm:"size:2000" json:"description"`
	ImageLink   string         `gorm:"size:500" json:"imageLink"`
	TechStack   datatypes.JSON `gorm:"column:tech_stack" json:"techStack"`
	LiveLink    string         `gorm:"size:500" json:"liveLink"`
	GithubLink  string         `gorm:"size:500" json:"githubLink"`
	Featured    bool           `gorm:"default:false;index" json:"featured"`
	Order       int            `gorm:"column:display_order;default:0" json:"order"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
