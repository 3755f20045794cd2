package model

type MaterialType string

const (
	MaterialLesson     MaterialType = "lesson"
	MaterialVideo      MaterialType = "video"
	MaterialAssignment MaterialType = "assignment"
	MaterialResource   MaterialType = "resource"
)

// swagger:model CourseMaterial
type CourseMaterial struct {
	BaseModel
	CourseID     uint         `gorm:"index;not null" json:"courseId"`
	Title        string       `gorm:"size:255;not null" json:"title"`
	Content      string       `gorm:"type:text;not null" json:"content"`
	MaterialType MaterialType `gorm:"size:50;not null" json:"materialType"`
	FileURL      string       `gorm:"size:500" json:"fileUrl,omitempty"`
	OrderIndex   int          `gorm:"default:0" json:"orderIndex"`
}

func (CourseMaterial) TableName() string {
	return "course_materials"
}
