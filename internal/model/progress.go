package model

import "time"

// Progress 学生对课程材料的完成记录，(student_id, material_id) 唯一
// swagger:model Progress
type Progress struct {
	BaseModel
	StudentID   uint       `gorm:"uniqueIndex:idx_student_material;not null" json:"studentId"`
	MaterialID  uint       `gorm:"uniqueIndex:idx_student_material;not null" json:"materialId"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (Progress) TableName() string {
	return "progress"
}
