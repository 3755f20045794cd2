package model

// Enrollment 学生-课程关联，(student_id, course_id) 唯一
// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	StudentID uint `gorm:"uniqueIndex:idx_student_course;not null" json:"studentId"`
	CourseID  uint `gorm:"uniqueIndex:idx_student_course;not null" json:"courseId"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
