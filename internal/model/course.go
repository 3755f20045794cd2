package model

// swagger:model Course
type Course struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Subject     string `gorm:"size:100;not null" json:"subject"`
	GradeLevel  string `gorm:"size:50;not null" json:"gradeLevel"`
	TeacherID   uint   `gorm:"index;not null" json:"teacherId"`
}

func (Course) TableName() string {
	return "courses"
}

// CourseListing 学生选课列表的行：课程 + 授课教师姓名 + 是否已选
type CourseListing struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Subject     string `json:"subject"`
	GradeLevel  string `json:"gradeLevel"`
	TeacherName string `json:"teacherName"`
	IsEnrolled  bool   `json:"isEnrolled"`
}
