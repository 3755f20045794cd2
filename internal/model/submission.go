package model

import "time"

// Submission 作业材料的自由文本提交，教师事后人工评分
// swagger:model Submission
type Submission struct {
	BaseModel
	StudentID         uint       `gorm:"index;not null" json:"studentId"`
	MaterialID        uint       `gorm:"index;not null" json:"materialId"`
	SubmissionText    string     `gorm:"type:text" json:"submissionText"`
	SubmissionFileURL string     `gorm:"size:500" json:"submissionFileUrl,omitempty"`
	Grade             *int       `json:"grade,omitempty"`
	Feedback          string     `gorm:"type:text" json:"feedback,omitempty"`
	SubmittedAt       time.Time  `json:"submittedAt"`
	GradedAt          *time.Time `json:"gradedAt,omitempty"`
}

func (Submission) TableName() string {
	return "submissions"
}
