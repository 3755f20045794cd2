package model

import "time"

// QuestionAnswer 学生对题目的作答，(question_id, student_id) 唯一，重复提交覆盖
// swagger:model QuestionAnswer
type QuestionAnswer struct {
	BaseModel
	QuestionID   uint      `gorm:"uniqueIndex:idx_question_student;not null" json:"questionId"`
	StudentID    uint      `gorm:"uniqueIndex:idx_question_student;not null" json:"studentId"`
	AnswerText   string    `gorm:"type:text;not null" json:"answerText"`
	IsCorrect    bool      `gorm:"default:false" json:"isCorrect"`
	PointsEarned int       `gorm:"default:0" json:"pointsEarned"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

func (QuestionAnswer) TableName() string {
	return "question_answers"
}
