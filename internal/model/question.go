package model

import "encoding/json"

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	ShortAnswer    QuestionType = "short_answer"
	Essay          QuestionType = "essay"
)

// swagger:model Question
type Question struct {
	BaseModel
	CourseID      uint         `gorm:"index;not null" json:"courseId"`
	QuestionText  string       `gorm:"type:text;not null" json:"questionText"`
	QuestionType  QuestionType `gorm:"size:50;not null" json:"questionType"`
	Options       string       `gorm:"type:text" json:"-"` // JSON array，仅 multiple_choice 使用
	CorrectAnswer string       `gorm:"type:text" json:"correctAnswer,omitempty"`
	Points        int          `gorm:"default:1" json:"points"`
	OrderIndex    int          `gorm:"default:0" json:"orderIndex"`
}

func (Question) TableName() string {
	return "questions"
}

// OptionList 反序列化存储的选项，非法或空串返回 nil
func (q *Question) OptionList() []string {
	if q.Options == "" {
		return nil
	}
	var opts []string
	if err := json.Unmarshal([]byte(q.Options), &opts); err != nil {
		return nil
	}
	return opts
}
