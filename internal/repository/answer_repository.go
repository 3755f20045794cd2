package repository

import (
	"school_edu_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) *AnswerRepository {
	return &AnswerRepository{DB: db}
}

// Upsert 以 (question_id, student_id) 唯一键做插入或覆盖，重复提交直接改写原行
func (r *AnswerRepository) Upsert(a *model.QuestionAnswer) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "question_id"}, {Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"answer_text", "is_correct", "points_earned", "submitted_at", "updated_at",
		}),
	}).Create(a).Error
}

func (r *AnswerRepository) FindByQuestionAndStudent(questionID, studentID uint) (*model.QuestionAnswer, error) {
	var a model.QuestionAnswer
	err := r.DB.Where("question_id = ? AND student_id = ?", questionID, studentID).First(&a).Error
	return &a, err
}

func (r *AnswerRepository) ListByStudent(studentID uint) ([]model.QuestionAnswer, error) {
	var answers []model.QuestionAnswer
	err := r.DB.Where("student_id = ?", studentID).Find(&answers).Error
	return answers, err
}
