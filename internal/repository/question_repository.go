package repository

import (
	"errors"

	"school_edu_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	return &q, err
}

// ListByCourse 展示/评分顺序：order_index 升序，同序按创建时间
func (r *QuestionRepository) ListByCourse(courseID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("course_id = ?", courseID).
		Order("order_index ASC, created_at ASC").
		Find(&questions).Error
	return questions, err
}

// NextOrderIndex 课程内下一个排序号：最大值+1，无题目时为 0
func (r *QuestionRepository) NextOrderIndex(courseID uint) (int, error) {
	var last model.Question
	err := r.DB.Where("course_id = ?", courseID).
		Order("order_index DESC").
		First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return last.OrderIndex + 1, nil
}
