package repository

import (
	"errors"

	"school_edu_backend/internal/model"

	"gorm.io/gorm"
)

type MaterialRepository struct {
	DB *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{DB: db}
}

func (r *MaterialRepository) Create(m *model.CourseMaterial) error {
	return r.DB.Create(m).Error
}

func (r *MaterialRepository) FindByID(id uint) (*model.CourseMaterial, error) {
	var m model.CourseMaterial
	err := r.DB.First(&m, id).Error
	return &m, err
}

func (r *MaterialRepository) ListByCourse(courseID uint) ([]model.CourseMaterial, error) {
	var materials []model.CourseMaterial
	err := r.DB.Where("course_id = ?", courseID).
		Order("order_index ASC, created_at ASC").
		Find(&materials).Error
	return materials, err
}

func (r *MaterialRepository) NextOrderIndex(courseID uint) (int, error) {
	var last model.CourseMaterial
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
