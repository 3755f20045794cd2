package repository

import (
	"school_edu_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Upsert (student_id, material_id) 唯一，重复标记覆盖完成时间
func (r *ProgressRepository) Upsert(p *model.Progress) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "material_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "completed_at", "updated_at"}),
	}).Create(p).Error
}

func (r *ProgressRepository) ListByStudent(studentID uint) ([]model.Progress, error) {
	var rows []model.Progress
	err := r.DB.Where("student_id = ?", studentID).Find(&rows).Error
	return rows, err
}
