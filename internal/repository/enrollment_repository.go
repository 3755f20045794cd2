package repository

import (
	"school_edu_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Create(e *model.Enrollment) error {
	return r.DB.Create(e).Error
}

func (r *EnrollmentRepository) Find(studentID, courseID uint) (*model.Enrollment, error) {
	var e model.Enrollment
	err := r.DB.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&e).Error
	return &e, err
}

func (r *EnrollmentRepository) CourseIDsByStudent(studentID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Enrollment{}).
		Where("student_id = ?", studentID).
		Pluck("course_id", &ids).Error
	return ids, err
}

// CoursesByStudent 学生已选课程（学生仪表盘）
func (r *EnrollmentRepository) CoursesByStudent(studentID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Model(&model.Course{}).
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.student_id = ? AND enrollments.deleted_at IS NULL", studentID).
		Find(&courses).Error
	return courses, err
}
