package repository

import (
	"school_edu_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) FindByTeacher(teacherID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("teacher_id = ?", teacherID).Find(&courses).Error
	return courses, err
}

// ListWithTeacher 所有课程连同授课教师姓名，按创建时间倒序
func (r *CourseRepository) ListWithTeacher() ([]model.CourseListing, error) {
	var rows []model.CourseListing
	err := r.DB.Model(&model.Course{}).
		Select("courses.id, courses.title, courses.description, courses.subject, courses.grade_level, users.name AS teacher_name").
		Joins("JOIN users ON courses.teacher_id = users.id").
		Order("courses.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// DeleteCascade 单事务内删除课程及其全部从属行，任一步失败整体回滚。
// 物理删除（Unscoped），避免软删除行残留占用唯一索引。
func (r *CourseRepository) DeleteCascade(courseID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		// 1. 删除题目作答
		if err := tx.Unscoped().
			Where("question_id IN (?)", tx.Model(&model.Question{}).Select("id").Where("course_id = ?", courseID)).
			Delete(&model.QuestionAnswer{}).Error; err != nil {
			return err
		}
		// 2. 删除题目
		if err := tx.Unscoped().Where("course_id = ?", courseID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		// 3. 删除作业提交
		if err := tx.Unscoped().
			Where("material_id IN (?)", tx.Model(&model.CourseMaterial{}).Select("id").Where("course_id = ?", courseID)).
			Delete(&model.Submission{}).Error; err != nil {
			return err
		}
		// 4. 删除学习进度
		if err := tx.Unscoped().
			Where("material_id IN (?)", tx.Model(&model.CourseMaterial{}).Select("id").Where("course_id = ?", courseID)).
			Delete(&model.Progress{}).Error; err != nil {
			return err
		}
		// 5. 删除课程材料
		if err := tx.Unscoped().Where("course_id = ?", courseID).Delete(&model.CourseMaterial{}).Error; err != nil {
			return err
		}
		// 6. 删除选课记录
		if err := tx.Unscoped().Where("course_id = ?", courseID).Delete(&model.Enrollment{}).Error; err != nil {
			return err
		}
		// 7. 删除课程本身
		return tx.Unscoped().Delete(&model.Course{}, "id = ?", courseID).Error
	})
}
