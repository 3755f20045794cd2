package service

import (
	"errors"
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/repository"
	"school_edu_backend/internal/util"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	UserRepo       *repository.UserRepository
}

func NewCourseService(courseRepo *repository.CourseRepository, enrollmentRepo *repository.EnrollmentRepository, userRepo *repository.UserRepository) *CourseService {
	return &CourseService{
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		UserRepo:       userRepo,
	}
}

// Create 任意调用者 id 都会被记为课程归属教师，此处不做角色校验
// （沿用线上行为，待加固点，见 DESIGN.md）
func (s *CourseService) Create(teacherID uint, title, subject, gradeLevel, description string) (*model.Course, error) {
	course := &model.Course{
		Title:       title,
		Description: description,
		Subject:     subject,
		GradeLevel:  gradeLevel,
		TeacherID:   teacherID,
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete 仅课程归属教师可删，级联删除在单事务内完成
func (s *CourseService) Delete(callerID, courseID uint) error {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}

	if course.TeacherID != callerID {
		return util.ErrNotCourseOwner
	}

	return s.CourseRepo.DeleteCascade(courseID)
}

// ListAvailable 全部课程 + 教师姓名，并按调用学生的选课集标记 isEnrolled
func (s *CourseService) ListAvailable(studentID uint) ([]model.CourseListing, error) {
	if _, err := s.UserRepo.FindByIDAndRole(studentID, model.Student); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}

	listings, err := s.CourseRepo.ListWithTeacher()
	if err != nil {
		return nil, err
	}

	enrolledIDs, err := s.EnrollmentRepo.CourseIDsByStudent(studentID)
	if err != nil {
		return nil, err
	}
	enrolled := make(map[uint]bool, len(enrolledIDs))
	for _, id := range enrolledIDs {
		enrolled[id] = true
	}

	for i := range listings {
		listings[i].IsEnrolled = enrolled[listings[i].ID]
	}
	return listings, nil
}

func (s *CourseService) ListByTeacher(teacherID uint) ([]model.Course, error) {
	return s.CourseRepo.FindByTeacher(teacherID)
}
