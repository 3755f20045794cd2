package service

import (
	"errors"
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/repository"
	"school_edu_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type MaterialService struct {
	MaterialRepo   *repository.MaterialRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	ProgressRepo   *repository.ProgressRepository
	SubmissionRepo *repository.SubmissionRepository
	UserRepo       *repository.UserRepository
}

func NewMaterialService(
	materialRepo *repository.MaterialRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	progressRepo *repository.ProgressRepository,
	submissionRepo *repository.SubmissionRepository,
	userRepo *repository.UserRepository,
) *MaterialService {
	return &MaterialService{
		MaterialRepo:   materialRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		ProgressRepo:   progressRepo,
		SubmissionRepo: submissionRepo,
		UserRepo:       userRepo,
	}
}

// Create 仅课程归属教师可添加材料，排序号同题目规则
func (s *MaterialService) Create(callerID, courseID uint, title, content string, materialType model.MaterialType, fileURL string) (*model.CourseMaterial, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	if course.TeacherID != callerID {
		return nil, util.ErrNotCourseOwner
	}

	orderIndex, err := s.MaterialRepo.NextOrderIndex(courseID)
	if err != nil {
		return nil, err
	}

	m := &model.CourseMaterial{
		CourseID:     courseID,
		Title:        title,
		Content:      content,
		MaterialType: materialType,
		FileURL:      fileURL,
		OrderIndex:   orderIndex,
	}
	if err := s.MaterialRepo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MaterialService) ListByCourse(courseID uint) ([]model.CourseMaterial, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return s.MaterialRepo.ListByCourse(courseID)
}

// MarkProgress 已选课学生对材料标记完成，重复标记覆盖完成时间
func (s *MaterialService) MarkProgress(studentID, materialID uint) error {
	if _, err := s.UserRepo.FindByIDAndRole(studentID, model.Student); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrStudentNotFound
		}
		return err
	}

	material, err := s.MaterialRepo.FindByID(materialID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrMaterialNotFound
		}
		return err
	}

	if _, err := s.EnrollmentRepo.Find(studentID, material.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotEnrolled
		}
		return err
	}

	now := time.Now()
	return s.ProgressRepo.Upsert(&model.Progress{
		StudentID:   studentID,
		MaterialID:  materialID,
		Completed:   true,
		CompletedAt: &now,
	})
}

// SubmitAssignment 仅 assignment 类型材料接收提交
func (s *MaterialService) SubmitAssignment(studentID, materialID uint, text, fileURL string) (*model.Submission, error) {
	if _, err := s.UserRepo.FindByIDAndRole(studentID, model.Student); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}

	material, err := s.MaterialRepo.FindByID(materialID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMaterialNotFound
		}
		return nil, err
	}

	if material.MaterialType != model.MaterialAssignment {
		return nil, util.ErrNotAssignment
	}

	if _, err := s.EnrollmentRepo.Find(studentID, material.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotEnrolled
		}
		return nil, err
	}

	sub := &model.Submission{
		StudentID:         studentID,
		MaterialID:        materialID,
		SubmissionText:    text,
		SubmissionFileURL: fileURL,
		SubmittedAt:       time.Now(),
	}
	if err := s.SubmissionRepo.Create(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// GradeSubmission 人工评分路径：材料所属课程的归属教师打分并留评语
func (s *MaterialService) GradeSubmission(teacherID, submissionID uint, grade int, feedback string) (*model.Submission, error) {
	sub, err := s.SubmissionRepo.FindByID(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubmissionNotFound
		}
		return nil, err
	}

	material, err := s.MaterialRepo.FindByID(sub.MaterialID)
	if err != nil {
		return nil, err
	}

	course, err := s.CourseRepo.FindByID(material.CourseID)
	if err != nil {
		return nil, err
	}

	if course.TeacherID != teacherID {
		return nil, util.ErrNotCourseOwner
	}

	now := time.Now()
	sub.Grade = &grade
	sub.Feedback = feedback
	sub.GradedAt = &now
	if err := s.SubmissionRepo.Update(sub); err != nil {
		return nil, err
	}
	return sub, nil
}
