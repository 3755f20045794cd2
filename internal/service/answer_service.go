package service

import (
	"errors"
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/repository"
	"school_edu_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type AnswerService struct {
	QuestionRepo   *repository.QuestionRepository
	AnswerRepo     *repository.AnswerRepository
	EnrollmentRepo *repository.EnrollmentRepository
	UserRepo       *repository.UserRepository
}

func NewAnswerService(
	questionRepo *repository.QuestionRepository,
	answerRepo *repository.AnswerRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	userRepo *repository.UserRepository,
) *AnswerService {
	return &AnswerService{
		QuestionRepo:   questionRepo,
		AnswerRepo:     answerRepo,
		EnrollmentRepo: enrollmentRepo,
		UserRepo:       userRepo,
	}
}

// SubmitResult 提交作答的评分结果
type SubmitResult struct {
	IsCorrect    bool `json:"isCorrect"`
	PointsEarned int  `json:"pointsEarned"`
}

// Submit 评分并按 (question_id, student_id) 做 upsert。
// 没有锁定状态：重复提交直接覆盖原作答并重新评分。
func (s *AnswerService) Submit(studentID, questionID uint, answerText string) (*SubmitResult, error) {
	if _, err := s.UserRepo.FindByIDAndRole(studentID, model.Student); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}

	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	if _, err := s.EnrollmentRepo.Find(studentID, question.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotEnrolled
		}
		return nil, err
	}

	isCorrect, pointsEarned := Evaluate(question, answerText)

	answer := &model.QuestionAnswer{
		QuestionID:   questionID,
		StudentID:    studentID,
		AnswerText:   answerText,
		IsCorrect:    isCorrect,
		PointsEarned: pointsEarned,
		SubmittedAt:  time.Now(),
	}
	if err := s.AnswerRepo.Upsert(answer); err != nil {
		return nil, err
	}

	return &SubmitResult{IsCorrect: isCorrect, PointsEarned: pointsEarned}, nil
}
