package service

import (
	"encoding/json"
	"errors"
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/repository"
	"school_edu_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type QuestionService struct {
	QuestionRepo   *repository.QuestionRepository
	AnswerRepo     *repository.AnswerRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	UserRepo       *repository.UserRepository
}

func NewQuestionService(
	questionRepo *repository.QuestionRepository,
	answerRepo *repository.AnswerRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	userRepo *repository.UserRepository,
) *QuestionService {
	return &QuestionService{
		QuestionRepo:   questionRepo,
		AnswerRepo:     answerRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		UserRepo:       userRepo,
	}
}

// TeacherQuestionView 教师侧视图，包含标准答案
type TeacherQuestionView struct {
	ID            uint               `json:"id"`
	QuestionText  string             `json:"questionText"`
	QuestionType  model.QuestionType `json:"questionType"`
	Options       []string           `json:"options"`
	CorrectAnswer string             `json:"correctAnswer"`
	Points        int                `json:"points"`
	OrderIndex    int                `json:"orderIndex"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// StudentQuestionView 学生侧视图，隐去标准答案，附带本人作答状态
type StudentQuestionView struct {
	ID            uint               `json:"id"`
	QuestionText  string             `json:"questionText"`
	QuestionType  model.QuestionType `json:"questionType"`
	Options       []string           `json:"options"`
	Points        int                `json:"points"`
	OrderIndex    int                `json:"orderIndex"`
	Answered      bool               `json:"answered"`
	StudentAnswer string             `json:"studentAnswer,omitempty"`
	PointsEarned  int                `json:"pointsEarned"`
}

// Create 仅课程归属教师可出题；排序号取课程内最大值+1；
// 选项仅选择题持久化，序列化为 JSON 数组
func (s *QuestionService) Create(callerID, courseID uint, text string, qtype model.QuestionType, options []string, correctAnswer string, points int) (*model.Question, error) {
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

	orderIndex, err := s.QuestionRepo.NextOrderIndex(courseID)
	if err != nil {
		return nil, err
	}

	if points <= 0 {
		points = 1
	}

	var optionsJSON string
	if qtype == model.MultipleChoice && len(options) > 0 {
		raw, err := json.Marshal(options)
		if err != nil {
			return nil, err
		}
		optionsJSON = string(raw)
	}

	q := &model.Question{
		CourseID:      courseID,
		QuestionText:  text,
		QuestionType:  qtype,
		Options:       optionsJSON,
		CorrectAnswer: correctAnswer,
		Points:        points,
		OrderIndex:    orderIndex,
	}
	if err := s.QuestionRepo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

// ListForTeacher 课程存在即可查看（原有行为：不校验归属）
func (s *QuestionService) ListForTeacher(courseID uint) ([]TeacherQuestionView, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	questions, err := s.QuestionRepo.ListByCourse(courseID)
	if err != nil {
		return nil, err
	}

	views := make([]TeacherQuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, TeacherQuestionView{
			ID:            q.ID,
			QuestionText:  q.QuestionText,
			QuestionType:  q.QuestionType,
			Options:       q.OptionList(),
			CorrectAnswer: q.CorrectAnswer,
			Points:        q.Points,
			OrderIndex:    q.OrderIndex,
			CreatedAt:     q.CreatedAt,
		})
	}
	return views, nil
}

// ListForStudent 学生必须已选该课程；左联本人作答行，附带 answered 状态
func (s *QuestionService) ListForStudent(studentID, courseID uint) ([]StudentQuestionView, error) {
	if _, err := s.UserRepo.FindByIDAndRole(studentID, model.Student); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}

	if _, err := s.EnrollmentRepo.Find(studentID, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotEnrolled
		}
		return nil, err
	}

	questions, err := s.QuestionRepo.ListByCourse(courseID)
	if err != nil {
		return nil, err
	}

	answers, err := s.AnswerRepo.ListByStudent(studentID)
	if err != nil {
		return nil, err
	}
	answerByQuestion := make(map[uint]model.QuestionAnswer, len(answers))
	for _, a := range answers {
		answerByQuestion[a.QuestionID] = a
	}

	views := make([]StudentQuestionView, 0, len(questions))
	for _, q := range questions {
		view := StudentQuestionView{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			QuestionType: q.QuestionType,
			Options:      q.OptionList(),
			Points:       q.Points,
			OrderIndex:   q.OrderIndex,
		}
		if a, ok := answerByQuestion[q.ID]; ok {
			view.Answered = true
			view.StudentAnswer = a.AnswerText
			view.PointsEarned = a.PointsEarned
		}
		views = append(views, view)
	}
	return views, nil
}
