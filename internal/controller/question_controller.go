package controller

import (
	"errors"
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/service"
	"school_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
	AnswerService   *service.AnswerService
}

func NewQuestionController(questionService *service.QuestionService, answerService *service.AnswerService) *QuestionController {
	return &QuestionController{
		QuestionService: questionService,
		AnswerService:   answerService,
	}
}

// swagger:model CreateQuestionRequest
type CreateQuestionRequest struct {
	UserID        util.FlexID `json:"userId" binding:"required"`
	QuestionText  string      `json:"questionText" binding:"required"`
	QuestionType  string      `json:"questionType" binding:"required,oneof=multiple_choice short_answer essay"`
	Options       []string    `json:"options"`
	CorrectAnswer string      `json:"correctAnswer"`
	Points        int         `json:"points"`
}

// CreateQuestion godoc
// @Summary 创建题目
// @Description 仅课程归属教师可出题；排序号自动取课程内最大值+1
// @Tags 题目
// @Accept  json
// @Produce  json
// @Param   courseId path int true "课程ID"
// @Param   body body CreateQuestionRequest true "题目信息"
// @Success 200 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 403 {object} util.Response "非课程归属教师"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/teacher/courses/{courseId}/questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("courseId"))
	if courseID == 0 {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}

	var req CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Create(
		req.UserID.Uint(),
		courseID,
		req.QuestionText,
		model.QuestionType(req.QuestionType),
		req.Options,
		req.CorrectAnswer,
		req.Points,
	)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, "Course not found")
		case errors.Is(err, util.ErrNotCourseOwner):
			util.Forbidden(ctx, "")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"questionId": question.ID})
}

// ListQuestionsForTeacher godoc
// @Summary 教师侧题目列表
// @Description 课程全部题目，包含标准答案
// @Tags 题目
// @Produce  json
// @Param   courseId path int true "课程ID"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/teacher/courses/{courseId}/questions [get]
func (c *QuestionController) ListQuestionsForTeacher(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("courseId"))
	if courseID == 0 {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}

	questions, err := c.QuestionService.ListForTeacher(courseID)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, "Course not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"questions": questions})
}

// ListQuestionsForStudent godoc
// @Summary 学生侧题目列表
// @Description 已选课学生查看题目，隐去标准答案，附带本人作答状态
// @Tags 题目
// @Produce  json
// @Param   courseId path int true "课程ID"
// @Param   userId query int true "学生ID"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 403 {object} util.Response "未选该课程"
// @Failure 404 {object} util.Response "学生或课程不存在"
// @Router /api/student/courses/{courseId}/questions [get]
func (c *QuestionController) ListQuestionsForStudent(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Query("userId"))
	if userID == 0 {
		util.BadRequest(ctx, "User ID required")
		return
	}

	courseID := util.MustParseUint(ctx.Param("courseId"))
	if courseID == 0 {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}

	questions, err := c.QuestionService.ListForStudent(userID, courseID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrStudentNotFound):
			util.NotFound(ctx, "Student not found")
		case errors.Is(err, util.ErrNotEnrolled):
			util.Forbidden(ctx, "Not enrolled in this course")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"questions": questions})
}

// swagger:model SubmitAnswerRequest
type SubmitAnswerRequest struct {
	UserID     util.FlexID `json:"userId" binding:"required"`
	QuestionID util.FlexID `json:"questionId" binding:"required"`
	AnswerText string      `json:"answerText" binding:"required"`
}

// SubmitAnswer godoc
// @Summary 提交作答
// @Description 评分并写入作答记录；重复提交覆盖原作答并重新评分
// @Tags 题目
// @Accept  json
// @Produce  json
// @Param   body body SubmitAnswerRequest true "作答内容"
// @Success 200 {object} util.Response{data=service.SubmitResult} "成功"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 403 {object} util.Response "未选该课程"
// @Failure 404 {object} util.Response "学生或题目不存在"
// @Router /api/student/questions/answer [post]
func (c *QuestionController) SubmitAnswer(ctx *gin.Context) {
	var req SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AnswerService.Submit(req.UserID.Uint(), req.QuestionID.Uint(), req.AnswerText)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrStudentNotFound):
			util.NotFound(ctx, "Student not found")
		case errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx, "Question not found")
		case errors.Is(err, util.ErrNotEnrolled):
			util.Forbidden(ctx, "Not enrolled in this course")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}
