package controller

import (
	"errors"
	"school_edu_backend/internal/service"
	"school_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{EnrollmentService: enrollmentService}
}

// swagger:model EnrollRequest
type EnrollRequest struct {
	UserID   util.FlexID `json:"userId" binding:"required"`
	CourseID util.FlexID `json:"courseId" binding:"required"`
}

// Enroll godoc
// @Summary 学生选课
// @Description 学生加入课程，(student, course) 不可重复
// @Tags 选课
// @Accept  json
// @Produce  json
// @Param   body body EnrollRequest true "选课信息"
// @Success 200 {object} util.Response{data=object} "选课成功"
// @Failure 400 {object} util.Response "参数错误或已选该课程"
// @Failure 404 {object} util.Response "学生或课程不存在"
// @Router /api/student/enroll [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.EnrollmentService.Enroll(req.UserID.Uint(), req.CourseID.Uint())
	if err != nil {
		switch {
		case errors.Is(err, util.ErrStudentNotFound):
			util.NotFound(ctx, "Student not found")
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, "Course not found")
		case errors.Is(err, util.ErrAlreadyEnrolled):
			// 历史行为：重复选课报 400 而非 409
			util.BadRequest(ctx, "Already enrolled in this course")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"enrollmentId": enrollment.ID})
}
