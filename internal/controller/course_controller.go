package controller

import (
	"errors"
	"school_edu_backend/internal/service"
	"school_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// swagger:model CreateCourseRequest
type CreateCourseRequest struct {
	UserID      util.FlexID `json:"userId" binding:"required"`
	Title       string      `json:"title" binding:"required"`
	Subject     string      `json:"subject" binding:"required"`
	GradeLevel  string      `json:"gradeLevel" binding:"required"`
	Description string      `json:"description"`
}

// CreateCourse godoc
// @Summary 创建课程
// @Description 以请求中的 userId 作为课程归属教师创建课程
// @Tags 课程
// @Accept  json
// @Produce  json
// @Param   body body CreateCourseRequest true "课程信息"
// @Success 200 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "缺少必填字段"
// @Router /api/teacher/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Create(req.UserID.Uint(), req.Title, req.Subject, req.GradeLevel, req.Description)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"id": course.ID})
}

// DeleteCourse godoc
// @Summary 删除课程
// @Description 删除课程及其题目、作答、材料、进度、提交和选课记录，整体在一个事务内
// @Tags 课程
// @Produce  json
// @Param   courseId path int true "课程ID"
// @Param   userId query int true "调用者ID"
// @Success 200 {object} util.Response "删除成功"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 403 {object} util.Response "非课程归属教师"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/teacher/courses/{courseId} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
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

	if err := c.CourseService.Delete(userID, courseID); err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, "Course not found")
		case errors.Is(err, util.ErrNotCourseOwner):
			util.Forbidden(ctx, "You can only delete your own courses")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Course deleted successfully"})
}

// ListAvailableCourses godoc
// @Summary 学生可选课程列表
// @Description 全部课程连同授课教师姓名，并标记是否已选
// @Tags 课程
// @Produce  json
// @Param   userId query int true "学生ID"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "缺少 userId"
// @Failure 404 {object} util.Response "学生不存在"
// @Router /api/student/courses [get]
func (c *CourseController) ListAvailableCourses(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Query("userId"))
	if userID == 0 {
		util.BadRequest(ctx, "User ID required")
		return
	}

	courses, err := c.CourseService.ListAvailable(userID)
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx, "Student not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"courses": courses})
}
