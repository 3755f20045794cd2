package controller

import (
	"errors"
	"school_edu_backend/internal/service"
	"school_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// AdminDashboard godoc
// @Summary 管理员仪表盘
// @Description 全站用户/学生/教师/课程计数及用户列表
// @Tags 仪表盘
// @Produce  json
// @Param   userId query int true "管理员ID"
// @Success 200 {object} util.Response{data=service.AdminDashboard} "成功"
// @Failure 404 {object} util.Response "管理员不存在"
// @Router /api/admin/dashboard [get]
func (c *DashboardController) AdminDashboard(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Query("userId"))
	if userID == 0 {
		util.BadRequest(ctx, "User ID required")
		return
	}

	dashboard, err := c.DashboardService.ForAdmin(userID)
	if err != nil {
		if errors.Is(err, util.ErrAdminNotFound) {
			util.NotFound(ctx, "Admin not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, dashboard)
}

// TeacherDashboard godoc
// @Summary 教师仪表盘
// @Description 教师名下全部课程
// @Tags 仪表盘
// @Produce  json
// @Param   userId query int true "教师ID"
// @Success 200 {object} util.Response{data=service.TeacherDashboard} "成功"
// @Failure 404 {object} util.Response "教师不存在"
// @Router /api/teacher/dashboard [get]
func (c *DashboardController) TeacherDashboard(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Query("userId"))
	if userID == 0 {
		util.BadRequest(ctx, "User ID required")
		return
	}

	dashboard, err := c.DashboardService.ForTeacher(userID)
	if err != nil {
		if errors.Is(err, util.ErrTeacherNotFound) {
			util.NotFound(ctx, "Teacher not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, dashboard)
}

// StudentDashboard godoc
// @Summary 学生仪表盘
// @Description 学生已选全部课程
// @Tags 仪表盘
// @Produce  json
// @Param   userId query int true "学生ID"
// @Success 200 {object} util.Response{data=service.StudentDashboard} "成功"
// @Failure 404 {object} util.Response "学生不存在"
// @Router /api/student/dashboard [get]
func (c *DashboardController) StudentDashboard(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Query("userId"))
	if userID == 0 {
		util.BadRequest(ctx, "User ID required")
		return
	}

	dashboard, err := c.DashboardService.ForStudent(userID)
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx, "Student not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, dashboard)
}
