package controller

import (
	"errors"
	"fmt"
	"path/filepath"
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/service"
	"school_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MaterialController struct {
	MaterialService *service.MaterialService
	StorageService  *service.StorageService
}

func NewMaterialController(materialService *service.MaterialService, storageService *service.StorageService) *MaterialController {
	return &MaterialController{
		MaterialService: materialService,
		StorageService:  storageService,
	}
}

// swagger:model CreateMaterialRequest
type CreateMaterialRequest struct {
	UserID       util.FlexID `json:"userId" binding:"required"`
	Title        string      `json:"title" binding:"required"`
	Content      string      `json:"content" binding:"required"`
	MaterialType string      `json:"materialType" binding:"required,oneof=lesson video assignment resource"`
	FileURL      string      `json:"fileUrl"`
}

// CreateMaterial godoc
// @Summary 创建课程材料
// @Description 仅课程归属教师可添加材料
// @Tags 材料
// @Accept  json
// @Produce  json
// @Param   courseId path int true "课程ID"
// @Param   body body CreateMaterialRequest true "材料信息"
// @Success 200 {object} util.Response{data=object} "创建成功"
// @Failure 403 {object} util.Response "非课程归属教师"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/teacher/courses/{courseId}/materials [post]
func (c *MaterialController) CreateMaterial(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("courseId"))
	if courseID == 0 {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}

	var req CreateMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	material, err := c.MaterialService.Create(
		req.UserID.Uint(),
		courseID,
		req.Title,
		req.Content,
		model.MaterialType(req.MaterialType),
		req.FileURL,
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

	util.Success(ctx, gin.H{"materialId": material.ID})
}

// ListMaterials godoc
// @Summary 课程材料列表
// @Tags 材料
// @Produce  json
// @Param   courseId path int true "课程ID"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{courseId}/materials [get]
func (c *MaterialController) ListMaterials(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("courseId"))
	if courseID == 0 {
		util.BadRequest(ctx, "Invalid course ID")
		return
	}

	materials, err := c.MaterialService.ListByCourse(courseID)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, "Course not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"materials": materials})
}

// UploadFile godoc
// @Summary 上传材料文件
// @Description multipart 上传，返回可访问的文件 URL
// @Tags 材料
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "文件"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "缺少文件"
// @Router /api/teacher/materials/upload [post]
func (c *MaterialController) UploadFile(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file required")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	filename := fmt.Sprintf("materials/%s%s", uuid.New().String(), filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, src, fileHeader.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"fileUrl": url})
}

// swagger:model MarkProgressRequest
type MarkProgressRequest struct {
	UserID     util.FlexID `json:"userId" binding:"required"`
	MaterialID util.FlexID `json:"materialId" binding:"required"`
}

// MarkProgress godoc
// @Summary 标记材料完成
// @Description 已选课学生标记材料学习完成，重复标记覆盖
// @Tags 材料
// @Accept  json
// @Produce  json
// @Param   body body MarkProgressRequest true "进度信息"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "未选该课程"
// @Failure 404 {object} util.Response "学生或材料不存在"
// @Router /api/student/progress [post]
func (c *MaterialController) MarkProgress(ctx *gin.Context) {
	var req MarkProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.MaterialService.MarkProgress(req.UserID.Uint(), req.MaterialID.Uint()); err != nil {
		switch {
		case errors.Is(err, util.ErrStudentNotFound):
			util.NotFound(ctx, "Student not found")
		case errors.Is(err, util.ErrMaterialNotFound):
			util.NotFound(ctx, "Material not found")
		case errors.Is(err, util.ErrNotEnrolled):
			util.Forbidden(ctx, "Not enrolled in this course")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Progress recorded"})
}

// swagger:model SubmitAssignmentRequest
type SubmitAssignmentRequest struct {
	UserID         util.FlexID `json:"userId" binding:"required"`
	MaterialID     util.FlexID `json:"materialId" binding:"required"`
	SubmissionText string      `json:"submissionText" binding:"required"`
	FileURL        string      `json:"fileUrl"`
}

// SubmitAssignment godoc
// @Summary 提交作业
// @Description 仅 assignment 类型材料接收提交，教师事后人工评分
// @Tags 材料
// @Accept  json
// @Produce  json
// @Param   body body SubmitAssignmentRequest true "提交内容"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "材料不接收提交"
// @Failure 403 {object} util.Response "未选该课程"
// @Failure 404 {object} util.Response "学生或材料不存在"
// @Router /api/student/submissions [post]
func (c *MaterialController) SubmitAssignment(ctx *gin.Context) {
	var req SubmitAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sub, err := c.MaterialService.SubmitAssignment(req.UserID.Uint(), req.MaterialID.Uint(), req.SubmissionText, req.FileURL)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrStudentNotFound):
			util.NotFound(ctx, "Student not found")
		case errors.Is(err, util.ErrMaterialNotFound):
			util.NotFound(ctx, "Material not found")
		case errors.Is(err, util.ErrNotAssignment):
			util.BadRequest(ctx, "Material does not accept submissions")
		case errors.Is(err, util.ErrNotEnrolled):
			util.Forbidden(ctx, "Not enrolled in this course")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"submissionId": sub.ID})
}

// swagger:model GradeSubmissionRequest
type GradeSubmissionRequest struct {
	UserID   util.FlexID `json:"userId" binding:"required"`
	Grade    int         `json:"grade" binding:"min=0,max=100"`
	Feedback string      `json:"feedback"`
}

// GradeSubmission godoc
// @Summary 批改作业
// @Description 材料所属课程的归属教师打分并留评语
// @Tags 材料
// @Accept  json
// @Produce  json
// @Param   submissionId path int true "提交ID"
// @Param   body body GradeSubmissionRequest true "评分"
// @Success 200 {object} util.Response{data=model.Submission} "成功"
// @Failure 403 {object} util.Response "非课程归属教师"
// @Failure 404 {object} util.Response "提交不存在"
// @Router /api/teacher/submissions/{submissionId}/grade [post]
func (c *MaterialController) GradeSubmission(ctx *gin.Context) {
	submissionID := util.MustParseUint(ctx.Param("submissionId"))
	if submissionID == 0 {
		util.BadRequest(ctx, "Invalid submission ID")
		return
	}

	var req GradeSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sub, err := c.MaterialService.GradeSubmission(req.UserID.Uint(), submissionID, req.Grade, req.Feedback)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSubmissionNotFound):
			util.NotFound(ctx, "Submission not found")
		case errors.Is(err, util.ErrNotCourseOwner):
			util.Forbidden(ctx, "")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, sub)
}
