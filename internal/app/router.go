package app

import (
	"school_edu_backend/docs"
	"school_edu_backend/internal/config"
	"school_edu_backend/internal/middleware"
	"school_edu_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 教师相关接口
	a.registerTeacherRoutes(router, c)

	// 3. 学生相关接口
	a.registerStudentRoutes(router, c)

	// 4. 管理员相关接口
	a.registerAdminRoutes(router, c)

	// 5. JWT 鉴权接口
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/signup", c.auth.Signup)
		public.POST("/login", c.auth.Login)
		public.GET("/courses/:courseId/materials", c.material.ListMaterials)
	}
}

func (a *App) registerTeacherRoutes(router *gin.Engine, c *controllers) {
	teacher := router.Group("/api/teacher")
	{
		teacher.POST("/courses", c.course.CreateCourse)
		teacher.DELETE("/courses/:courseId", c.course.DeleteCourse)
		teacher.GET("/courses/:courseId/questions", c.question.ListQuestionsForTeacher)
		teacher.POST("/courses/:courseId/questions", c.question.CreateQuestion)
		teacher.POST("/courses/:courseId/materials", c.material.CreateMaterial)
		teacher.POST("/materials/upload", c.material.UploadFile)
		teacher.POST("/submissions/:submissionId/grade", c.material.GradeSubmission)
		teacher.GET("/dashboard", c.dashboard.TeacherDashboard)
	}
}

func (a *App) registerStudentRoutes(router *gin.Engine, c *controllers) {
	student := router.Group("/api/student")
	{
		student.GET("/courses", c.course.ListAvailableCourses)
		student.POST("/enroll", c.enrollment.Enroll)
		student.GET("/courses/:courseId/questions", c.question.ListQuestionsForStudent)
		student.POST("/questions/answer", c.question.SubmitAnswer)
		student.POST("/progress", c.material.MarkProgress)
		student.POST("/submissions", c.material.SubmitAssignment)
		student.GET("/dashboard", c.dashboard.StudentDashboard)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers) {
	admin := router.Group("/api/admin")
	{
		admin.GET("/dashboard", c.dashboard.AdminDashboard)
	}
}
