package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"school_edu_backend/internal/config"
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/repository"
	"school_edu_backend/internal/service"
	"school_edu_backend/internal/util"
	"school_edu_backend/pkg/logger"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
}

// newTestRouter 搭一套走真实服务层和内存库的路由
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.CourseMaterial{},
		&model.Enrollment{},
		&model.Question{},
		&model.QuestionAnswer{},
		&model.Progress{},
		&model.Submission{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	cfg := &config.Config{
		JWT:      config.JWTConfig{Secret: "test-secret-test-secret-test-secret", ExpireTime: time.Hour},
		Security: config.SecurityConfig{PasswordHash: "sha256"},
	}

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)

	authSvc := service.NewAuthService(userRepo, cfg)
	courseSvc := service.NewCourseService(courseRepo, enrollmentRepo, userRepo)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, courseRepo, userRepo)
	questionSvc := service.NewQuestionService(questionRepo, answerRepo, courseRepo, enrollmentRepo, userRepo)
	answerSvc := service.NewAnswerService(questionRepo, answerRepo, enrollmentRepo, userRepo)

	auth := NewAuthController(authSvc)
	course := NewCourseController(courseSvc)
	enrollment := NewEnrollmentController(enrollmentSvc)
	question := NewQuestionController(questionSvc, answerSvc)

	r := gin.New()
	r.POST("/api/signup", auth.Signup)
	r.POST("/api/login", auth.Login)
	r.POST("/api/teacher/courses", course.CreateCourse)
	r.DELETE("/api/teacher/courses/:courseId", course.DeleteCourse)
	r.POST("/api/teacher/courses/:courseId/questions", question.CreateQuestion)
	r.GET("/api/student/courses", course.ListAvailableCourses)
	r.POST("/api/student/enroll", enrollment.Enroll)
	r.GET("/api/student/courses/:courseId/questions", question.ListQuestionsForStudent)
	r.POST("/api/student/questions/answer", question.SubmitAnswer)

	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, util.Response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp util.Response
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, resp
}

func dataField(t *testing.T, resp util.Response, key string) interface{} {
	t.Helper()

	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("response data is %T, want object", resp.Data)
	}
	return data[key]
}

func signup(t *testing.T, r *gin.Engine, name, email, role string) uint {
	t.Helper()

	w, resp := doJSON(t, r, http.MethodPost, "/api/signup", gin.H{
		"name":     name,
		"email":    email,
		"password": "password123",
		"role":     role,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("signup %s: status %d body %s", email, w.Code, w.Body.String())
	}
	id, ok := dataField(t, resp, "userId").(float64)
	if !ok || id == 0 {
		t.Fatalf("signup %s: bad userId in %v", email, resp.Data)
	}
	return uint(id)
}

func TestSignupLoginFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	id := signup(t, r, "王老师", "wang@example.com", "teacher")
	if id == 0 {
		t.Fatal("expected user id")
	}

	// 重复邮箱
	w, _ := doJSON(t, r, http.MethodPost, "/api/signup", gin.H{
		"name":     "李同学",
		"email":    "wang@example.com",
		"password": "other",
		"role":     "student",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate email: status %d, want 409", w.Code)
	}

	w, resp := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email":    "wang@example.com",
		"password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: status %d body %s", w.Code, w.Body.String())
	}
	if role := dataField(t, resp, "role"); role != "teacher" {
		t.Fatalf("login role = %v", role)
	}
	if token, _ := dataField(t, resp, "token").(string); token == "" {
		t.Fatal("login missing token")
	}

	w, _ = doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email":    "wang@example.com",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad password: status %d, want 401", w.Code)
	}
}

func TestSignupValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	// 缺字段和非法角色都挡在绑定层
	for name, body := range map[string]gin.H{
		"missing email":   {"name": "x", "password": "pw", "role": "student"},
		"invalid role":    {"name": "x", "email": "x@example.com", "password": "pw", "role": "superuser"},
		"malformed email": {"name": "x", "email": "not-an-email", "password": "pw", "role": "student"},
	} {
		w, _ := doJSON(t, r, http.MethodPost, "/api/signup", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status %d, want 400", name, w.Code)
		}
	}
}

func TestCourseLifecycleOverHTTP(t *testing.T) {
	r, db := newTestRouter(t)

	teacherID := signup(t, r, "王老师", "teacher@example.com", "teacher")
	otherID := signup(t, r, "别的老师", "other@example.com", "teacher")
	studentID := signup(t, r, "李同学", "student@example.com", "student")

	// userId 传字符串也能创建成功
	w, resp := doJSON(t, r, http.MethodPost, "/api/teacher/courses", gin.H{
		"userId":     fmt.Sprintf("%d", teacherID),
		"title":      "代数",
		"subject":    "数学",
		"gradeLevel": "七年级",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create course: status %d body %s", w.Code, w.Body.String())
	}
	courseID := uint(dataField(t, resp, "id").(float64))

	w, _ = doJSON(t, r, http.MethodPost, "/api/student/enroll", gin.H{
		"userId":   studentID,
		"courseId": courseID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("enroll: status %d body %s", w.Code, w.Body.String())
	}

	// 重复选课报 400
	w, _ = doJSON(t, r, http.MethodPost, "/api/student/enroll", gin.H{
		"userId":   studentID,
		"courseId": courseID,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate enroll: status %d, want 400", w.Code)
	}

	// 非归属教师不能删
	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/teacher/courses/%d?userId=%d", courseID, otherID), nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("delete by non-owner: status %d, want 403", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/teacher/courses/%d?userId=%d", courseID, teacherID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete by owner: status %d body %s", w.Code, w.Body.String())
	}

	var n int64
	if err := db.Model(&model.Enrollment{}).Count(&n).Error; err != nil {
		t.Fatalf("count enrollments: %v", err)
	}
	if n != 0 {
		t.Fatalf("enrollments left after cascade: %d", n)
	}
}

func TestAnswerFlowOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	teacherID := signup(t, r, "王老师", "t@example.com", "teacher")
	studentID := signup(t, r, "李同学", "s@example.com", "student")

	_, resp := doJSON(t, r, http.MethodPost, "/api/teacher/courses", gin.H{
		"userId":     teacherID,
		"title":      "地理",
		"subject":    "地理",
		"gradeLevel": "七年级",
	})
	courseID := uint(dataField(t, resp, "id").(float64))

	w, resp := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/teacher/courses/%d/questions", courseID), gin.H{
		"userId":        teacherID,
		"questionText":  "法国的首都？",
		"questionType":  "multiple_choice",
		"options":       []string{"Paris", "London", "Berlin"},
		"correctAnswer": "Paris",
		"points":        5,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create question: status %d body %s", w.Code, w.Body.String())
	}
	questionID := uint(dataField(t, resp, "questionId").(float64))

	// 未选课提交被拒
	w, _ = doJSON(t, r, http.MethodPost, "/api/student/questions/answer", gin.H{
		"userId":     studentID,
		"questionId": questionID,
		"answerText": "Paris",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("answer before enroll: status %d, want 403", w.Code)
	}

	doJSON(t, r, http.MethodPost, "/api/student/enroll", gin.H{"userId": studentID, "courseId": courseID})

	w, resp = doJSON(t, r, http.MethodPost, "/api/student/questions/answer", gin.H{
		"userId":     studentID,
		"questionId": questionID,
		"answerText": "  paris ",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("answer: status %d body %s", w.Code, w.Body.String())
	}
	if correct, _ := dataField(t, resp, "isCorrect").(bool); !correct {
		t.Fatalf("case-insensitive match failed: %v", resp.Data)
	}
	if pts, _ := dataField(t, resp, "pointsEarned").(float64); pts != 5 {
		t.Fatalf("pointsEarned = %v, want 5", dataField(t, resp, "pointsEarned"))
	}

	// 学生视图不回传标准答案，但带作答状态
	w, resp = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/student/courses/%d/questions?userId=%d", courseID, studentID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("student questions: status %d body %s", w.Code, w.Body.String())
	}
	raw, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatalf("remarshal data: %v", err)
	}
	var payload struct {
		Questions []map[string]interface{} `json:"questions"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode questions: %v", err)
	}
	if len(payload.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(payload.Questions))
	}
	q := payload.Questions[0]
	if _, leaked := q["correctAnswer"]; leaked {
		t.Fatal("student view leaked correctAnswer")
	}
	if answered, _ := q["answered"].(bool); !answered {
		t.Fatalf("answered flag missing: %v", q)
	}
}
