package service

import (
	"fmt"
	"school_edu_backend/internal/config"
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/repository"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB 每个测试用独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
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

	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret-test-secret-test-secret",
			ExpireTime: 24 * time.Hour,
		},
		Security: config.SecurityConfig{
			PasswordHash: "sha256",
		},
	}
}

var userSeq int

func seedUser(t *testing.T, db *gorm.DB, role model.UserRole) *model.User {
	t.Helper()

	userSeq++
	u := &model.User{
		Name:     fmt.Sprintf("User %d", userSeq),
		Email:    fmt.Sprintf("user%d@example.com", userSeq),
		Password: "hashed",
		Role:     role,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedCourse(t *testing.T, db *gorm.DB, teacherID uint) *model.Course {
	t.Helper()

	c := &model.Course{
		Title:      "代数基础",
		Subject:    "数学",
		GradeLevel: "七年级",
		TeacherID:  teacherID,
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return c
}

func seedEnrollment(t *testing.T, db *gorm.DB, studentID, courseID uint) {
	t.Helper()

	if err := db.Create(&model.Enrollment{StudentID: studentID, CourseID: courseID}).Error; err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}
}

// testFixture 打包一套仓储，省得每个测试重复拼装
type testFixture struct {
	db             *gorm.DB
	userRepo       *repository.UserRepository
	courseRepo     *repository.CourseRepository
	enrollmentRepo *repository.EnrollmentRepository
	questionRepo   *repository.QuestionRepository
	answerRepo     *repository.AnswerRepository
	materialRepo   *repository.MaterialRepository
	progressRepo   *repository.ProgressRepository
	submissionRepo *repository.SubmissionRepository
	dashboardRepo  *repository.DashboardRepository
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()

	db := newTestDB(t)
	return &testFixture{
		db:             db,
		userRepo:       repository.NewUserRepository(db),
		courseRepo:     repository.NewCourseRepository(db),
		enrollmentRepo: repository.NewEnrollmentRepository(db),
		questionRepo:   repository.NewQuestionRepository(db),
		answerRepo:     repository.NewAnswerRepository(db),
		materialRepo:   repository.NewMaterialRepository(db),
		progressRepo:   repository.NewProgressRepository(db),
		submissionRepo: repository.NewSubmissionRepository(db),
		dashboardRepo:  repository.NewDashboardRepository(db),
	}
}

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()

	var n int64
	if err := db.Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return n
}
