package service

import (
	"errors"
	"fmt"
	"path/filepath"
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/repository"
	"school_edu_backend/internal/util"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	return NewAuthService(userRepo, newTestConfig()), userRepo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	u := &model.User{
		Name:     "张三",
		Email:    "zhangsan@example.com",
		Password: "secret123",
		Role:     model.Student,
	}
	if err := svc.Register(u); err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("expected user id to be assigned")
	}
	if u.Password == "secret123" {
		t.Fatal("password stored in plaintext")
	}

	got, token, err := svc.Login("zhangsan@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != u.ID || got.Role != model.Student {
		t.Fatalf("login returned wrong user: %+v", got)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	claims, err := util.ParseJWT(token, svc.Cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != u.ID || claims.Role != model.Student {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	first := &model.User{Name: "A", Email: "dup@example.com", Password: "pw1", Role: model.Student}
	if err := svc.Register(first); err != nil {
		t.Fatalf("first register: %v", err)
	}

	second := &model.User{Name: "B", Email: "dup@example.com", Password: "pw2", Role: model.Teacher}
	if err := svc.Register(second); !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("expected ErrEmailRegistered, got %v", err)
	}
}

// 并发注册同一邮箱：靠唯一约束保证恰好一个成功。
// 用临时文件库而非内存库，让两个连接落在同一份数据上。
func TestRegisterConcurrentSameEmail(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "auth.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	svc := NewAuthService(repository.NewUserRepository(db), newTestConfig())

	start := make(chan struct{})
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func(i int) {
			u := &model.User{
				Name:     fmt.Sprintf("并发用户%d", i),
				Email:    "race@example.com",
				Password: "pw",
				Role:     model.Student,
			}
			<-start
			errs <- svc.Register(u)
		}(i)
	}
	close(start)

	var succeeded, rejected int
	for i := 0; i < 2; i++ {
		switch err := <-errs; {
		case err == nil:
			succeeded++
		case errors.Is(err, util.ErrEmailRegistered):
			rejected++
		default:
			t.Fatalf("unexpected register error: %v", err)
		}
	}
	if succeeded != 1 || rejected != 1 {
		t.Fatalf("got %d successes and %d rejections, want exactly 1 of each", succeeded, rejected)
	}

	var n int64
	if err := db.Model(&model.User{}).Where("email = ?", "race@example.com").Count(&n).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if n != 1 {
		t.Fatalf("user rows for race@example.com = %d, want 1", n)
	}
}

func TestLoginWrongCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	u := &model.User{Name: "C", Email: "c@example.com", Password: "correct", Role: model.Student}
	if err := svc.Register(u); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login("c@example.com", "wrong"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "correct"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterAllowsEveryRole(t *testing.T) {
	svc, _ := newAuthService(t)

	for i, role := range []model.UserRole{model.Student, model.Teacher, model.Admin} {
		u := &model.User{
			Name:     "R",
			Email:    string(role) + "@example.com",
			Password: "pw",
			Role:     role,
		}
		if err := svc.Register(u); err != nil {
			t.Fatalf("register role %s (#%d): %v", role, i, err)
		}
	}
}
