package service

import (
	"context"
	"encoding/json"
	"errors"
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/repository"
	"school_edu_backend/internal/util"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const adminStatsCacheKey = "dashboard:admin:stats"

type DashboardService struct {
	UserRepo       *repository.UserRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	DashboardRepo  *repository.DashboardRepository
	Redis          *redis.Client // 可为 nil，此时不缓存
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	dashboardRepo *repository.DashboardRepository,
	rdb *redis.Client,
) *DashboardService {
	return &DashboardService{
		UserRepo:       userRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		DashboardRepo:  dashboardRepo,
		Redis:          rdb,
	}
}

// AdminStats 全站计数
type AdminStats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalStudents int64 `json:"totalStudents"`
	TotalTeachers int64 `json:"totalTeachers"`
	TotalCourses  int64 `json:"totalCourses"`
}

type AdminDashboard struct {
	Name  string       `json:"name"`
	Stats AdminStats   `json:"stats"`
	Users []model.User `json:"users"`
}

type TeacherDashboard struct {
	Name    string         `json:"name"`
	Courses []model.Course `json:"courses"`
}

type StudentDashboard struct {
	Name    string         `json:"name"`
	Courses []model.Course `json:"courses"`
}

// ForAdmin 计数 + 全量用户列表（目标规模下不分页）
func (s *DashboardService) ForAdmin(callerID uint) (*AdminDashboard, error) {
	admin, err := s.UserRepo.FindByIDAndRole(callerID, model.Admin)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAdminNotFound
		}
		return nil, err
	}

	stats, err := s.adminStats()
	if err != nil {
		return nil, err
	}

	users, err := s.UserRepo.ListAll()
	if err != nil {
		return nil, err
	}

	return &AdminDashboard{
		Name:  admin.Name,
		Stats: *stats,
		Users: users,
	}, nil
}

// adminStats 开了 redis 时缓存 60 秒，缓存不可用则直接查库
func (s *DashboardService) adminStats() (*AdminStats, error) {
	ctx := context.Background()

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, adminStatsCacheKey).Result(); err == nil {
			var stats AdminStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	var stats AdminStats
	var err error
	if stats.TotalUsers, err = s.DashboardRepo.CountUsers(); err != nil {
		return nil, err
	}
	if stats.TotalStudents, err = s.DashboardRepo.CountUsersByRole(model.Student); err != nil {
		return nil, err
	}
	if stats.TotalTeachers, err = s.DashboardRepo.CountUsersByRole(model.Teacher); err != nil {
		return nil, err
	}
	if stats.TotalCourses, err = s.DashboardRepo.CountCourses(); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if raw, err := json.Marshal(&stats); err == nil {
			s.Redis.Set(ctx, adminStatsCacheKey, raw, 60*time.Second)
		}
	}

	return &stats, nil
}

func (s *DashboardService) ForTeacher(callerID uint) (*TeacherDashboard, error) {
	teacher, err := s.UserRepo.FindByIDAndRole(callerID, model.Teacher)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTeacherNotFound
		}
		return nil, err
	}

	courses, err := s.CourseRepo.FindByTeacher(callerID)
	if err != nil {
		return nil, err
	}

	return &TeacherDashboard{Name: teacher.Name, Courses: courses}, nil
}

func (s *DashboardService) ForStudent(callerID uint) (*StudentDashboard, error) {
	student, err := s.UserRepo.FindByIDAndRole(callerID, model.Student)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}

	courses, err := s.EnrollmentRepo.CoursesByStudent(callerID)
	if err != nil {
		return nil, err
	}

	return &StudentDashboard{Name: student.Name, Courses: courses}, nil
}
