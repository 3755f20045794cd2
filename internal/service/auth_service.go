package service

import (
	"errors"
	"school_edu_backend/internal/config"
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/repository"
	"school_edu_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Hasher   util.PasswordHasher
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Hasher:   util.NewPasswordHasher(cfg.Security.PasswordHash),
		Cfg:      cfg,
	}
}

// Register 直接插入并依赖数据库唯一约束拦截重复邮箱，
// 避免先查后插在并发注册下双双成功。
func (s *AuthService) Register(user *model.User) error {
	hashed, err := s.Hasher.Hash(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed

	if err := s.UserRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return util.ErrEmailRegistered
		}
		return err
	}
	return nil
}

// Login 校验凭据，成功返回用户和一枚 JWT（见 DESIGN.md：令牌为附加项，
// 既有接口仍按约定接收显式 userId）
func (s *AuthService) Login(email, password string) (*model.User, string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	if !s.Hasher.Compare(user.Password, password) {
		return nil, "", util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, err := s.UserRepo.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}
