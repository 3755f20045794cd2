package repository

import (
	"school_edu_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Create 邮箱唯一性由数据库约束保证，冲突错误原样返回由上层翻译
func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

// FindByIDAndRole 按角色解析调用者身份，角色不符视为不存在
func (r *UserRepository) FindByIDAndRole(id uint, role model.UserRole) (*model.User, error) {
	var user model.User
	err := r.DB.Where("id = ? AND role = ?", id, role).First(&user).Error
	return &user, err
}

func (r *UserRepository) ListAll() ([]model.User, error) {
	var users []model.User
	err := r.DB.Select("id", "name", "email", "role").Find(&users).Error
	return users, err
}
