package database

import (
	"errors"
	"fmt"
	"log"
	"school_edu_backend/internal/config"
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/util"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 打开进程唯一的数据库句柄并幂等地建表。
// 默认 driver 为 sqlite（单文件库），driver=mysql 时走网络数据库。
func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		dialector = mysql.Open(dsn)
	default:
		dialector = sqlite.Open(cfg.Path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true, // 唯一约束冲突统一转为 gorm.ErrDuplicatedKey
	})

	if err != nil {
		return nil, err
	}

	// sqlite 默认关闭外键约束
	if cfg.Driver != "mysql" {
		db.Exec("PRAGMA foreign_keys = ON")
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.CourseMaterial{},
		&model.Enrollment{},
		&model.Question{},
		&model.QuestionAnswer{},
		&model.Progress{},
		&model.Submission{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// SeedAdmin 管理员账号不存在时创建，已存在时更新口令
func SeedAdmin(db *gorm.DB, cfg *config.AdminConfig, hasher util.PasswordHasher) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	hashed, err := hasher.Hash(cfg.Password)
	if err != nil {
		return err
	}

	var existing model.User
	err = db.Where("email = ?", cfg.Email).First(&existing).Error
	if err == nil {
		return db.Model(&existing).Updates(map[string]interface{}{
			"password": hashed,
			"role":     model.Admin,
		}).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	name := cfg.Name
	if name == "" {
		name = "Admin User"
	}
	admin := &model.User{
		Name:     name,
		Email:    cfg.Email,
		Password: hashed,
		Role:     model.Admin,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Admin user %s created", cfg.Email)
	return nil
}
