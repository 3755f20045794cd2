// 手动灌入演示数据脚本
//
// 新环境首次部署或演示前执行一次，重复执行会跳过已存在的账号。
//
// 用法: go run scripts/seed_demo.go

package main

import (
	"errors"
	"log"
	"os"
	"school_edu_backend/internal/config"
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/util"
	"school_edu_backend/pkg/database"
	"school_edu_backend/pkg/logger"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	hasher := util.NewPasswordHasher(cfg.Security.PasswordHash)

	teacher := ensureUser(db, hasher, "演示教师", "teacher@demo.local", "teacher123", model.Teacher)
	student := ensureUser(db, hasher, "演示学生", "student@demo.local", "student123", model.Student)

	var course model.Course
	err = db.Where("title = ? AND teacher_id = ?", "演示课程：世界地理", teacher.ID).First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		course = model.Course{
			Title:       "演示课程：世界地理",
			Description: "面向演示环境的示例课程",
			Subject:     "地理",
			GradeLevel:  "七年级",
			TeacherID:   teacher.ID,
		}
		if err := db.Create(&course).Error; err != nil {
			log.Fatalf("创建演示课程失败: %v", err)
		}

		questions := []model.Question{
			{
				CourseID:      course.ID,
				QuestionText:  "法国的首都是哪座城市？",
				QuestionType:  model.MultipleChoice,
				Options:       `["Paris","London","Berlin","Madrid"]`,
				CorrectAnswer: "Paris",
				Points:        5,
				OrderIndex:    0,
			},
			{
				CourseID:      course.ID,
				QuestionText:  "简述板块构造学说的基本内容。",
				QuestionType:  model.ShortAnswer,
				CorrectAnswer: "地壳由若干板块构成，板块运动造成地震与造山带。",
				Points:        10,
				OrderIndex:    1,
			},
		}
		if err := db.Create(&questions).Error; err != nil {
			log.Fatalf("创建演示题目失败: %v", err)
		}

		material := model.CourseMaterial{
			CourseID:     course.ID,
			Title:        "第一课：认识地图",
			Content:      "比例尺、方向与图例的基本读法。",
			MaterialType: model.MaterialLesson,
		}
		if err := db.Create(&material).Error; err != nil {
			log.Fatalf("创建演示材料失败: %v", err)
		}
	} else if err != nil {
		log.Fatalf("查询演示课程失败: %v", err)
	}

	if err := db.Where("student_id = ? AND course_id = ?", student.ID, course.ID).
		FirstOrCreate(&model.Enrollment{StudentID: student.ID, CourseID: course.ID}).Error; err != nil {
		log.Fatalf("创建演示选课失败: %v", err)
	}

	log.Println("演示数据就绪！")
	log.Printf("教师账号: teacher@demo.local / teacher123")
	log.Printf("学生账号: student@demo.local / student123")
}

func ensureUser(db *gorm.DB, hasher util.PasswordHasher, name, email, password string, role model.UserRole) *model.User {
	var u model.User
	if err := db.Where("email = ?", email).First(&u).Error; err == nil {
		return &u
	}

	hashed, err := hasher.Hash(password)
	if err != nil {
		log.Fatalf("散列口令失败: %v", err)
	}
	u = model.User{Name: name, Email: email, Password: hashed, Role: role}
	if err := db.Create(&u).Error; err != nil {
		log.Fatalf("创建账号 %s 失败: %v", email, err)
	}
	return &u
}
