package service

import (
	"errors"
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/util"
	"testing"
)

func newQuestionService(t *testing.T) (*QuestionService, *testFixture) {
	t.Helper()

	f := newFixture(t)
	return NewQuestionService(f.questionRepo, f.answerRepo, f.courseRepo, f.enrollmentRepo, f.userRepo), f
}

func TestCreateQuestionOrderIndex(t *testing.T) {
	svc, f := newQuestionService(t)
	teacher := seedUser(t, f.db, model.Teacher)
	course := seedCourse(t, f.db, teacher.ID)

	// 排序号从 0 开始，逐题加一
	for want := 0; want < 3; want++ {
		q, err := svc.Create(teacher.ID, course.ID, "题目", model.ShortAnswer, nil, "答案", 2)
		if err != nil {
			t.Fatalf("create question #%d: %v", want, err)
		}
		if q.OrderIndex != want {
			t.Fatalf("order index = %d, want %d", q.OrderIndex, want)
		}
	}
}

func TestCreateQuestionDefaults(t *testing.T) {
	svc, f := newQuestionService(t)
	teacher := seedUser(t, f.db, model.Teacher)
	course := seedCourse(t, f.db, teacher.ID)

	q, err := svc.Create(teacher.ID, course.ID, "零分题", model.Essay, nil, "", 0)
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	if q.Points != 1 {
		t.Fatalf("points = %d, want fallback 1", q.Points)
	}

	// 非选择题不持久化选项
	q2, err := svc.Create(teacher.ID, course.ID, "简答", model.ShortAnswer, []string{"A", "B"}, "A", 1)
	if err != nil {
		t.Fatalf("create short answer: %v", err)
	}
	if q2.Options != "" {
		t.Fatalf("options persisted for short answer: %q", q2.Options)
	}

	q3, err := svc.Create(teacher.ID, course.ID, "选择", model.MultipleChoice, []string{"红", "绿", "蓝"}, "红", 1)
	if err != nil {
		t.Fatalf("create multiple choice: %v", err)
	}
	if got := q3.OptionList(); len(got) != 3 || got[0] != "红" {
		t.Fatalf("option list = %v", got)
	}
}

func TestCreateQuestionOwnerOnly(t *testing.T) {
	svc, f := newQuestionService(t)
	owner := seedUser(t, f.db, model.Teacher)
	other := seedUser(t, f.db, model.Teacher)
	course := seedCourse(t, f.db, owner.ID)

	if _, err := svc.Create(other.ID, course.ID, "偷偷出题", model.Essay, nil, "", 1); !errors.Is(err, util.ErrNotCourseOwner) {
		t.Fatalf("expected ErrNotCourseOwner, got %v", err)
	}
	if _, err := svc.Create(owner.ID, 777, "没有课程", model.Essay, nil, "", 1); !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestListForTeacherIncludesAnswer(t *testing.T) {
	svc, f := newQuestionService(t)
	teacher := seedUser(t, f.db, model.Teacher)
	course := seedCourse(t, f.db, teacher.ID)

	if _, err := svc.Create(teacher.ID, course.ID, "首都是哪", model.MultipleChoice, []string{"北京", "上海"}, "北京", 3); err != nil {
		t.Fatalf("create question: %v", err)
	}

	views, err := svc.ListForTeacher(course.ID)
	if err != nil {
		t.Fatalf("list for teacher: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("got %d questions, want 1", len(views))
	}
	if views[0].CorrectAnswer != "北京" {
		t.Fatalf("teacher view missing correct answer: %+v", views[0])
	}
}

func TestListForStudentHidesAnswerAndAttachesStatus(t *testing.T) {
	svc, f := newQuestionService(t)
	teacher := seedUser(t, f.db, model.Teacher)
	student := seedUser(t, f.db, model.Student)
	course := seedCourse(t, f.db, teacher.ID)
	seedEnrollment(t, f.db, student.ID, course.ID)

	answered, err := svc.Create(teacher.ID, course.ID, "已作答", model.MultipleChoice, []string{"对", "错"}, "对", 4)
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	if _, err := svc.Create(teacher.ID, course.ID, "未作答", model.ShortAnswer, nil, "参考", 2); err != nil {
		t.Fatalf("create question: %v", err)
	}

	if err := f.db.Create(&model.QuestionAnswer{
		QuestionID:   answered.ID,
		StudentID:    student.ID,
		AnswerText:   "对",
		IsCorrect:    true,
		PointsEarned: 4,
	}).Error; err != nil {
		t.Fatalf("seed answer: %v", err)
	}

	views, err := svc.ListForStudent(student.ID, course.ID)
	if err != nil {
		t.Fatalf("list for student: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("got %d questions, want 2", len(views))
	}

	first, second := views[0], views[1]
	if !first.Answered || first.StudentAnswer != "对" || first.PointsEarned != 4 {
		t.Fatalf("answered question status missing: %+v", first)
	}
	if second.Answered || second.StudentAnswer != "" || second.PointsEarned != 0 {
		t.Fatalf("unanswered question has status: %+v", second)
	}
}

func TestListForStudentRequiresEnrollment(t *testing.T) {
	svc, f := newQuestionService(t)
	teacher := seedUser(t, f.db, model.Teacher)
	student := seedUser(t, f.db, model.Student)
	course := seedCourse(t, f.db, teacher.ID)

	if _, err := svc.ListForStudent(student.ID, course.ID); !errors.Is(err, util.ErrNotEnrolled) {
		t.Fatalf("expected ErrNotEnrolled, got %v", err)
	}
	if _, err := svc.ListForStudent(teacher.ID, course.ID); !errors.Is(err, util.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}
