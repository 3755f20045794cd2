package service

import (
	"errors"
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/util"
	"testing"
)

func newMaterialService(t *testing.T) (*MaterialService, *testFixture) {
	t.Helper()

	f := newFixture(t)
	svc := NewMaterialService(f.materialRepo, f.courseRepo, f.enrollmentRepo, f.progressRepo, f.submissionRepo, f.userRepo)
	return svc, f
}

func TestCreateMaterialOwnerOnly(t *testing.T) {
	svc, f := newMaterialService(t)
	owner := seedUser(t, f.db, model.Teacher)
	other := seedUser(t, f.db, model.Teacher)
	course := seedCourse(t, f.db, owner.ID)

	m, err := svc.Create(owner.ID, course.ID, "第一课", "讲义内容", model.MaterialLesson, "")
	if err != nil {
		t.Fatalf("create material: %v", err)
	}
	if m.OrderIndex != 0 {
		t.Fatalf("first material order index = %d, want 0", m.OrderIndex)
	}

	m2, err := svc.Create(owner.ID, course.ID, "第二课", "讲义内容", model.MaterialVideo, "/uploads/x.mp4")
	if err != nil {
		t.Fatalf("create second material: %v", err)
	}
	if m2.OrderIndex != 1 {
		t.Fatalf("second material order index = %d, want 1", m2.OrderIndex)
	}

	if _, err := svc.Create(other.ID, course.ID, "蹭课", "x", model.MaterialLesson, ""); !errors.Is(err, util.ErrNotCourseOwner) {
		t.Fatalf("expected ErrNotCourseOwner, got %v", err)
	}
}

func TestMarkProgress(t *testing.T) {
	svc, f := newMaterialService(t)
	teacher := seedUser(t, f.db, model.Teacher)
	student := seedUser(t, f.db, model.Student)
	course := seedCourse(t, f.db, teacher.ID)
	seedEnrollment(t, f.db, student.ID, course.ID)

	m, err := svc.Create(teacher.ID, course.ID, "第一课", "讲义", model.MaterialLesson, "")
	if err != nil {
		t.Fatalf("create material: %v", err)
	}

	if err := svc.MarkProgress(student.ID, m.ID); err != nil {
		t.Fatalf("mark progress: %v", err)
	}
	// 重复标记覆盖而不是新增行
	if err := svc.MarkProgress(student.ID, m.ID); err != nil {
		t.Fatalf("mark progress again: %v", err)
	}
	if n := countRows(t, f.db, &model.Progress{}); n != 1 {
		t.Fatalf("progress rows = %d, want 1", n)
	}

	var p model.Progress
	if err := f.db.Where("student_id = ? AND material_id = ?", student.ID, m.ID).First(&p).Error; err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if !p.Completed || p.CompletedAt == nil {
		t.Fatalf("progress not completed: %+v", p)
	}
}

func TestMarkProgressRequiresEnrollment(t *testing.T) {
	svc, f := newMaterialService(t)
	teacher := seedUser(t, f.db, model.Teacher)
	outsider := seedUser(t, f.db, model.Student)
	course := seedCourse(t, f.db, teacher.ID)

	m, err := svc.Create(teacher.ID, course.ID, "第一课", "讲义", model.MaterialLesson, "")
	if err != nil {
		t.Fatalf("create material: %v", err)
	}

	if err := svc.MarkProgress(outsider.ID, m.ID); !errors.Is(err, util.ErrNotEnrolled) {
		t.Fatalf("expected ErrNotEnrolled, got %v", err)
	}
}

func TestSubmitAssignmentTypeCheck(t *testing.T) {
	svc, f := newMaterialService(t)
	teacher := seedUser(t, f.db, model.Teacher)
	student := seedUser(t, f.db, model.Student)
	course := seedCourse(t, f.db, teacher.ID)
	seedEnrollment(t, f.db, student.ID, course.ID)

	lesson, err := svc.Create(teacher.ID, course.ID, "讲义", "内容", model.MaterialLesson, "")
	if err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	assignment, err := svc.Create(teacher.ID, course.ID, "作业一", "写篇作文", model.MaterialAssignment, "")
	if err != nil {
		t.Fatalf("create assignment: %v", err)
	}

	if _, err := svc.SubmitAssignment(student.ID, lesson.ID, "交给讲义", ""); !errors.Is(err, util.ErrNotAssignment) {
		t.Fatalf("expected ErrNotAssignment, got %v", err)
	}

	sub, err := svc.SubmitAssignment(student.ID, assignment.ID, "我的作文", "")
	if err != nil {
		t.Fatalf("submit assignment: %v", err)
	}
	if sub.ID == 0 || sub.SubmittedAt.IsZero() {
		t.Fatalf("submission not persisted: %+v", sub)
	}
	if sub.Grade != nil {
		t.Fatal("fresh submission should be ungraded")
	}
}

func TestGradeSubmission(t *testing.T) {
	svc, f := newMaterialService(t)
	teacher := seedUser(t, f.db, model.Teacher)
	other := seedUser(t, f.db, model.Teacher)
	student := seedUser(t, f.db, model.Student)
	course := seedCourse(t, f.db, teacher.ID)
	seedEnrollment(t, f.db, student.ID, course.ID)

	assignment, err := svc.Create(teacher.ID, course.ID, "作业一", "写篇作文", model.MaterialAssignment, "")
	if err != nil {
		t.Fatalf("create assignment: %v", err)
	}
	sub, err := svc.SubmitAssignment(student.ID, assignment.ID, "我的作文", "")
	if err != nil {
		t.Fatalf("submit assignment: %v", err)
	}

	if _, err := svc.GradeSubmission(other.ID, sub.ID, 90, "不错"); !errors.Is(err, util.ErrNotCourseOwner) {
		t.Fatalf("expected ErrNotCourseOwner, got %v", err)
	}

	graded, err := svc.GradeSubmission(teacher.ID, sub.ID, 90, "结构清晰")
	if err != nil {
		t.Fatalf("grade submission: %v", err)
	}
	if graded.Grade == nil || *graded.Grade != 90 || graded.Feedback != "结构清晰" || graded.GradedAt == nil {
		t.Fatalf("grade not recorded: %+v", graded)
	}

	if _, err := svc.GradeSubmission(teacher.ID, 5555, 1, ""); !errors.Is(err, util.ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}
}
