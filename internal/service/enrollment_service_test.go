package service

import (
	"errors"
	"school_edu_backend/internal/model"
	"school_edu_backend/internal/util"
	"testing"
)

func newEnrollmentService(t *testing.T) (*EnrollmentService, *testFixture) {
	t.Helper()

	f := newFixture(t)
	return NewEnrollmentService(f.enrollmentRepo, f.courseRepo, f.userRepo), f
}

func TestEnroll(t *testing.T) {
	svc, f := newEnrollmentService(t)
	teacher := seedUser(t, f.db, model.Teacher)
	student := seedUser(t, f.db, model.Student)
	course := seedCourse(t, f.db, teacher.ID)

	e, err := svc.Enroll(student.ID, course.ID)
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if e.StudentID != student.ID || e.CourseID != course.ID {
		t.Fatalf("unexpected enrollment: %+v", e)
	}
}

func TestEnrollDuplicate(t *testing.T) {
	svc, f := newEnrollmentService(t)
	teacher := seedUser(t, f.db, model.Teacher)
	student := seedUser(t, f.db, model.Student)
	course := seedCourse(t, f.db, teacher.ID)

	if _, err := svc.Enroll(student.ID, course.ID); err != nil {
		t.Fatalf("first enroll: %v", err)
	}
	if _, err := svc.Enroll(student.ID, course.ID); !errors.Is(err, util.ErrAlreadyEnrolled) {
		t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
	}
	if n := countRows(t, f.db, &model.Enrollment{}); n != 1 {
		t.Fatalf("enrollment rows = %d, want 1", n)
	}
}

func TestEnrollRequiresStudent(t *testing.T) {
	svc, f := newEnrollmentService(t)
	teacher := seedUser(t, f.db, model.Teacher)
	course := seedCourse(t, f.db, teacher.ID)

	if _, err := svc.Enroll(teacher.ID, course.ID); !errors.Is(err, util.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestEnrollCourseNotFound(t *testing.T) {
	svc, f := newEnrollmentService(t)
	student := seedUser(t, f.db, model.Student)

	if _, err := svc.Enroll(student.ID, 424242); !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}
