package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("用户不存在")
	ErrStudentNotFound    = errors.New("student not found")
	ErrTeacherNotFound    = errors.New("teacher not found")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrNotCourseOwner     = errors.New("permission denied: not the course owner")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrMaterialNotFound   = errors.New("material not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")
	ErrNotEnrolled        = errors.New("not enrolled in this course")
	ErrNotAssignment      = errors.New("material does not accept submissions")
)
