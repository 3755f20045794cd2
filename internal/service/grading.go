package service

import (
	"school_edu_backend/internal/model"
	"strings"
)

// Evaluate 按题型对提交的答案评分。
// 选择题做去空白、忽略大小写的精确比对，答对得满分，答错得 0 分；
// 简答题和作文题暂记满分但不标记正确，等教师人工复核。
func Evaluate(q *model.Question, submitted string) (isCorrect bool, pointsEarned int) {
	if q.QuestionType == model.MultipleChoice {
		// 标准答案为空时不可能答对，也避免空白提交误判满分
		if strings.TrimSpace(q.CorrectAnswer) == "" {
			return false, 0
		}
		if strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(q.CorrectAnswer)) {
			return true, q.Points
		}
		return false, 0
	}
	return false, q.Points
}
