package models

import "time"

// Task is a graded assignment on some subject
type Task struct {
	ID      int
	Subject string
	DueDate time.Time
}

// TaskResult is the mark a student got for a task
type TaskResult struct {
	TaskID    int
	StudentID int
	Mark      float64
	Date      time.Time
}

// FinalMark halves the mark of a late submission
func (r TaskResult) FinalMark(dueDate time.Time) float64 {
	if r.Date.After(dueDate) {
		return r.Mark / 2
	}
	return r.Mark
}
