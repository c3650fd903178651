package services

import (
	"sort"

	"github.com/yigit/classworks/internal/app/models"
	"github.com/yigit/classworks/internal/app/repositories"
	"github.com/yigit/classworks/internal/pkg/helpers"
)

// UniversityService defines the grade report
type UniversityService interface {
	// GroupReport orders groups by name and students by surname, each student appearing once
	// with results ordered by task id
	GroupReport() []GroupGrades
}

// GradedTask is a task with the mark that counts after the late penalty
type GradedTask struct {
	TaskID  int
	Subject string
	Mark    float64
}

// StudentGrades lists one student's graded tasks
type StudentGrades struct {
	Student models.Student
	Results []GradedTask
}

// GroupGrades lists the students of a group
type GroupGrades struct {
	Group    string
	Students []StudentGrades
}

type universityServiceImpl struct {
	repo     *repositories.UniversityRepository
	collator *helpers.Collator
}

// NewUniversityService creates a new university service instance
func NewUniversityService(repo *repositories.UniversityRepository, collator *helpers.Collator) UniversityService {
	return &universityServiceImpl{repo: repo, collator: collator}
}

type submission struct {
	student models.Student
	result  models.TaskResult
	task    models.Task
}

func (s *universityServiceImpl) GroupReport() []GroupGrades {
	tasks := indexBy(s.repo.Tasks(), func(t models.Task) int { return t.ID })
	results := s.repo.Results()

	var rows []submission
	for _, student := range s.repo.Students() {
		for _, result := range results {
			if result.StudentID != student.ID {
				continue
			}
			task, ok := tasks[result.TaskID]
			if !ok {
				continue
			}
			rows = append(rows, submission{student: student, result: result, task: task})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if c := s.collator.Compare(rows[i].student.Group, rows[j].student.Group); c != 0 {
			return c < 0
		}
		return s.collator.Less(rows[i].student.Surname, rows[j].student.Surname)
	})

	studentIDs, byStudent := groupBy(rows, func(r submission) int { return r.student.ID })

	grades := make([]StudentGrades, 0, len(studentIDs))
	for _, id := range studentIDs {
		subs := byStudent[id]
		entry := StudentGrades{Student: subs[0].student}
		for _, sub := range subs {
			entry.Results = append(entry.Results, GradedTask{
				TaskID:  sub.task.ID,
				Subject: sub.task.Subject,
				Mark:    sub.result.FinalMark(sub.task.DueDate),
			})
		}
		sort.SliceStable(entry.Results, func(i, j int) bool {
			return entry.Results[i].TaskID < entry.Results[j].TaskID
		})
		grades = append(grades, entry)
	}

	groups, byGroup := groupBy(grades, func(g StudentGrades) string { return g.Student.Group })
	report := make([]GroupGrades, 0, len(groups))
	for _, group := range groups {
		report = append(report, GroupGrades{Group: group, Students: byGroup[group]})
	}
	return report
}
