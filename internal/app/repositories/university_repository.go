package repositories

import (
	"fmt"
	"path/filepath"

	"github.com/yigit/classworks/internal/app/models"
	"github.com/yigit/classworks/internal/app/models/dto"
)

// University input files
const (
	TasksFile       = "Tasks.xml"
	StudentsFile    = "Students.xml"
	TaskResultsFile = "TaskResults.xml"
)

// UniversityRepository keeps tasks, students and their results in memory
type UniversityRepository struct {
	tasks    table[models.Task]
	students table[models.Student]
	results  table[models.TaskResult]
}

// NewUniversityRepository creates an empty UniversityRepository
func NewUniversityRepository() *UniversityRepository {
	return &UniversityRepository{}
}

func (r *UniversityRepository) AddTasks(tasks ...models.Task)          { r.tasks.insert(tasks...) }
func (r *UniversityRepository) AddStudents(students ...models.Student) { r.students.insert(students...) }
func (r *UniversityRepository) AddResults(results ...models.TaskResult) {
	r.results.insert(results...)
}

func (r *UniversityRepository) Tasks() []models.Task         { return r.tasks.all() }
func (r *UniversityRepository) Students() []models.Student   { return r.students.all() }
func (r *UniversityRepository) Results() []models.TaskResult { return r.results.all() }

// LoadFromDir replaces the repository content with Tasks.xml, Students.xml and
// TaskResults.xml from dir. Missing children default to empty values, dates are required.
// A numeric child that is present but empty fails the load.
func (r *UniversityRepository) LoadFromDir(dir string) error {
	tasks, err := loadTasks(filepath.Join(dir, TasksFile))
	if err != nil {
		return err
	}
	students, err := loadStudents(filepath.Join(dir, StudentsFile))
	if err != nil {
		return err
	}
	results, err := loadTaskResults(filepath.Join(dir, TaskResultsFile))
	if err != nil {
		return err
	}

	r.tasks.reset()
	r.students.reset()
	r.results.reset()
	r.AddTasks(tasks...)
	r.AddStudents(students...)
	r.AddResults(results...)
	return nil
}

func loadTasks(path string) ([]models.Task, error) {
	var doc dto.TasksDocument
	if err := decodeXMLFile(path, &doc); err != nil {
		return nil, err
	}

	tasks := make([]models.Task, 0, len(doc.Items))
	for _, item := range doc.Items {
		id, err := optionalInt("task id", item.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		due, err := parseDate("task due date", item.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		tasks = append(tasks, models.Task{ID: id, Subject: item.Subject, DueDate: due})
	}
	return tasks, nil
}

func loadStudents(path string) ([]models.Student, error) {
	var doc dto.StudentsDocument
	if err := decodeXMLFile(path, &doc); err != nil {
		return nil, err
	}

	students := make([]models.Student, 0, len(doc.Items))
	for _, item := range doc.Items {
		id, err := optionalInt("student id", item.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		students = append(students, models.Student{
			ID:      id,
			Name:    item.Name,
			Surname: item.Surname,
			Group:   item.Group,
		})
	}
	return students, nil
}

func loadTaskResults(path string) ([]models.TaskResult, error) {
	var doc dto.TaskResultsDocument
	if err := decodeXMLFile(path, &doc); err != nil {
		return nil, err
	}

	results := make([]models.TaskResult, 0, len(doc.Items))
	for _, item := range doc.Items {
		taskID, err := optionalInt("task id", item.TaskID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		studentID, err := optionalInt("student id", item.StudentID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		mark, err := optionalFloat("mark", item.Mark)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		date, err := parseDate("submission date", item.Date)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		results = append(results, models.TaskResult{TaskID: taskID, StudentID: studentID, Mark: mark, Date: date})
	}
	return results, nil
}
