package dto

import "encoding/xml"

// TasksDocument is the root of Tasks.xml
type TasksDocument struct {
	XMLName xml.Name     `xml:"Tasks"`
	Items   []TaskRecord `xml:"Task"`
}

// TaskRecord is one <Task Id="..."> element
type TaskRecord struct {
	ID      *string `xml:"Id,attr"`
	Subject string  `xml:"Subject"`
	DueDate string  `xml:"DueDate"`
}

// StudentsDocument is the root of Students.xml
type StudentsDocument struct {
	XMLName xml.Name        `xml:"Students"`
	Items   []StudentRecord `xml:"Student"`
}

// StudentRecord is one <Student Id="..."> element
type StudentRecord struct {
	ID      *string `xml:"Id,attr"`
	Name    string  `xml:"Name"`
	Surname string  `xml:"Surname"`
	Group   string  `xml:"Group"`
}

// TaskResultsDocument is the root of TaskResults.xml
type TaskResultsDocument struct {
	XMLName xml.Name           `xml:"TaskResults"`
	Items   []TaskResultRecord `xml:"TaskResult"`
}

// TaskResultRecord is one <TaskResult> element
type TaskResultRecord struct {
	TaskID    *string `xml:"TaskId"`
	StudentID *string `xml:"StudentId"`
	Mark      *string `xml:"Mark"`
	Date      string  `xml:"Date"`
}

// UniversityDocument is the grade report written to Task1.xml
type UniversityDocument struct {
	XMLName xml.Name      `xml:"University"`
	Groups  []GroupRecord `xml:"Group"`
}

// GroupRecord lists the students of a group
type GroupRecord struct {
	Name     string                 `xml:"Name,attr"`
	Students []StudentResultsRecord `xml:"Student"`
}

// StudentResultsRecord lists one student's marks
type StudentResultsRecord struct {
	Name    string             `xml:"Name,attr"`
	Results []GradedTaskRecord `xml:"TaskResult"`
}

// GradedTaskRecord is a task with the mark that counts
type GradedTaskRecord struct {
	TaskID  int    `xml:"TaskId,attr"`
	Subject string `xml:"Subject,attr"`
	Mark    string `xml:"Mark,attr"`
}
