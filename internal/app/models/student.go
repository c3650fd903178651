package models

import "unicode/utf8"

// Student defines a student enrolled in a group
type Student struct {
	ID      int
	Name    string
	Surname string
	Group   string
}

// ShortName returns the surname followed by the first letter of the name, e.g. "Shevchenko T."
func (s Student) ShortName() string {
	r, size := utf8.DecodeRuneInString(s.Name)
	if size == 0 {
		return s.Surname
	}
	return s.Surname + " " + string(r) + "."
}
