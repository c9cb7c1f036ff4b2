package service

import (
	"rosterdb/roster"
)

// Servicer is what the HTTP layer depends on.
type Servicer interface {
	CreateStudent(id int, name string) (*roster.Student, error)
	DropStudent(id int) error
	RenameStudent(id int, name string) error
	AddGrade(id int, grade float64) error
	GetStudent(id int) (*roster.Student, error)
	Students() []*roster.Student
	Count() int
	Sort(method roster.SortMethod, key roster.SortKey)
	SearchStudent(id int) (*roster.Student, error)
	Stats() (roster.ClassStats, error)
	StudentAt(index int) *roster.Student
}
