package service

import (
	"errors"
	"fmt"
	"io"

	"rosterdb/persistence"
	"rosterdb/roster"
)

var (
	ErrStudentAlreadyExists = errors.New("student already exists")
	ErrStudentNotFound      = errors.New("student not found")
	ErrEmptyName            = errors.New("student name cannot be empty")
	ErrEmptyRoster          = errors.New("roster is empty")
)

// Service owns the one roster of the process and its snapshot file. Every
// successful mutation is followed by a save; a failed save is reported and
// the mutation still stands.
type Service struct {
	store    *roster.Store
	dataFile string
}

func NewService(store *roster.Store, dataFile string) *Service {
	return &Service{
		store:    store,
		dataFile: dataFile,
	}
}

func (s *Service) Load() error {
	return persistence.Load(s.store, s.dataFile)
}

func (s *Service) Save() error {
	return persistence.Save(s.store, s.dataFile)
}

func (s *Service) persist() {
	err := s.Save()
	if err != nil {
		fmt.Printf("WARNING: save roster: %s\n", err.Error())
	}
}

func (s *Service) CreateStudent(id int, name string) (*roster.Student, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !s.store.Add(id, name) {
		return nil, ErrStudentAlreadyExists
	}
	s.persist()
	return s.store.Get(s.store.Count() - 1), nil
}

func (s *Service) DropStudent(id int) error {
	if !s.store.Delete(id) {
		return ErrStudentNotFound
	}
	s.persist()
	return nil
}

func (s *Service) RenameStudent(id int, name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if !s.store.Rename(id, name) {
		return ErrStudentNotFound
	}
	s.persist()
	return nil
}

// AddGrade appends a grade and persists. Grade range validation belongs to
// the callers (menu and api), not here.
func (s *Service) AddGrade(id int, grade float64) error {
	if !s.store.AppendGrade(id, grade) {
		return ErrStudentNotFound
	}
	s.persist()
	return nil
}

// GetStudent looks the id up linearly, in roster order.
func (s *Service) GetStudent(id int) (*roster.Student, error) {
	for i := 0; i < s.store.Count(); i++ {
		student := s.store.Get(i)
		if student.ID == id {
			return student, nil
		}
	}
	return nil, ErrStudentNotFound
}

// Students returns borrowed references in current roster order.
func (s *Service) Students() []*roster.Student {
	students := make([]*roster.Student, 0, s.store.Count())
	for i := 0; i < s.store.Count(); i++ {
		students = append(students, s.store.Get(i))
	}
	return students
}

func (s *Service) Count() int {
	return s.store.Count()
}

func (s *Service) Sort(method roster.SortMethod, key roster.SortKey) {
	s.store.Sort(method, key)
}

// SearchStudent sorts by id with merge sort first, then binary searches,
// the same sequence the menu has always run.
func (s *Service) SearchStudent(id int) (*roster.Student, error) {
	s.store.Sort(roster.Merge, roster.ById)
	index, found := s.store.SearchByID(id)
	if !found {
		return nil, ErrStudentNotFound
	}
	return s.store.Get(index), nil
}

func (s *Service) Stats() (roster.ClassStats, error) {
	stats, ok := s.store.HighestLowest()
	if !ok {
		return roster.ClassStats{}, ErrEmptyRoster
	}
	return stats, nil
}

func (s *Service) StudentAt(index int) *roster.Student {
	return s.store.Get(index)
}

func (s *Service) WriteSummary(w io.Writer) {
	s.store.WriteSummary(w)
}

func (s *Service) WriteGradeMatrix(w io.Writer) {
	s.store.WriteGradeMatrix(w)
}

// Close saves one last time and releases the roster.
func (s *Service) Close() {
	s.persist()
	s.store.Clear()
}
