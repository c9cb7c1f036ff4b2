package service

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/fulldump/biff"

	"rosterdb/roster"
)

func Environment(f func(s *Service, dataFile string)) {
	dataFile := filepath.Join(os.TempDir(), fmt.Sprintf("roster-%v.json", time.Now().UnixNano()))
	defer os.Remove(dataFile)

	f(NewService(roster.NewStore(), dataFile), dataFile)
}

func TestCreateStudent(t *testing.T) {
	Environment(func(s *Service, dataFile string) {

		student, err := s.CreateStudent(1, "Alice")

		AssertNil(err)
		AssertEqual(student.ID, 1)
		AssertEqual(s.Count(), 1)

		// mutation was persisted
		_, err = os.Stat(dataFile)
		AssertNil(err)
	})
}

func TestCreateStudentDuplicate(t *testing.T) {
	Environment(func(s *Service, dataFile string) {
		s.CreateStudent(1, "Alice")

		_, err := s.CreateStudent(1, "Mallory")

		AssertEqual(err, ErrStudentAlreadyExists)
		AssertEqual(s.Count(), 1)
	})
}

func TestCreateStudentEmptyName(t *testing.T) {
	Environment(func(s *Service, dataFile string) {

		_, err := s.CreateStudent(1, "")

		AssertEqual(err, ErrEmptyName)
	})
}

func TestDropStudent(t *testing.T) {
	Environment(func(s *Service, dataFile string) {
		s.CreateStudent(1, "Alice")

		AssertNil(s.DropStudent(1))
		AssertEqual(s.DropStudent(1), ErrStudentNotFound)
	})
}

func TestRenameStudent(t *testing.T) {
	Environment(func(s *Service, dataFile string) {
		s.CreateStudent(1, "Alice")

		AssertNil(s.RenameStudent(1, "Alicia"))
		AssertEqual(s.RenameStudent(2, "Nobody"), ErrStudentNotFound)
		AssertEqual(s.RenameStudent(1, ""), ErrEmptyName)

		student, _ := s.GetStudent(1)
		AssertEqual(student.Name, "Alicia")
	})
}

func TestAddGrade(t *testing.T) {
	Environment(func(s *Service, dataFile string) {
		s.CreateStudent(1, "Alice")

		AssertNil(s.AddGrade(1, 90))
		AssertNil(s.AddGrade(1, 70))
		AssertEqual(s.AddGrade(2, 50), ErrStudentNotFound)

		student, _ := s.GetStudent(1)
		AssertEqual(student.Average, 80.0)
	})
}

func TestSearchStudentSortsFirst(t *testing.T) {
	Environment(func(s *Service, dataFile string) {
		s.CreateStudent(9, "Carol")
		s.CreateStudent(4, "Alice")
		s.CreateStudent(6, "Bob")

		student, err := s.SearchStudent(6)

		AssertNil(err)
		AssertEqual(student.Name, "Bob")

		// roster is now id-ordered
		AssertEqual(s.StudentAt(0).ID, 4)
		AssertEqual(s.StudentAt(2).ID, 9)
	})
}

func TestSearchStudentMissing(t *testing.T) {
	Environment(func(s *Service, dataFile string) {
		s.CreateStudent(1, "Alice")

		_, err := s.SearchStudent(2)

		AssertEqual(err, ErrStudentNotFound)
	})
}

func TestStatsEmpty(t *testing.T) {
	Environment(func(s *Service, dataFile string) {

		_, err := s.Stats()

		AssertEqual(err, ErrEmptyRoster)
	})
}

func TestLoadAfterSave(t *testing.T) {
	Environment(func(s *Service, dataFile string) {
		s.CreateStudent(1, "Alice")
		s.AddGrade(1, 90.5)

		reloaded := NewService(roster.NewStore(), dataFile)
		AssertNil(reloaded.Load())

		student, err := reloaded.GetStudent(1)
		AssertNil(err)
		AssertEqual(student.Name, "Alice")
		AssertEqual(student.Grades, []float64{90.5})
	})
}

func TestLoadMissingFileStartsEmpty(t *testing.T) {
	Environment(func(s *Service, dataFile string) {

		AssertNil(s.Load())

		AssertEqual(s.Count(), 0)
	})
}
