package roster

// Store owns the collection of students. All mutations go through it and
// callers only ever hold borrowed *Student references. Id lookup is linear
// on purpose: the roster never maintains a secondary index.
type Store struct {
	students []*Student
}

func NewStore() *Store {
	return &Store{
		students: []*Student{},
	}
}

// indexOf returns the position of the student with id, or -1.
func (s *Store) indexOf(id int) int {
	for i, student := range s.students {
		if student.ID == id {
			return i
		}
	}
	return -1
}

// Add appends a new student with no grades. It fails on a duplicate id or
// an empty name.
func (s *Store) Add(id int, name string) bool {
	if name == "" {
		return false
	}
	if s.indexOf(id) != -1 {
		return false
	}
	s.students = append(s.students, &Student{
		ID:   id,
		Name: truncateName(name),
	})
	return true
}

// Delete removes the student with id, shifting every later student one
// position earlier so survivors keep their relative order.
func (s *Store) Delete(id int) bool {
	i := s.indexOf(id)
	if i == -1 {
		return false
	}
	s.students[i].Grades = nil
	s.students = append(s.students[:i], s.students[i+1:]...)
	return true
}

// Rename replaces the student name, truncating at MaxNameLen.
func (s *Store) Rename(id int, name string) bool {
	if name == "" {
		return false
	}
	i := s.indexOf(id)
	if i == -1 {
		return false
	}
	s.students[i].Name = truncateName(name)
	return true
}

// AppendGrade adds a grade and recomputes the average synchronously. Range
// validation (0-100) is a caller concern.
func (s *Store) AppendGrade(id int, grade float64) bool {
	i := s.indexOf(id)
	if i == -1 {
		return false
	}
	student := s.students[i]
	student.Grades = append(student.Grades, grade)
	student.Average = Average(student.Grades)
	return true
}

func (s *Store) Count() int {
	return len(s.students)
}

// Get returns a borrowed reference, or nil when index is out of range.
func (s *Store) Get(index int) *Student {
	if index < 0 || index >= len(s.students) {
		return nil
	}
	return s.students[index]
}

// Clear releases every grade list and the student list itself.
func (s *Store) Clear() {
	for _, student := range s.students {
		student.Grades = nil
	}
	s.students = []*Student{}
}

// ClassStats reports the extreme averages and where they live. Ties resolve
// to the first occurrence, independently for both extremes.
type ClassStats struct {
	Highest      float64
	HighestIndex int
	Lowest       float64
	LowestIndex  int
}

// HighestLowest scans the roster once. It reports false on an empty store.
func (s *Store) HighestLowest() (ClassStats, bool) {
	if len(s.students) == 0 {
		return ClassStats{}, false
	}

	stats := ClassStats{
		Highest: s.students[0].Average,
		Lowest:  s.students[0].Average,
	}
	for i := 1; i < len(s.students); i++ {
		average := s.students[i].Average
		if average > stats.Highest {
			stats.Highest = average
			stats.HighestIndex = i
		}
		if average < stats.Lowest {
			stats.Lowest = average
			stats.LowestIndex = i
		}
	}

	return stats, true
}
