package menu

import (
	"fmt"
	"io"
	"strconv"

	"rosterdb/input"
	"rosterdb/roster"
	"rosterdb/service"
)

// Menu is the interactive dispatcher. It validates user input (empty names,
// grade range) before anything reaches the service, and it is the layer
// that decides to sort by id before a binary search.
type Menu struct {
	service *service.Service
	in      *input.Reader
	out     io.Writer
}

func New(s *service.Service, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		service: s,
		in:      input.NewReader(in, out),
		out:     out,
	}
}

func (m *Menu) ShowHelp() {
	fmt.Fprintln(m.out, "\nMenu:")
	fmt.Fprintln(m.out, "1 - Add student")
	fmt.Fprintln(m.out, "2 - Add grade to student")
	fmt.Fprintln(m.out, "3 - Display all students (summary)")
	fmt.Fprintln(m.out, "4 - Display grade matrix (detailed)")
	fmt.Fprintln(m.out, "5 - Sort students (choose method and key)")
	fmt.Fprintln(m.out, "6 - Search student by ID (binary search)")
	fmt.Fprintln(m.out, "7 - Class statistics (highest/lowest average)")
	fmt.Fprintln(m.out, "8 - Delete student")
	fmt.Fprintln(m.out, "9 - Update student name")
	fmt.Fprintln(m.out, "0 - Exit")
}

// Run loops until the user exits or the input ends.
func (m *Menu) Run() {
	for {
		line, ok := m.in.ReadLine("\nChoose option (h for help): ")
		if !ok {
			m.service.Close()
			return
		}

		if line == "h" || line == "H" {
			m.ShowHelp()
			continue
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid choice. Enter 0-9 or 'h' for help.")
			continue
		}

		switch choice {
		case 1:
			m.addStudent()
		case 2:
			m.addGrade()
		case 3:
			m.service.WriteSummary(m.out)
		case 4:
			m.service.WriteGradeMatrix(m.out)
		case 5:
			m.sortStudents()
		case 6:
			m.searchStudent()
		case 7:
			m.stats()
		case 8:
			m.deleteStudent()
		case 9:
			m.renameStudent()
		case 0:
			m.service.Close()
			fmt.Fprintln(m.out, "Goodbye.")
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice. Enter 0-9 or 'h' for help.")
		}
	}
}

func (m *Menu) addStudent() {
	id, ok := m.in.ReadInt("Enter student ID (integer): ")
	if !ok {
		return
	}
	name, ok := m.in.ReadLine("Enter name: ")
	if !ok {
		return
	}
	if name == "" {
		fmt.Fprintln(m.out, "Name cannot be empty.")
		return
	}

	_, err := m.service.CreateStudent(id, name)
	if err == service.ErrStudentAlreadyExists {
		fmt.Fprintf(m.out, "Student with ID %d already exists.\n", id)
		return
	}
	if err != nil {
		fmt.Fprintln(m.out, err.Error())
		return
	}
	fmt.Fprintln(m.out, "Student added.")
}

func (m *Menu) addGrade() {
	id, ok := m.in.ReadInt("Enter student ID: ")
	if !ok {
		return
	}
	grade, ok := m.in.ReadFloat("Enter grade (0-100): ")
	if !ok {
		return
	}
	if grade < 0 || grade > 100 {
		fmt.Fprintln(m.out, "Grade must be between 0 and 100.")
		return
	}

	err := m.service.AddGrade(id, grade)
	if err != nil {
		fmt.Fprintf(m.out, "Student with ID %d not found.\n", id)
		return
	}
	fmt.Fprintln(m.out, "Grade added and average recalculated.")
}

func (m *Menu) sortStudents() {
	fmt.Fprint(m.out, "Choose sorting method:\n1. Bubble Sort\n2. Insertion Sort\n3. Merge Sort\n")
	choice, ok := m.in.ReadInt("Choose: ")
	if !ok {
		return
	}
	method := roster.Merge
	switch choice {
	case 1:
		method = roster.Bubble
	case 2:
		method = roster.Insertion
	}

	fmt.Fprint(m.out, "Sort by:\n1. ID\n2. Average\n")
	choice, ok = m.in.ReadInt("Choose: ")
	if !ok {
		return
	}
	key := roster.ByAverage
	if choice == 1 {
		key = roster.ById
	}

	m.service.Sort(method, key)
	fmt.Fprintln(m.out, "Sorted.")
}

func (m *Menu) searchStudent() {
	id, ok := m.in.ReadInt("Enter ID to search: ")
	if !ok {
		return
	}

	student, err := m.service.SearchStudent(id)
	if err != nil {
		fmt.Fprintf(m.out, "Student with ID %d not found.\n", id)
		return
	}

	fmt.Fprintf(m.out, "Found: ID=%d Name=%s Avg=%.2f #grades=%d\n",
		student.ID, student.Name, student.Average, len(student.Grades))
	if len(student.Grades) > 0 {
		fmt.Fprint(m.out, "Grades: ")
		for i, grade := range student.Grades {
			fmt.Fprintf(m.out, "%.2f", grade)
			if i+1 < len(student.Grades) {
				fmt.Fprint(m.out, ", ")
			}
		}
		fmt.Fprintln(m.out)
	}
}

func (m *Menu) stats() {
	stats, err := m.service.Stats()
	if err != nil {
		fmt.Fprintln(m.out, "No students.")
		return
	}

	highest := m.service.StudentAt(stats.HighestIndex)
	lowest := m.service.StudentAt(stats.LowestIndex)
	fmt.Fprintf(m.out, "Highest average: ID=%d Name=%s Avg=%.2f\n", highest.ID, highest.Name, highest.Average)
	fmt.Fprintf(m.out, "Lowest average:  ID=%d Name=%s Avg=%.2f\n", lowest.ID, lowest.Name, lowest.Average)
}

func (m *Menu) deleteStudent() {
	id, ok := m.in.ReadInt("Enter ID to delete: ")
	if !ok {
		return
	}

	err := m.service.DropStudent(id)
	if err != nil {
		fmt.Fprintf(m.out, "Student %d not found.\n", id)
		return
	}
	fmt.Fprintf(m.out, "Deleted student %d.\n", id)
}

func (m *Menu) renameStudent() {
	id, ok := m.in.ReadInt("Enter ID to update name: ")
	if !ok {
		return
	}
	name, ok := m.in.ReadLine("Enter new name: ")
	if !ok {
		return
	}
	if name == "" {
		fmt.Fprintln(m.out, "Name cannot be empty.")
		return
	}

	err := m.service.RenameStudent(id, name)
	if err != nil {
		fmt.Fprintf(m.out, "Student %d not found.\n", id)
		return
	}
	fmt.Fprintln(m.out, "Updated.")
}
