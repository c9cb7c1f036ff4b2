package roster

import (
	"fmt"
	"io"
)

// WriteSummary prints one line per student with id, name, average and grade
// count in roster order.
func (s *Store) WriteSummary(w io.Writer) {
	if len(s.students) == 0 {
		fmt.Fprintln(w, "No students.")
		return
	}
	fmt.Fprintln(w, "ID\tName\t\tAvg\t#grades")
	fmt.Fprintln(w, "-----------------------------------------")
	for _, student := range s.students {
		fmt.Fprintf(w, "%d\t%-15s\t%.2f\t%d\n", student.ID, student.Name, student.Average, len(student.Grades))
	}
}

// WriteGradeMatrix prints every grade of every student, one row each.
func (s *Store) WriteGradeMatrix(w io.Writer) {
	if len(s.students) == 0 {
		fmt.Fprintln(w, "No students.")
		return
	}
	fmt.Fprintln(w, "Grades Matrix (each row = student):")
	for i, student := range s.students {
		fmt.Fprintf(w, "[%d] %d %-12s | ", i, student.ID, student.Name)
		if len(student.Grades) == 0 {
			fmt.Fprint(w, "(no grades)")
		} else {
			for j, grade := range student.Grades {
				fmt.Fprintf(w, "%.2f", grade)
				if j+1 < len(student.Grades) {
					fmt.Fprint(w, ", ")
				}
			}
			fmt.Fprintf(w, "  (avg: %.2f)", student.Average)
		}
		fmt.Fprintln(w)
	}
}
