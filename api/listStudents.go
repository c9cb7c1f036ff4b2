package api

import (
	"context"
)

type studentSummary struct {
	Id      int     `json:"id"`
	Name    string  `json:"name"`
	Average float64 `json:"average"`
	Grades  int     `json:"grades"`
}

func listStudents(ctx context.Context) ([]*studentSummary, error) {

	s := GetServicer(ctx)

	result := []*studentSummary{}
	for _, student := range s.Students() {
		result = append(result, &studentSummary{
			Id:      student.ID,
			Name:    student.Name,
			Average: student.Average,
			Grades:  len(student.Grades),
		})
	}

	return result, nil
}
