package api

import (
	"context"
)

type addGradeRequest struct {
	Grade float64 `json:"grade"`
}

// addGrade range-checks the grade before it reaches the service: the store
// itself accepts any value on purpose.
func addGrade(ctx context.Context, input *addGradeRequest) (*studentDocument, error) {

	s := GetServicer(ctx)

	id, err := urlStudentId(ctx)
	if err != nil {
		return nil, err
	}

	if input.Grade < 0 || input.Grade > 100 {
		return nil, ErrGradeOutOfRange
	}

	err = s.AddGrade(id, input.Grade)
	if err != nil {
		return nil, err
	}

	student, err := s.GetStudent(id)
	if err != nil {
		return nil, err
	}

	return newStudentDocument(student), nil
}
