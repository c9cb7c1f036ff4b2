package api

import (
	"context"
)

func getStudent(ctx context.Context) (*studentDocument, error) {

	s := GetServicer(ctx)

	id, err := urlStudentId(ctx)
	if err != nil {
		return nil, err
	}

	student, err := s.GetStudent(id)
	if err != nil {
		return nil, err
	}

	return newStudentDocument(student), nil
}
