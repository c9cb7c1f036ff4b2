package api

import (
	"context"
)

type renameStudentRequest struct {
	Name string `json:"name"`
}

func renameStudent(ctx context.Context, input *renameStudentRequest) (*studentDocument, error) {

	s := GetServicer(ctx)

	id, err := urlStudentId(ctx)
	if err != nil {
		return nil, err
	}

	err = s.RenameStudent(id, input.Name)
	if err != nil {
		return nil, err
	}

	student, err := s.GetStudent(id)
	if err != nil {
		return nil, err
	}

	return newStudentDocument(student), nil
}
