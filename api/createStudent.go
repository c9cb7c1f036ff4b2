package api

import (
	"context"
	"net/http"
)

type createStudentRequest struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

func createStudent(ctx context.Context, w http.ResponseWriter, input *createStudentRequest) (*studentDocument, error) {

	s := GetServicer(ctx)

	student, err := s.CreateStudent(input.Id, input.Name)
	if err != nil {
		return nil, err
	}

	w.WriteHeader(http.StatusCreated)
	return newStudentDocument(student), nil
}
