package api

import (
	"context"
)

type searchStudentRequest struct {
	Id int `json:"id"`
}

// searchStudent reorders the roster by id (merge sort) and binary searches,
// exactly like the interactive menu does.
func searchStudent(ctx context.Context, input *searchStudentRequest) (*studentDocument, error) {

	s := GetServicer(ctx)

	student, err := s.SearchStudent(input.Id)
	if err != nil {
		return nil, err
	}

	return newStudentDocument(student), nil
}
