package api

import (
	"context"
)

// dropStudent removes the student and returns its last document, the same
// response shape the other mutating endpoints use.
func dropStudent(ctx context.Context) (*studentDocument, error) {

	s := GetServicer(ctx)

	id, err := urlStudentId(ctx)
	if err != nil {
		return nil, err
	}

	student, err := s.GetStudent(id)
	if err != nil {
		return nil, err
	}
	document := newStudentDocument(student)

	err = s.DropStudent(id)
	if err != nil {
		return nil, err
	}

	return document, nil
}
