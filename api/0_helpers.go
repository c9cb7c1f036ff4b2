package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/fulldump/box"

	"rosterdb/roster"
	"rosterdb/service"
)

func GetKeys[T any](m map[string]T) []string {
	keys := []string{}
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var ErrGradeOutOfRange = errors.New("grade must be between 0 and 100")

var ErrBadStudentId = errors.New("student id must be an integer")

// studentDocument is the full JSON view of a record, grades included.
type studentDocument struct {
	Id      int       `json:"id"`
	Name    string    `json:"name"`
	Grades  []float64 `json:"grades"`
	Average float64   `json:"average"`
}

func newStudentDocument(student *roster.Student) *studentDocument {
	grades := student.Grades
	if grades == nil {
		grades = []float64{}
	}
	return &studentDocument{
		Id:      student.ID,
		Name:    student.Name,
		Grades:  grades,
		Average: student.Average,
	}
}

// urlStudentId parses the {studentId} url parameter.
func urlStudentId(ctx context.Context) (int, error) {
	id, err := strconv.Atoi(box.GetUrlParameter(ctx, "studentId"))
	if err != nil {
		return 0, ErrBadStudentId
	}
	return id, nil
}

func writeError(w http.ResponseWriter, status int, message, description string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]interface{}{
			"message":     message,
			"description": description,
		},
	})
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}
		w := box.GetResponse(ctx)

		switch {
		case err == service.ErrStudentNotFound || err == service.ErrEmptyRoster:
			writeError(w, http.StatusNotFound, err.Error(), "no matching student in the roster")
		case err == service.ErrStudentAlreadyExists:
			writeError(w, http.StatusConflict, err.Error(), "student ids are unique")
		case err == service.ErrEmptyName || err == ErrGradeOutOfRange || err == ErrBadStudentId:
			writeError(w, http.StatusBadRequest, err.Error(), "invalid input")
		case err == box.ErrResourceNotFound:
			writeError(w, http.StatusNotFound, err.Error(), fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String()))
		case err == box.ErrMethodNotAllowed:
			writeError(w, http.StatusMethodNotAllowed, err.Error(), fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method))
		default:
			if _, ok := err.(*json.SyntaxError); ok {
				writeError(w, http.StatusBadRequest, err.Error(), "Malformed JSON")
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error(), "Unexpected error")
		}
	}
}
