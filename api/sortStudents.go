package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"rosterdb/roster"
)

type sortStudentsRequest struct {
	Method string `json:"method"`
	Key    string `json:"key"`
}

var sortMethods = map[string]roster.SortMethod{
	"bubble":    roster.Bubble,
	"insertion": roster.Insertion,
	"merge":     roster.Merge,
}

var sortKeys = map[string]roster.SortKey{
	"id":      roster.ById,
	"average": roster.ByAverage,
}

func sortStudents(ctx context.Context, w http.ResponseWriter, input *sortStudentsRequest) ([]*studentSummary, error) {

	s := GetServicer(ctx)

	if input.Method == "" {
		input.Method = "merge"
	}
	if input.Key == "" {
		input.Key = "id"
	}

	method, exist := sortMethods[input.Method]
	if !exist {
		w.WriteHeader(http.StatusBadRequest)
		return nil, fmt.Errorf("bad method '%s', must be [%s]", input.Method, strings.Join(GetKeys(sortMethods), "|"))
	}

	key, exist := sortKeys[input.Key]
	if !exist {
		w.WriteHeader(http.StatusBadRequest)
		return nil, fmt.Errorf("bad key '%s', must be [%s]", input.Key, strings.Join(GetKeys(sortKeys), "|"))
	}

	s.Sort(method, key)

	return listStudents(ctx)
}
