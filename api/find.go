package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SierraSoftworks/connor"
)

type findRequest struct {
	Filter map[string]interface{} `json:"filter"`
	Skip   int                    `json:"skip"`
	Limit  int                    `json:"limit"`
}

// find streams matching student documents, one JSON object per line. The
// filter matches against the document fields (id, name, grades, average).
func find(ctx context.Context, w http.ResponseWriter, input *findRequest) error {

	s := GetServicer(ctx)

	limit := input.Limit
	if limit == 0 {
		limit = 1
	}
	skip := input.Skip
	hasFilter := len(input.Filter) > 0

	jsonWriter := json.NewEncoder(w)

	for _, student := range s.Students() {

		if limit == 0 {
			break
		}

		if hasFilter {
			document := map[string]interface{}{}
			payload, err := json.Marshal(newStudentDocument(student))
			if err != nil {
				return fmt.Errorf("encode student: %w", err)
			}
			json.Unmarshal(payload, &document)

			match, err := connor.Match(input.Filter, document)
			if err != nil {
				return fmt.Errorf("match: %w", err)
			}
			if !match {
				continue
			}
		}

		if skip > 0 {
			skip--
			continue
		}

		limit--
		jsonWriter.Encode(newStudentDocument(student))
	}

	return nil
}
