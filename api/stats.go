package api

import (
	"context"
)

type statsEntry struct {
	Index   int     `json:"index"`
	Id      int     `json:"id"`
	Name    string  `json:"name"`
	Average float64 `json:"average"`
}

type statsResponse struct {
	Highest statsEntry `json:"highest"`
	Lowest  statsEntry `json:"lowest"`
}

func stats(ctx context.Context) (*statsResponse, error) {

	s := GetServicer(ctx)

	classStats, err := s.Stats()
	if err != nil {
		return nil, err
	}

	highest := s.StudentAt(classStats.HighestIndex)
	lowest := s.StudentAt(classStats.LowestIndex)

	return &statsResponse{
		Highest: statsEntry{
			Index:   classStats.HighestIndex,
			Id:      highest.ID,
			Name:    highest.Name,
			Average: classStats.Highest,
		},
		Lowest: statsEntry{
			Index:   classStats.LowestIndex,
			Id:      lowest.ID,
			Name:    lowest.Name,
			Average: classStats.Lowest,
		},
	}, nil
}
